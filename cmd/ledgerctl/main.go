package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	grpcpool "github.com/JoeShih716/go-mem-bank/pkg/grpc"
	pb "github.com/JoeShih716/go-mem-bank/proto"
)

type options struct {
	addr    string
	timeout time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	pool := grpcpool.NewPool()

	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Command line client for the in-memory ledger",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return pool.Close()
		},
	}
	root.PersistentFlags().StringVar(&opts.addr, "addr", envOr("BANK_GRPC_TARGET", "localhost:50051"), "ledger gRPC address")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 5*time.Second, "per-call timeout")

	client := func() (pb.LedgerServiceClient, error) {
		conn, err := pool.GetConnection(opts.addr)
		if err != nil {
			return nil, fmt.Errorf("connect %s: %w", opts.addr, err)
		}
		return pb.NewLedgerServiceClient(conn), nil
	}

	root.AddCommand(
		newCreateCmd(opts, client),
		newDepositCmd(opts, client),
		newWithdrawCmd(opts, client),
		newBalanceCmd(opts, client),
		newShowCmd(opts, client),
		newRenameCmd(opts, client),
		newDeleteCmd(opts, client),
		newHistoryCmd(opts, client),
		newAccountsCmd(opts, client),
		newStatsCmd(opts, client),
		newBenchCmd(opts, client),
	)
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
