package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/status"

	pb "github.com/JoeShih716/go-mem-bank/proto"
)

type clientFunc func() (pb.LedgerServiceClient, error)

// unary 組出一個 cobra RunE：建立請求 → 呼叫 → 輸出
func unary[Req, Resp any](
	opts *options,
	client clientFunc,
	build func(args []string) Req,
	call func(ctx context.Context, c pb.LedgerServiceClient, req Req) (Resp, error),
	render func(cmd *cobra.Command, resp Resp),
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := client()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
		defer cancel()

		resp, err := call(ctx, c, build(args))
		if err != nil {
			if st, ok := status.FromError(err); ok {
				return fmt.Errorf("%s: %s", st.Code(), st.Message())
			}
			return err
		}
		render(cmd, resp)
		return nil
	}
}

func accountArgs(args []string) *pb.AccountRequest {
	return &pb.AccountRequest{AccountNo: args[0]}
}

func renderAccount(cmd *cobra.Command, resp *pb.Account) {
	renderAccounts(cmd.OutOrStdout(), []*pb.Account{resp})
}

func renderBalanceCmd(cmd *cobra.Command, resp *pb.BalanceResponse) {
	renderBalance(cmd.OutOrStdout(), resp)
}

func newCreateCmd(opts *options, client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "create <account_no> <name> <initial_balance>",
		Short: "Open an account",
		Args:  cobra.ExactArgs(3),
		RunE: unary(opts, client,
			func(args []string) *pb.CreateAccountRequest {
				return &pb.CreateAccountRequest{
					AccountNo:      args[0],
					Name:           args[1],
					InitialBalance: args[2],
				}
			},
			func(ctx context.Context, c pb.LedgerServiceClient, req *pb.CreateAccountRequest) (*pb.Account, error) {
				return c.CreateAccount(ctx, req)
			},
			renderAccount,
		),
	}
}

func movementCmd(use, short string, opts *options, client clientFunc,
	call func(ctx context.Context, c pb.LedgerServiceClient, req *pb.MovementRequest) (*pb.BalanceResponse, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <account_no> <amount>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: unary(opts, client,
			func(args []string) *pb.MovementRequest {
				return &pb.MovementRequest{AccountNo: args[0], Amount: args[1]}
			},
			call,
			renderBalanceCmd,
		),
	}
}

func newDepositCmd(opts *options, client clientFunc) *cobra.Command {
	return movementCmd("deposit", "Deposit into an account", opts, client,
		func(ctx context.Context, c pb.LedgerServiceClient, req *pb.MovementRequest) (*pb.BalanceResponse, error) {
			return c.Deposit(ctx, req)
		})
}

func newWithdrawCmd(opts *options, client clientFunc) *cobra.Command {
	return movementCmd("withdraw", "Withdraw from an account", opts, client,
		func(ctx context.Context, c pb.LedgerServiceClient, req *pb.MovementRequest) (*pb.BalanceResponse, error) {
			return c.Withdraw(ctx, req)
		})
}

func newBalanceCmd(opts *options, client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <account_no>",
		Short: "Show the current balance",
		Args:  cobra.ExactArgs(1),
		RunE: unary(opts, client, accountArgs,
			func(ctx context.Context, c pb.LedgerServiceClient, req *pb.AccountRequest) (*pb.BalanceResponse, error) {
				return c.GetBalance(ctx, req)
			},
			renderBalanceCmd,
		),
	}
}

func newShowCmd(opts *options, client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "show <account_no>",
		Short: "Show account details",
		Args:  cobra.ExactArgs(1),
		RunE: unary(opts, client, accountArgs,
			func(ctx context.Context, c pb.LedgerServiceClient, req *pb.AccountRequest) (*pb.Account, error) {
				return c.GetAccount(ctx, req)
			},
			renderAccount,
		),
	}
}

func newRenameCmd(opts *options, client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <account_no> <new_name>",
		Short: "Change the account holder name",
		Args:  cobra.ExactArgs(2),
		RunE: unary(opts, client,
			func(args []string) *pb.UpdateHolderNameRequest {
				return &pb.UpdateHolderNameRequest{AccountNo: args[0], Name: args[1]}
			},
			func(ctx context.Context, c pb.LedgerServiceClient, req *pb.UpdateHolderNameRequest) (*pb.Account, error) {
				return c.UpdateHolderName(ctx, req)
			},
			renderAccount,
		),
	}
}

func newDeleteCmd(opts *options, client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <account_no>",
		Short: "Delete an account and its history",
		Args:  cobra.ExactArgs(1),
		RunE: unary(opts, client, accountArgs,
			func(ctx context.Context, c pb.LedgerServiceClient, req *pb.AccountRequest) (*pb.DeleteAccountResponse, error) {
				return c.DeleteAccount(ctx, req)
			},
			func(cmd *cobra.Command, resp *pb.DeleteAccountResponse) {
				fmt.Fprintf(cmd.OutOrStdout(), "Account %s deleted\n", resp.GetAccountNo())
			},
		),
	}
}

func newHistoryCmd(opts *options, client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "history <account_no>",
		Short: "List transactions with running balance",
		Args:  cobra.ExactArgs(1),
		RunE: unary(opts, client, accountArgs,
			func(ctx context.Context, c pb.LedgerServiceClient, req *pb.AccountRequest) (*pb.ListTransactionsResponse, error) {
				return c.ListTransactions(ctx, req)
			},
			func(cmd *cobra.Command, resp *pb.ListTransactionsResponse) {
				renderHistory(cmd.OutOrStdout(), resp)
			},
		),
	}
}

func newAccountsCmd(opts *options, client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: unary(opts, client,
			func([]string) *pb.ListAccountsRequest { return &pb.ListAccountsRequest{} },
			func(ctx context.Context, c pb.LedgerServiceClient, req *pb.ListAccountsRequest) (*pb.ListAccountsResponse, error) {
				return c.ListAccounts(ctx, req)
			},
			func(cmd *cobra.Command, resp *pb.ListAccountsResponse) {
				renderAccounts(cmd.OutOrStdout(), resp.GetAccounts())
			},
		),
	}
}

func newStatsCmd(opts *options, client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show ledger totals",
		Args:  cobra.NoArgs,
		RunE: unary(opts, client,
			func([]string) *pb.GetStatsRequest { return &pb.GetStatsRequest{} },
			func(ctx context.Context, c pb.LedgerServiceClient, req *pb.GetStatsRequest) (*pb.StatsResponse, error) {
				return c.GetStats(ctx, req)
			},
			func(cmd *cobra.Command, resp *pb.StatsResponse) {
				renderStats(cmd.OutOrStdout(), resp)
			},
		),
	}
}
