package main

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	pb "github.com/JoeShih716/go-mem-bank/proto"
)

type benchOptions struct {
	total       int
	concurrency int
	amount      string
}

// newBenchCmd 壓測：對同一個帳戶併發存款，輸出 TPS
func newBenchCmd(opts *options, client clientFunc) *cobra.Command {
	bopts := &benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench <account_no>",
		Short: "Fire concurrent deposits at one account and report TPS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			req := &pb.MovementRequest{AccountNo: args[0], Amount: bopts.amount}
			result := runBench(cmd.Context(), c, req, bopts, opts.timeout)
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %d requests (%d failed) in %v\n", result.total, result.failed, result.elapsed)
			fmt.Fprintf(cmd.OutOrStdout(), "TPS: %.2f\n", result.tps())
			return nil
		},
	}
	cmd.Flags().IntVar(&bopts.total, "total", 10000, "number of deposits")
	cmd.Flags().IntVar(&bopts.concurrency, "concurrency", 100, "in-flight requests")
	cmd.Flags().StringVar(&bopts.amount, "amount", "1", "amount per deposit")
	return cmd
}

type benchResult struct {
	total   int
	failed  int64
	elapsed time.Duration
}

func (r benchResult) tps() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.total) / r.elapsed.Seconds()
}

func runBench(ctx context.Context, c pb.LedgerServiceClient, req *pb.MovementRequest, bopts *benchOptions, timeout time.Duration) benchResult {
	concurrency := bopts.concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	var wg sync.WaitGroup
	var failed atomic.Int64
	sem := make(chan struct{}, concurrency)
	start := time.Now()

	for i := 0; i < bopts.total; i++ {
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			callCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			if _, err := c.Deposit(callCtx, req); err != nil {
				failed.Add(1)
			}
		}()
	}
	wg.Wait()

	return benchResult{
		total:   bopts.total,
		failed:  failed.Load(),
		elapsed: time.Since(start),
	}
}
