package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/JoeShih716/go-mem-bank/proto"
)

func TestRenderHistory(t *testing.T) {
	ts := timestamppb.New(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	resp := &pb.ListTransactionsResponse{
		AccountNo: "123456",
		Transactions: []*pb.Transaction{
			{TxnId: "TXN0001", Type: "deposit", Amount: "100.00", Balance: "100.00", Timestamp: ts},
			{TxnId: "TXN0002", Type: "withdraw", Amount: "30.00", Balance: "70.00", Timestamp: ts},
		},
	}

	var buf bytes.Buffer
	renderHistory(&buf, resp)
	out := buf.String()
	for _, want := range []string{"TXN0001", "TXN0002", "WITHDRAW", "70.00", "2024-01-01T09:00:00Z"} {
		if !strings.Contains(strings.ToUpper(out), strings.ToUpper(want)) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	renderHistory(&buf, &pb.ListTransactionsResponse{AccountNo: "123456"})
	if !strings.Contains(buf.String(), "No transactions for account 123456") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRenderStats(t *testing.T) {
	var buf bytes.Buffer
	renderStats(&buf, &pb.StatsResponse{
		TotalAccounts:    3,
		TotalBalance:     "260.00",
		TotalDeposits:    "300.00",
		TotalWithdrawals: "40.00",
	})
	out := buf.String()
	if !strings.Contains(out, "260.00") || !strings.Contains(out, "3") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRenderAccountsWithoutTimestamp(t *testing.T) {
	var buf bytes.Buffer
	renderAccounts(&buf, []*pb.Account{{AccountNo: "123456", Name: "Jane", Balance: "100.00"}})
	if !strings.Contains(buf.String(), "Jane") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"create", "deposit", "withdraw", "balance", "show", "rename", "delete", "history", "accounts", "stats", "bench"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Fatalf("subcommand %s not registered (err=%v)", name, err)
		}
	}
}
