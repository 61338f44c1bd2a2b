package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/JoeShih716/go-mem-bank/proto"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

func formatTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.AsTime().Format(time.RFC3339)
}

func renderAccounts(w io.Writer, accounts []*pb.Account) {
	table := newTable(w, []string{"Account No", "Name", "Balance", "Created At"})
	for _, a := range accounts {
		table.Append([]string{
			a.GetAccountNo(),
			a.GetName(),
			a.GetBalance(),
			formatTime(a.GetCreatedAt()),
		})
	}
	table.Render()
}

func renderBalance(w io.Writer, resp *pb.BalanceResponse) {
	fmt.Fprintf(w, "Account %s balance: %s\n", resp.GetAccountNo(), resp.GetBalance())
}

func renderHistory(w io.Writer, resp *pb.ListTransactionsResponse) {
	rows := resp.GetTransactions()
	if len(rows) == 0 {
		fmt.Fprintf(w, "No transactions for account %s\n", resp.GetAccountNo())
		return
	}
	table := newTable(w, []string{"Txn ID", "Type", "Amount", "Balance", "Timestamp"})
	for _, r := range rows {
		table.Append([]string{
			r.GetTxnId(),
			r.GetType(),
			r.GetAmount(),
			r.GetBalance(),
			formatTime(r.GetTimestamp()),
		})
	}
	table.Render()
}

func renderStats(w io.Writer, resp *pb.StatsResponse) {
	table := newTable(w, []string{"Metric", "Value"})
	table.Append([]string{"Total accounts", strconv.FormatInt(resp.GetTotalAccounts(), 10)})
	table.Append([]string{"Total balance", resp.GetTotalBalance()})
	table.Append([]string{"Total deposits", resp.GetTotalDeposits()})
	table.Append([]string{"Total withdrawals", resp.GetTotalWithdrawals()})
	table.Render()
}
