package grpc_test

import (
	"context"
	"net"
	"testing"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	grpcadapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/in/grpc"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-mem-bank/proto"
)

func newConn(t *testing.T) *grpc.ClientConn {
	t.Helper()

	ledger := memory.NewMutexLedger(domain.Policy{MinOpeningBalance: decimal.NewFromInt(100)})
	core := usecase.NewCoreUseCase(ledger)

	lis := bufconn.Listen(1 << 20)
	srv := grpcadapter.NewServer(grpcadapter.NewGrpcServer(core))
	go func() {
		_ = srv.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		conn.Close()
		srv.Stop()
	})
	return conn
}

func newClient(t *testing.T) pb.LedgerServiceClient {
	return pb.NewLedgerServiceClient(newConn(t))
}

func TestGrpcServerLifecycle(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	account, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{
		AccountNo:      "123456",
		Name:           "John Doe",
		InitialBalance: "100",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if account.GetBalance() != "100.00" {
		t.Fatalf("balance=%q", account.GetBalance())
	}
	if !account.GetCreatedAt().IsValid() || account.GetCreatedAt().AsTime().IsZero() {
		t.Fatalf("created_at=%v", account.GetCreatedAt())
	}

	if _, err := client.Withdraw(ctx, &pb.MovementRequest{AccountNo: "123456", Amount: "30"}); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	balance, err := client.Deposit(ctx, &pb.MovementRequest{AccountNo: "123456", Amount: "50"})
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if balance.GetBalance() != "120.00" {
		t.Fatalf("balance=%q want 120.00", balance.GetBalance())
	}

	history, err := client.ListTransactions(ctx, &pb.AccountRequest{AccountNo: "123456"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"100.00", "70.00", "120.00"}
	if len(history.GetTransactions()) != len(want) {
		t.Fatalf("rows=%d want %d", len(history.GetTransactions()), len(want))
	}
	for i, row := range history.GetTransactions() {
		if row.GetBalance() != want[i] {
			t.Fatalf("row %d balance=%s want %s", i, row.GetBalance(), want[i])
		}
	}
	if history.GetTransactions()[1].GetTxnId() != "TXN0002" || history.GetTransactions()[1].GetType() != "withdraw" {
		t.Fatalf("unexpected second row %v", history.GetTransactions()[1])
	}

	accounts, err := client.ListAccounts(ctx, &pb.ListAccountsRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts.GetAccounts()) != 1 || accounts.GetAccounts()[0].GetName() != "John Doe" {
		t.Fatalf("accounts=%v", accounts.GetAccounts())
	}

	stats, err := client.GetStats(ctx, &pb.GetStatsRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if stats.GetTotalAccounts() != 1 || stats.GetTotalWithdrawals() != "30.00" {
		t.Fatalf("stats=%v", stats)
	}

	deleted, err := client.DeleteAccount(ctx, &pb.AccountRequest{AccountNo: "123456"})
	if err != nil {
		t.Fatal(err)
	}
	if !deleted.GetDeleted() {
		t.Fatal("deleted flag not set")
	}
	_, err = client.GetBalance(ctx, &pb.AccountRequest{AccountNo: "123456"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", err)
	}
}

func TestGrpcServerErrorCodes(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	if _, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{
		AccountNo:      "123456",
		Name:           "Jane",
		InitialBalance: "200",
	}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{"missing amount", func() error {
			_, err := client.Deposit(ctx, &pb.MovementRequest{AccountNo: "123456"})
			return err
		}, codes.InvalidArgument},
		{"huge exponent", func() error {
			_, err := client.Deposit(ctx, &pb.MovementRequest{AccountNo: "123456", Amount: "1e10000000"})
			return err
		}, codes.InvalidArgument},
		{"duplicate", func() error {
			_, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{AccountNo: "123456", Name: "Other", InitialBalance: "500"})
			return err
		}, codes.AlreadyExists},
		{"below minimum", func() error {
			_, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{AccountNo: "654321", Name: "Other", InitialBalance: "5"})
			return err
		}, codes.FailedPrecondition},
		{"insufficient funds", func() error {
			_, err := client.Withdraw(ctx, &pb.MovementRequest{AccountNo: "123456", Amount: "1000"})
			return err
		}, codes.FailedPrecondition},
		{"invalid name", func() error {
			_, err := client.UpdateHolderName(ctx, &pb.UpdateHolderNameRequest{AccountNo: "123456", Name: "Jane 2"})
			return err
		}, codes.InvalidArgument},
		{"not found", func() error {
			_, err := client.GetAccount(ctx, &pb.AccountRequest{AccountNo: "000000"})
			return err
		}, codes.NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(tt.call()); got != tt.want {
				t.Fatalf("code=%s want %s", got, tt.want)
			}
		})
	}
}

func TestGrpcServerReflection(t *testing.T) {
	conn := newConn(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := reflectionpb.NewServerReflectionClient(conn).ServerReflectionInfo(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if err := stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{ListServices: "*"},
	}); err != nil {
		t.Fatal(err)
	}
	resp, err := stream.Recv()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, svc := range resp.GetListServicesResponse().GetService() {
		if svc.GetName() == "bank.v1.LedgerService" {
			found = true
		}
	}
	if !found {
		t.Fatalf("LedgerService not listed: %v", resp.GetListServicesResponse().GetService())
	}

	if err := stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{FileContainingSymbol: "bank.v1.LedgerService"},
	}); err != nil {
		t.Fatal(err)
	}
	resp, err = stream.Recv()
	if err != nil {
		t.Fatal(err)
	}
	if e := resp.GetErrorResponse(); e != nil {
		t.Fatalf("reflection error: %s", e.GetErrorMessage())
	}
	if len(resp.GetFileDescriptorResponse().GetFileDescriptorProto()) == 0 {
		t.Fatal("no file descriptor returned")
	}
}
