package grpc

import (
	"context"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-mem-bank/proto"
)

type GrpcServer struct {
	pb.UnimplementedLedgerServiceServer
	core *usecase.CoreUseCase
}

func NewGrpcServer(core *usecase.CoreUseCase) *GrpcServer {
	return &GrpcServer{
		core: core,
	}
}

func (s *GrpcServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.Account, error) {
	// 欄位格式與金額都在帳本內驗證，空字串會得到對應的驗證錯誤
	account, err := s.core.CreateAccount(ctx, req.GetAccountNo(), req.GetName(), req.GetInitialBalance())
	if err != nil {
		return nil, toStatus(err)
	}
	return toAccount(account), nil
}

func (s *GrpcServer) Deposit(ctx context.Context, req *pb.MovementRequest) (*pb.BalanceResponse, error) {
	balance, err := s.core.Deposit(ctx, req.GetAccountNo(), req.GetAmount())
	if err != nil {
		return nil, toStatus(err)
	}
	return toBalance(req.GetAccountNo(), balance), nil
}

func (s *GrpcServer) Withdraw(ctx context.Context, req *pb.MovementRequest) (*pb.BalanceResponse, error) {
	balance, err := s.core.Withdraw(ctx, req.GetAccountNo(), req.GetAmount())
	if err != nil {
		return nil, toStatus(err)
	}
	return toBalance(req.GetAccountNo(), balance), nil
}

func (s *GrpcServer) GetBalance(ctx context.Context, req *pb.AccountRequest) (*pb.BalanceResponse, error) {
	balance, err := s.core.GetBalance(ctx, req.GetAccountNo())
	if err != nil {
		return nil, toStatus(err)
	}
	return toBalance(req.GetAccountNo(), balance), nil
}

func (s *GrpcServer) GetAccount(ctx context.Context, req *pb.AccountRequest) (*pb.Account, error) {
	account, err := s.core.GetAccount(ctx, req.GetAccountNo())
	if err != nil {
		return nil, toStatus(err)
	}
	return toAccount(account), nil
}

func (s *GrpcServer) ListAccounts(ctx context.Context, _ *pb.ListAccountsRequest) (*pb.ListAccountsResponse, error) {
	accounts, err := s.core.ListAccounts(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.ListAccountsResponse{
		Accounts: make([]*pb.Account, 0, len(accounts)),
	}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, toAccount(a))
	}
	return resp, nil
}

func (s *GrpcServer) UpdateHolderName(ctx context.Context, req *pb.UpdateHolderNameRequest) (*pb.Account, error) {
	account, err := s.core.UpdateHolderName(ctx, req.GetAccountNo(), req.GetName())
	if err != nil {
		return nil, toStatus(err)
	}
	return toAccount(account), nil
}

func (s *GrpcServer) DeleteAccount(ctx context.Context, req *pb.AccountRequest) (*pb.DeleteAccountResponse, error) {
	if err := s.core.DeleteAccount(ctx, req.GetAccountNo()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.DeleteAccountResponse{
		AccountNo: req.GetAccountNo(),
		Deleted:   true,
	}, nil
}

func (s *GrpcServer) ListTransactions(ctx context.Context, req *pb.AccountRequest) (*pb.ListTransactionsResponse, error) {
	views, err := s.core.ListTransactions(ctx, req.GetAccountNo())
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.ListTransactionsResponse{
		AccountNo:    req.GetAccountNo(),
		Transactions: make([]*pb.Transaction, 0, len(views)),
	}
	for _, v := range views {
		resp.Transactions = append(resp.Transactions, toTransaction(v))
	}
	return resp, nil
}

func (s *GrpcServer) GetStats(ctx context.Context, _ *pb.GetStatsRequest) (*pb.StatsResponse, error) {
	stats, err := s.core.Stats(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.StatsResponse{
		TotalAccounts:    int64(stats.TotalAccounts),
		TotalBalance:     money(stats.TotalBalance),
		TotalDeposits:    money(stats.TotalDeposits),
		TotalWithdrawals: money(stats.TotalWithdrawals),
	}, nil
}
