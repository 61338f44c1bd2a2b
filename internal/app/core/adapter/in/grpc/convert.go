package grpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	pb "github.com/JoeShih716/go-mem-bank/proto"
)

// toStatus 把業務錯誤轉成 gRPC status，訊息以錯誤種類開頭 (例如 "AccountNotFound: account not found")
func toStatus(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	if errors.Is(err, domain.ErrLedgerStopped) {
		return status.Error(codes.Unavailable, err.Error())
	}

	kind := domain.Kind(err)
	var code codes.Code
	switch kind {
	case domain.KindAccountNotFound:
		code = codes.NotFound
	case domain.KindDuplicateAccount:
		code = codes.AlreadyExists
	case domain.KindInsufficientFunds, domain.KindBelowMinimumBalance:
		code = codes.FailedPrecondition
	case domain.KindInvalidAccountNumber, domain.KindInvalidName, domain.KindInvalidAmount:
		code = codes.InvalidArgument
	default:
		code = codes.Internal
	}
	return status.Error(code, fmt.Sprintf("%s: %s", kind, err.Error()))
}

func money(d decimal.Decimal) string {
	return d.StringFixed(domain.CurrencyScale)
}

func toAccount(a *domain.Account) *pb.Account {
	return &pb.Account{
		AccountNo: a.Number,
		Name:      a.HolderName,
		Balance:   money(a.Balance),
		CreatedAt: timestamppb.New(a.CreatedAt),
		UpdatedAt: timestamppb.New(a.UpdatedAt),
	}
}

func toBalance(number string, balance decimal.Decimal) *pb.BalanceResponse {
	return &pb.BalanceResponse{
		AccountNo: number,
		Balance:   money(balance),
	}
}

func toTransaction(v domain.TransactionView) *pb.Transaction {
	return &pb.Transaction{
		TxnId:     v.SequenceID,
		Type:      string(v.Type),
		Amount:    money(v.Amount),
		Balance:   money(v.RunningBalance),
		Timestamp: timestamppb.New(v.Timestamp),
	}
}
