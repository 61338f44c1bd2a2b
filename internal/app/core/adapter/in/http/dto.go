package http

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// Amount 金額欄位，JSON 可以是數字或字串；原樣保留交給帳本解析，不經過 float64
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("amount must be a number or a numeric string")
	}
	*a = Amount(n.String())
	return nil
}

type createAccountRequest struct {
	AccountNo      string `json:"account_no" validate:"required"`
	Name           string `json:"name" validate:"required"`
	InitialBalance Amount `json:"initial_balance" validate:"required"`
}

type updateAccountRequest struct {
	Name string `json:"name" validate:"required"`
}

type movementRequest struct {
	Amount Amount `json:"amount" validate:"required"`
}

// accountResponse 金額固定兩位小數輸出
type accountResponse struct {
	AccountNo string    `json:"account_no"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		AccountNo: a.Number,
		Name:      a.HolderName,
		Balance:   a.Balance.StringFixed(domain.CurrencyScale),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type transactionResponse struct {
	TxnID     string    `json:"txn_id"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	Balance   string    `json:"balance"`
}

func toTransactionResponses(views []domain.TransactionView) []transactionResponse {
	out := make([]transactionResponse, 0, len(views))
	for _, v := range views {
		out = append(out, transactionResponse{
			TxnID:     v.SequenceID,
			Type:      string(v.Type),
			Amount:    v.Amount.StringFixed(domain.CurrencyScale),
			Timestamp: v.Timestamp,
			Balance:   v.RunningBalance.StringFixed(domain.CurrencyScale),
		})
	}
	return out
}

type statsResponse struct {
	TotalAccounts    int    `json:"total_accounts"`
	TotalBalance     string `json:"total_balance"`
	TotalDeposits    string `json:"total_deposits"`
	TotalWithdrawals string `json:"total_withdrawals"`
}

func toStatsResponse(s domain.Stats) statsResponse {
	return statsResponse{
		TotalAccounts:    s.TotalAccounts,
		TotalBalance:     s.TotalBalance.StringFixed(domain.CurrencyScale),
		TotalDeposits:    s.TotalDeposits.StringFixed(domain.CurrencyScale),
		TotalWithdrawals: s.TotalWithdrawals.StringFixed(domain.CurrencyScale),
	}
}
