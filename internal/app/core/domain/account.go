package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account 銀行帳戶
type Account struct {
	// ID: 內部追蹤號，Number 才是對外的主鍵
	ID         uuid.UUID       `json:"id"`
	Number     string          `json:"account_no"`
	HolderName string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewAccount(number, holderName string, balance decimal.Decimal, now time.Time) *Account {
	return &Account{
		ID:         uuid.New(),
		Number:     number,
		HolderName: holderName,
		Balance:    balance,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Deposit 存款
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// Withdraw 提款，餘額不可為負
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	if a.Balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Policy 帳本規則
type Policy struct {
	// MinOpeningBalance: 開戶最低金額，零值代表只要求非負
	MinOpeningBalance decimal.Decimal
}

// Stats 全帳本統計 (儀表板用)
type Stats struct {
	TotalAccounts    int             `json:"total_accounts"`
	TotalBalance     decimal.Decimal `json:"total_balance"`
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
}
