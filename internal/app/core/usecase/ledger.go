package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// Ledger 是帳務系統的介面；每個方法都是一次「驗證後變更」，失敗時狀態不變。
// 金額以原始字串傳入，由實作在臨界區內依序驗證 (帳號 → 存在與否 → 戶名 → 金額)。
type Ledger interface {
	// CreateAccount 開戶並寫入一筆開戶存款
	CreateAccount(ctx context.Context, number, holderName, initialBalance string) (*domain.Account, error)
	// Deposit 存款，回傳寫入的交易與新餘額
	Deposit(ctx context.Context, number, amount string) (domain.Movement, error)
	// Withdraw 提款，回傳寫入的交易與新餘額
	Withdraw(ctx context.Context, number, amount string) (domain.Movement, error)
	// GetBalance 取得帳戶餘額
	GetBalance(ctx context.Context, number string) (decimal.Decimal, error)
	// GetAccount 取得帳戶快照
	GetAccount(ctx context.Context, number string) (*domain.Account, error)
	// ListAccounts 依帳號排序列出所有帳戶
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	// UpdateHolderName 變更戶名
	UpdateHolderName(ctx context.Context, number, newName string) (*domain.Account, error)
	// DeleteAccount 刪戶並清除該帳號的交易
	DeleteAccount(ctx context.Context, number string) error
	// ListTransactions 交易明細；帳戶不存在時回傳空切片
	ListTransactions(ctx context.Context, number string) ([]domain.TransactionView, error)
	// Stats 全帳本統計
	Stats(ctx context.Context) (domain.Stats, error)
}
