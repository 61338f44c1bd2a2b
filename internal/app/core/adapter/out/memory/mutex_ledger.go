package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// MutexLedger 是一個使用 Mutex 實現的帳本
//
// 結構:
//
//	book: 帳戶表與交易紀錄
//	mu: 整個帳本共用一把 RWMutex，讀取用 RLock，變更用 Lock
type MutexLedger struct {
	book *book
	mu   sync.RWMutex
}

// NewMutexLedger 建立一個新的 MutexLedger 實例
//
// 參數:
//
//	policy: 帳本規則 (最低開戶金額)
//	opts: 額外設定 (如 WithClock)
//
// 回傳:
//
//	*MutexLedger: MutexLedger 實例
func NewMutexLedger(policy domain.Policy, opts ...Option) *MutexLedger {
	return &MutexLedger{
		book: newBook(policy, opts...),
	}
}

// CreateAccount 開戶
//
// 參數:
//
//	ctx: 上下文
//	number: 6 位數帳號
//	holderName: 戶名
//	initialBalance: 開戶金額 (字串)
//
// 回傳:
//
//	*domain.Account: 新帳戶的拷貝
//	error: 驗證錯誤
func (m *MutexLedger) CreateAccount(ctx context.Context, number, holderName, initialBalance string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.createAccount(number, holderName, initialBalance)
}

// Deposit 存款
//
// 參數:
//
//	ctx: 上下文
//	number: 帳號
//	amount: 存款金額 (字串)
//
// 回傳:
//
//	domain.Movement: 寫入的交易與新餘額
//	error: 處理錯誤 (如帳戶不存在)
func (m *MutexLedger) Deposit(ctx context.Context, number, amount string) (domain.Movement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.deposit(number, amount)
}

// Withdraw 提款
//
// 參數:
//
//	ctx: 上下文
//	number: 帳號
//	amount: 提款金額 (字串)
//
// 回傳:
//
//	domain.Movement: 寫入的交易與新餘額
//	error: 處理錯誤 (如餘額不足)
func (m *MutexLedger) Withdraw(ctx context.Context, number, amount string) (domain.Movement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.withdraw(number, amount)
}

// GetBalance 取得指定帳戶的當前餘額
func (m *MutexLedger) GetBalance(ctx context.Context, number string) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.book.balance(number)
}

// GetAccount 取得帳戶拷貝
func (m *MutexLedger) GetAccount(ctx context.Context, number string) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.book.account(number)
}

// ListAccounts 依帳號排序列出所有帳戶
func (m *MutexLedger) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.book.listAccounts(), nil
}

// UpdateHolderName 變更戶名
func (m *MutexLedger) UpdateHolderName(ctx context.Context, number, newName string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.updateHolderName(number, newName)
}

// DeleteAccount 刪戶並清除交易紀錄
func (m *MutexLedger) DeleteAccount(ctx context.Context, number string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.deleteAccount(number)
}

// ListTransactions 交易明細 (含當時餘額)
func (m *MutexLedger) ListTransactions(ctx context.Context, number string) ([]domain.TransactionView, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.book.listTransactions(number), nil
}

// Stats 全帳本統計
func (m *MutexLedger) Stats(ctx context.Context) (domain.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.book.stats(), nil
}

var _ usecase.Ledger = (*MutexLedger)(nil)
