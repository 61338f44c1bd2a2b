package memory

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// book 帳戶表與交易紀錄的實際狀態。
// book 本身不加鎖，由外層引擎 (MutexLedger / LMAXLedger) 保證同一時間只有一個呼叫者。
// 所有回傳值都是拷貝，不會洩漏內部指標。
type book struct {
	accounts map[string]*domain.Account
	// 只會追加，刪戶時整批清除該帳號的紀錄
	transactions []domain.Transaction
	policy       domain.Policy
	now          func() time.Time
}

// Option 設定帳本引擎
type Option func(*book)

// WithClock 替換時間來源 (測試用)
func WithClock(now func() time.Time) Option {
	return func(b *book) {
		b.now = now
	}
}

func newBook(policy domain.Policy, opts ...Option) *book {
	b := &book{
		accounts:     make(map[string]*domain.Account),
		transactions: make([]domain.Transaction, 0),
		policy:       policy,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// createAccount 驗證順序：帳號格式 → 重複 → 戶名 → 金額 → 最低開戶金額
func (b *book) createAccount(number, holderName, initialBalance string) (*domain.Account, error) {
	if err := domain.ValidateAccountNumber(number); err != nil {
		return nil, err
	}
	if _, ok := b.accounts[number]; ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountAlreadyExists, number)
	}
	name, err := domain.NormalizeHolderName(holderName)
	if err != nil {
		return nil, err
	}
	amount, err := domain.ParseAmount(initialBalance)
	if err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", domain.ErrInvalidAmount)
	}
	if amount.LessThan(b.policy.MinOpeningBalance) {
		return nil, fmt.Errorf("%w: need at least %s", domain.ErrBelowMinimumBalance,
			b.policy.MinOpeningBalance.StringFixed(domain.CurrencyScale))
	}

	now := b.now()
	account := domain.NewAccount(number, name, amount, now)
	b.accounts[number] = account
	// 交易金額必須為正，零元開戶不留紀錄
	if amount.IsPositive() {
		b.transactions = append(b.transactions, domain.NewTransaction(number, domain.TransactionTypeDeposit, amount, now))
	}
	return copyAccount(account), nil
}

func (b *book) deposit(number, amount string) (domain.Movement, error) {
	account, ok := b.accounts[number]
	if !ok {
		return domain.Movement{}, domain.ErrAccountNotFound
	}
	d, err := domain.ParsePositiveAmount(amount)
	if err != nil {
		return domain.Movement{}, err
	}
	if err := account.Deposit(d); err != nil {
		return domain.Movement{}, err
	}

	now := b.now()
	account.UpdatedAt = now
	tx := domain.NewTransaction(number, domain.TransactionTypeDeposit, d, now)
	b.transactions = append(b.transactions, tx)
	return domain.Movement{Transaction: tx, Balance: account.Balance}, nil
}

func (b *book) withdraw(number, amount string) (domain.Movement, error) {
	account, ok := b.accounts[number]
	if !ok {
		return domain.Movement{}, domain.ErrAccountNotFound
	}
	d, err := domain.ParsePositiveAmount(amount)
	if err != nil {
		return domain.Movement{}, err
	}
	if err := account.Withdraw(d); err != nil {
		return domain.Movement{}, err
	}

	now := b.now()
	account.UpdatedAt = now
	tx := domain.NewTransaction(number, domain.TransactionTypeWithdraw, d, now)
	b.transactions = append(b.transactions, tx)
	return domain.Movement{Transaction: tx, Balance: account.Balance}, nil
}

func (b *book) balance(number string) (decimal.Decimal, error) {
	account, ok := b.accounts[number]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	return account.Balance, nil
}

func (b *book) account(number string) (*domain.Account, error) {
	account, ok := b.accounts[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return copyAccount(account), nil
}

func (b *book) listAccounts() []*domain.Account {
	out := make([]*domain.Account, 0, len(b.accounts))
	for _, a := range b.accounts {
		out = append(out, copyAccount(a))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Number < out[j].Number
	})
	return out
}

func (b *book) updateHolderName(number, newName string) (*domain.Account, error) {
	account, ok := b.accounts[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	name, err := domain.NormalizeHolderName(newName)
	if err != nil {
		return nil, err
	}
	account.HolderName = name
	account.UpdatedAt = b.now()
	return copyAccount(account), nil
}

// deleteAccount 刪戶並清除該帳號的交易，之後同帳號重新開戶會是全新的明細
func (b *book) deleteAccount(number string) error {
	if _, ok := b.accounts[number]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(b.accounts, number)

	kept := make([]domain.Transaction, 0, len(b.transactions))
	for _, tx := range b.transactions {
		if tx.AccountNumber != number {
			kept = append(kept, tx)
		}
	}
	b.transactions = kept
	return nil
}

func (b *book) listTransactions(number string) []domain.TransactionView {
	var txs []domain.Transaction
	for _, tx := range b.transactions {
		if tx.AccountNumber == number {
			txs = append(txs, tx)
		}
	}
	return domain.BuildHistory(txs)
}

func (b *book) stats() domain.Stats {
	s := domain.Stats{
		TotalAccounts:    len(b.accounts),
		TotalBalance:     decimal.Zero,
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
	}
	for _, a := range b.accounts {
		s.TotalBalance = s.TotalBalance.Add(a.Balance)
	}
	for _, tx := range b.transactions {
		switch tx.Type {
		case domain.TransactionTypeDeposit:
			s.TotalDeposits = s.TotalDeposits.Add(tx.Amount)
		case domain.TransactionTypeWithdraw:
			s.TotalWithdrawals = s.TotalWithdrawals.Add(tx.Amount)
		}
	}
	return s
}

func copyAccount(a *domain.Account) *domain.Account {
	cp := *a
	return &cp
}
