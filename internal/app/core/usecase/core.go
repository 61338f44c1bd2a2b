package usecase

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// CoreUseCase 是核心業務邏輯層，也是所有前端 (gRPC / HTTP / CLI) 共用的入口。
// 成功變更後發布對應的帳本事件。
type CoreUseCase struct {
	ledger    Ledger
	publisher EventPublisher
	now       func() time.Time
}

// Option 設定 CoreUseCase
type Option func(*CoreUseCase)

// WithPublisher 設定事件發布者 (預設 NopPublisher)
func WithPublisher(p EventPublisher) Option {
	return func(c *CoreUseCase) {
		if p != nil {
			c.publisher = p
		}
	}
}

// WithClock 替換時間來源 (測試用)
func WithClock(now func() time.Time) Option {
	return func(c *CoreUseCase) {
		c.now = now
	}
}

func NewCoreUseCase(ledger Ledger, opts ...Option) *CoreUseCase {
	c := &CoreUseCase{
		ledger:    ledger,
		publisher: NopPublisher{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateAccount 開戶
func (c *CoreUseCase) CreateAccount(ctx context.Context, number, holderName, initialBalance string) (*domain.Account, error) {
	account, err := c.ledger.CreateAccount(ctx, number, holderName, initialBalance)
	if err != nil {
		return nil, err
	}

	event := domain.NewEvent(domain.EventAccountCreated, account.Number, c.now())
	event.HolderName = account.HolderName
	event.Amount = account.Balance
	event.Balance = account.Balance
	c.publish(ctx, event)
	return account, nil
}

// Deposit 存款
func (c *CoreUseCase) Deposit(ctx context.Context, number, amount string) (decimal.Decimal, error) {
	movement, err := c.ledger.Deposit(ctx, number, amount)
	if err != nil {
		return decimal.Zero, err
	}
	c.publishMovement(ctx, domain.EventAccountDeposited, movement)
	return movement.Balance, nil
}

// Withdraw 提款
func (c *CoreUseCase) Withdraw(ctx context.Context, number, amount string) (decimal.Decimal, error) {
	movement, err := c.ledger.Withdraw(ctx, number, amount)
	if err != nil {
		return decimal.Zero, err
	}
	c.publishMovement(ctx, domain.EventAccountWithdrawn, movement)
	return movement.Balance, nil
}

// GetBalance 取得帳戶餘額
func (c *CoreUseCase) GetBalance(ctx context.Context, number string) (decimal.Decimal, error) {
	return c.ledger.GetBalance(ctx, number)
}

// GetAccount 取得帳戶
func (c *CoreUseCase) GetAccount(ctx context.Context, number string) (*domain.Account, error) {
	return c.ledger.GetAccount(ctx, number)
}

// ListAccounts 列出所有帳戶
func (c *CoreUseCase) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return c.ledger.ListAccounts(ctx)
}

// UpdateHolderName 變更戶名
func (c *CoreUseCase) UpdateHolderName(ctx context.Context, number, newName string) (*domain.Account, error) {
	account, err := c.ledger.UpdateHolderName(ctx, number, newName)
	if err != nil {
		return nil, err
	}

	event := domain.NewEvent(domain.EventAccountRenamed, number, c.now())
	event.HolderName = account.HolderName
	event.Balance = account.Balance
	c.publish(ctx, event)
	return account, nil
}

// DeleteAccount 刪戶
func (c *CoreUseCase) DeleteAccount(ctx context.Context, number string) error {
	if err := c.ledger.DeleteAccount(ctx, number); err != nil {
		return err
	}
	c.publish(ctx, domain.NewEvent(domain.EventAccountDeleted, number, c.now()))
	return nil
}

// ListTransactions 交易明細
func (c *CoreUseCase) ListTransactions(ctx context.Context, number string) ([]domain.TransactionView, error) {
	return c.ledger.ListTransactions(ctx, number)
}

// Stats 全帳本統計
func (c *CoreUseCase) Stats(ctx context.Context) (domain.Stats, error) {
	return c.ledger.Stats(ctx)
}

// publishMovement 事件金額取自帳本實際寫入的交易
func (c *CoreUseCase) publishMovement(ctx context.Context, eventType domain.EventType, movement domain.Movement) {
	event := domain.NewEvent(eventType, movement.Transaction.AccountNumber, c.now())
	event.Amount = movement.Transaction.Amount
	event.Balance = movement.Balance
	c.publish(ctx, event)
}

// publish 交易已經生效，發布失敗只記錄不回傳
func (c *CoreUseCase) publish(ctx context.Context, event domain.Event) {
	if err := c.publisher.Publish(ctx, event); err != nil {
		log.Printf("publish %s for %s failed: %v", event.Type, event.AccountNumber, err)
	}
}
