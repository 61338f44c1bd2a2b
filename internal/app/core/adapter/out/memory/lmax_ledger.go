package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// DefaultQueueSize 輸送帶預設緩衝
const DefaultQueueSize = 1000

// ledgerRequest 請求包裝，讓呼叫端可以等待 Run Loop 的結果
type ledgerRequest struct {
	ctx    context.Context
	apply  func(b *book) error
	Result chan error
	// claimed 由 Run Loop (準備執行) 或呼叫端 (放棄等待) 搶先設定，只有一方能成功
	claimed atomic.Bool
}

// LMAXLedger 單一寫入者帳本：所有操作 (含讀取) 都送進輸送帶，由同一個 goroutine 依序執行，
// 因此 book 不需要任何鎖。必須先呼叫 Start 才能處理請求。
type LMAXLedger struct {
	book *book
	// 輸送帶 負責接收請求
	requests chan *ledgerRequest
	// Run Loop 結束後關閉
	stopped chan struct{}
	// Pool 減少 GC 壓力
	requestPool sync.Pool
	startOnce   sync.Once
}

// NewLMAXLedger 建立一個新的 LMAXLedger 實例
//
// 參數:
//
//	policy: 帳本規則
//	queueSize: 輸送帶緩衝大小，<= 0 時使用 DefaultQueueSize
//	opts: 額外設定
//
// 回傳:
//
//	*LMAXLedger: LMAXLedger 實例
func NewLMAXLedger(policy domain.Policy, queueSize int, opts ...Option) *LMAXLedger {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &LMAXLedger{
		book:     newBook(policy, opts...),
		requests: make(chan *ledgerRequest, queueSize),
		stopped:  make(chan struct{}),
		requestPool: sync.Pool{
			New: func() interface{} {
				return &ledgerRequest{
					Result: make(chan error, 1),
				}
			},
		},
	}
}

// Start 啟動核心引擎 (非同步)，ctx 取消後把剩下的請求處理完再結束
func (l *LMAXLedger) Start(ctx context.Context) {
	l.startOnce.Do(func() {
		go l.run(ctx)
	})
}

// Done 引擎停止後關閉
func (l *LMAXLedger) Done() <-chan struct{} {
	return l.stopped
}

func (l *LMAXLedger) run(ctx context.Context) {
	defer close(l.stopped)
	for {
		select {
		case <-ctx.Done():
			// 收到關閉信號，把剩下的請求處理完
			l.drain()
			return
		case req := <-l.requests:
			l.process(req)
		}
	}
}

func (l *LMAXLedger) drain() {
	for {
		select {
		case req := <-l.requests:
			l.process(req)
		default:
			return
		}
	}
}

// process 執行單筆請求並回傳結果；呼叫端已放棄的請求直接略過
func (l *LMAXLedger) process(req *ledgerRequest) {
	if !req.claimed.CompareAndSwap(false, true) {
		return
	}
	if err := req.ctx.Err(); err != nil {
		req.Result <- err
		return
	}
	req.Result <- req.apply(l.book)
}

// submit 放入輸送帶並等待結果
//
// PostRequest(等待) -> Channel -> Run Loop (核心) -> book -> Result Channel -> PostRequest(收到結果)
//
// ctx 取消時，若 Run Loop 尚未取走請求就放棄它 (請求不會被執行)；
// 已經開始執行則等待結果，呼叫端看到的成敗永遠與帳本狀態一致。
func (l *LMAXLedger) submit(ctx context.Context, apply func(b *book) error) error {
	req := l.requestPool.Get().(*ledgerRequest)
	req.ctx = ctx
	req.apply = apply
	req.claimed.Store(false)
	// 清空 Channel (理論上應該是空的)
	select {
	case <-req.Result:
	default:
	}

	select {
	case l.requests <- req:
	case <-l.stopped:
		l.release(req)
		return domain.ErrLedgerStopped
	case <-ctx.Done():
		l.release(req)
		return ctx.Err()
	}

	select {
	case err := <-req.Result:
		l.release(req)
		return err
	case <-l.stopped:
		// Loop 結束前送出的結果一定已經在 Result 裡
		select {
		case err := <-req.Result:
			l.release(req)
			return err
		default:
			// Loop 已結束，請求永遠不會被執行；仍留在輸送帶裡，不放回 Pool
			return domain.ErrLedgerStopped
		}
	case <-ctx.Done():
		if req.claimed.CompareAndSwap(false, true) {
			// 搶先放棄：Loop 之後取到會略過，req 仍在輸送帶裡，不放回 Pool
			return ctx.Err()
		}
		// Loop 已經在執行，等它寫完結果
		err := <-req.Result
		l.release(req)
		return err
	}
}

func (l *LMAXLedger) release(req *ledgerRequest) {
	req.ctx = nil
	req.apply = nil
	l.requestPool.Put(req)
}

// CreateAccount 開戶
func (l *LMAXLedger) CreateAccount(ctx context.Context, number, holderName, initialBalance string) (*domain.Account, error) {
	var account *domain.Account
	err := l.submit(ctx, func(b *book) (err error) {
		account, err = b.createAccount(number, holderName, initialBalance)
		return err
	})
	return account, err
}

// Deposit 存款
func (l *LMAXLedger) Deposit(ctx context.Context, number, amount string) (domain.Movement, error) {
	var movement domain.Movement
	err := l.submit(ctx, func(b *book) (err error) {
		movement, err = b.deposit(number, amount)
		return err
	})
	return movement, err
}

// Withdraw 提款
func (l *LMAXLedger) Withdraw(ctx context.Context, number, amount string) (domain.Movement, error) {
	var movement domain.Movement
	err := l.submit(ctx, func(b *book) (err error) {
		movement, err = b.withdraw(number, amount)
		return err
	})
	return movement, err
}

// GetBalance 取得指定帳戶的當前餘額
func (l *LMAXLedger) GetBalance(ctx context.Context, number string) (decimal.Decimal, error) {
	balance := decimal.Zero
	err := l.submit(ctx, func(b *book) (err error) {
		balance, err = b.balance(number)
		return err
	})
	return balance, err
}

// GetAccount 取得帳戶拷貝
func (l *LMAXLedger) GetAccount(ctx context.Context, number string) (*domain.Account, error) {
	var account *domain.Account
	err := l.submit(ctx, func(b *book) (err error) {
		account, err = b.account(number)
		return err
	})
	return account, err
}

// ListAccounts 依帳號排序列出所有帳戶
func (l *LMAXLedger) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	var accounts []*domain.Account
	err := l.submit(ctx, func(b *book) error {
		accounts = b.listAccounts()
		return nil
	})
	return accounts, err
}

// UpdateHolderName 變更戶名
func (l *LMAXLedger) UpdateHolderName(ctx context.Context, number, newName string) (*domain.Account, error) {
	var account *domain.Account
	err := l.submit(ctx, func(b *book) (err error) {
		account, err = b.updateHolderName(number, newName)
		return err
	})
	return account, err
}

// DeleteAccount 刪戶並清除交易紀錄
func (l *LMAXLedger) DeleteAccount(ctx context.Context, number string) error {
	return l.submit(ctx, func(b *book) error {
		return b.deleteAccount(number)
	})
}

// ListTransactions 交易明細 (含當時餘額)
func (l *LMAXLedger) ListTransactions(ctx context.Context, number string) ([]domain.TransactionView, error) {
	var views []domain.TransactionView
	err := l.submit(ctx, func(b *book) error {
		views = b.listTransactions(number)
		return nil
	})
	return views, err
}

// Stats 全帳本統計
func (l *LMAXLedger) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	err := l.submit(ctx, func(b *book) error {
		stats = b.stats()
		return nil
	})
	return stats, err
}

var _ usecase.Ledger = (*LMAXLedger)(nil)
