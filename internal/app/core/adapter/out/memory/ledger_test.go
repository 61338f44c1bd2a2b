package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// stepClock 每次呼叫往前推進一秒，讓交易時間可預期
func stepClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

type engine struct {
	name string
	new  func(t *testing.T, policy domain.Policy) usecase.Ledger
}

func engines() []engine {
	return []engine{
		{
			name: "mutex",
			new: func(t *testing.T, policy domain.Policy) usecase.Ledger {
				return NewMutexLedger(policy, WithClock(stepClock()))
			},
		},
		{
			name: "lmax",
			new: func(t *testing.T, policy domain.Policy) usecase.Ledger {
				ctx, cancel := context.WithCancel(context.Background())
				l := NewLMAXLedger(policy, 16, WithClock(stepClock()))
				l.Start(ctx)
				t.Cleanup(func() {
					cancel()
					<-l.Done()
				})
				return l
			},
		},
	}
}

func forEachEngine(t *testing.T, policy domain.Policy, fn func(t *testing.T, l usecase.Ledger)) {
	for _, e := range engines() {
		e := e
		t.Run(e.name, func(t *testing.T) {
			fn(t, e.new(t, policy))
		})
	}
}

var defaultPolicy = domain.Policy{MinOpeningBalance: dec("100")}

func TestLedgerScenario(t *testing.T) {
	forEachEngine(t, defaultPolicy, func(t *testing.T, l usecase.Ledger) {
		ctx := context.Background()

		account, err := l.CreateAccount(ctx, "123456", "  John Doe ", "100")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if account.HolderName != "John Doe" {
			t.Fatalf("name=%q want trimmed", account.HolderName)
		}

		if _, err := l.Withdraw(ctx, "123456", "30"); err != nil {
			t.Fatalf("withdraw: %v", err)
		}
		movement, err := l.Deposit(ctx, "123456", "50")
		if err != nil {
			t.Fatalf("deposit: %v", err)
		}
		if !movement.Balance.Equal(dec("120")) {
			t.Fatalf("balance=%s want 120", movement.Balance)
		}
		if movement.Transaction.Type != domain.TransactionTypeDeposit || !movement.Transaction.Amount.Equal(dec("50")) {
			t.Fatalf("unexpected transaction %+v", movement.Transaction)
		}

		views, err := l.ListTransactions(ctx, "123456")
		if err != nil {
			t.Fatal(err)
		}
		want := []struct {
			typ     domain.TransactionType
			amount  string
			running string
		}{
			{domain.TransactionTypeDeposit, "100", "100"},
			{domain.TransactionTypeWithdraw, "30", "70"},
			{domain.TransactionTypeDeposit, "50", "120"},
		}
		if len(views) != len(want) {
			t.Fatalf("len=%d want=%d", len(views), len(want))
		}
		for i, w := range want {
			v := views[i]
			if v.Type != w.typ || !v.Amount.Equal(dec(w.amount)) || !v.RunningBalance.Equal(dec(w.running)) {
				t.Fatalf("row %d = %+v, want %+v", i, v, w)
			}
			if v.SequenceID != fmt.Sprintf("TXN%04d", i+1) {
				t.Fatalf("row %d seq=%s", i, v.SequenceID)
			}
		}

		got, err := l.GetBalance(ctx, "123456")
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(views[len(views)-1].RunningBalance) {
			t.Fatalf("balance=%s does not match last running balance", got)
		}
	})
}

func TestLedgerCreateValidationOrder(t *testing.T) {
	forEachEngine(t, defaultPolicy, func(t *testing.T, l usecase.Ledger) {
		ctx := context.Background()
		if _, err := l.CreateAccount(ctx, "111111", "Alice", "500"); err != nil {
			t.Fatal(err)
		}

		tests := []struct {
			name    string
			number  string
			holder  string
			amount  string
			wantErr error
		}{
			{"bad number wins over everything", "12a", "1", "x", domain.ErrInvalidAccountNumber},
			{"duplicate wins over bad name and amount", "111111", "!!", "abc", domain.ErrAccountAlreadyExists},
			{"duplicate with valid args", "111111", "Bob", "1000", domain.ErrAccountAlreadyExists},
			{"bad name before bad amount", "222222", "R2D2", "abc", domain.ErrInvalidName},
			{"blank name", "222222", "   ", "100", domain.ErrInvalidName},
			{"unparsable amount", "222222", "Bob", "ten", domain.ErrInvalidAmount},
			{"negative amount", "222222", "Bob", "-5", domain.ErrInvalidAmount},
			{"below minimum", "222222", "Bob", "99.99", domain.ErrBelowMinimumBalance},
		}
		for _, tt := range tests {
			_, err := l.CreateAccount(ctx, tt.number, tt.holder, tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("%s: err=%v want %v", tt.name, err, tt.wantErr)
			}
		}

		accounts, err := l.ListAccounts(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(accounts) != 1 {
			t.Fatalf("failed creates changed state: %d accounts", len(accounts))
		}
		balance, _ := l.GetBalance(ctx, "111111")
		if !balance.Equal(dec("500")) {
			t.Fatalf("duplicate create touched balance: %s", balance)
		}
	})
}

func TestLedgerZeroOpeningBalance(t *testing.T) {
	forEachEngine(t, domain.Policy{}, func(t *testing.T, l usecase.Ledger) {
		ctx := context.Background()
		if _, err := l.CreateAccount(ctx, "000001", "Zero", "0"); err != nil {
			t.Fatal(err)
		}
		views, err := l.ListTransactions(ctx, "000001")
		if err != nil {
			t.Fatal(err)
		}
		if len(views) != 0 {
			t.Fatalf("zero opening balance recorded %d transactions", len(views))
		}
	})
}

func TestLedgerDepositWithdrawRoundTrip(t *testing.T) {
	forEachEngine(t, defaultPolicy, func(t *testing.T, l usecase.Ledger) {
		ctx := context.Background()
		if _, err := l.CreateAccount(ctx, "123456", "Jane", "250.50"); err != nil {
			t.Fatal(err)
		}
		for _, amount := range []string{"0.01", "10", "1234.56"} {
			if _, err := l.Deposit(ctx, "123456", amount); err != nil {
				t.Fatal(err)
			}
			movement, err := l.Withdraw(ctx, "123456", amount)
			if err != nil {
				t.Fatal(err)
			}
			if !movement.Balance.Equal(dec("250.50")) {
				t.Fatalf("after round trip of %s balance=%s", amount, movement.Balance)
			}
			if !movement.Transaction.Amount.Equal(dec(amount)) {
				t.Fatalf("recorded amount=%s want %s", movement.Transaction.Amount, amount)
			}
		}
	})
}

func TestLedgerMovementErrors(t *testing.T) {
	forEachEngine(t, defaultPolicy, func(t *testing.T, l usecase.Ledger) {
		ctx := context.Background()
		if _, err := l.CreateAccount(ctx, "123456", "Jane", "100"); err != nil {
			t.Fatal(err)
		}

		if _, err := l.Deposit(ctx, "999999", "abc"); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("missing account should win over bad amount, got %v", err)
		}
		if _, err := l.Withdraw(ctx, "999999", "10"); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("want not found, got %v", err)
		}
		for _, amount := range []string{"0", "-1", "0.001", "", "1e", "1e10000000"} {
			if _, err := l.Deposit(ctx, "123456", amount); !errors.Is(err, domain.ErrInvalidAmount) {
				t.Fatalf("deposit %q: want invalid amount, got %v", amount, err)
			}
		}
		if _, err := l.Withdraw(ctx, "123456", "100.01"); !errors.Is(err, domain.ErrInsufficientBalance) {
			t.Fatalf("want insufficient funds, got %v", err)
		}

		balance, _ := l.GetBalance(ctx, "123456")
		if !balance.Equal(dec("100")) {
			t.Fatalf("failed movements changed balance: %s", balance)
		}
		views, _ := l.ListTransactions(ctx, "123456")
		if len(views) != 1 {
			t.Fatalf("failed movements recorded transactions: %d", len(views))
		}

		// 提到剛好歸零是允許的
		movement, err := l.Withdraw(ctx, "123456", "100")
		if err != nil {
			t.Fatal(err)
		}
		if !movement.Balance.IsZero() {
			t.Fatalf("balance=%s want 0", movement.Balance)
		}
	})
}

func TestLedgerUpdateAndDelete(t *testing.T) {
	forEachEngine(t, defaultPolicy, func(t *testing.T, l usecase.Ledger) {
		ctx := context.Background()
		if _, err := l.CreateAccount(ctx, "123456", "Jane", "100"); err != nil {
			t.Fatal(err)
		}
		if _, err := l.Deposit(ctx, "123456", "20"); err != nil {
			t.Fatal(err)
		}

		if _, err := l.UpdateHolderName(ctx, "123456", "J4ne"); !errors.Is(err, domain.ErrInvalidName) {
			t.Fatalf("want invalid name, got %v", err)
		}
		if _, err := l.UpdateHolderName(ctx, "654321", "Jane"); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("want not found, got %v", err)
		}
		account, err := l.UpdateHolderName(ctx, "123456", "Jane Smith")
		if err != nil {
			t.Fatal(err)
		}
		if account.HolderName != "Jane Smith" || !account.Balance.Equal(dec("120")) {
			t.Fatalf("unexpected account after rename: %+v", account)
		}

		if err := l.DeleteAccount(ctx, "123456"); err != nil {
			t.Fatal(err)
		}
		if err := l.DeleteAccount(ctx, "123456"); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("second delete: want not found, got %v", err)
		}
		if _, err := l.GetAccount(ctx, "123456"); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("want not found, got %v", err)
		}
		views, err := l.ListTransactions(ctx, "123456")
		if err != nil {
			t.Fatal(err)
		}
		if views == nil || len(views) != 0 {
			t.Fatalf("deleted account history = %#v, want empty", views)
		}

		// 同帳號重新開戶是全新的明細
		if _, err := l.CreateAccount(ctx, "123456", "New Owner", "300"); err != nil {
			t.Fatal(err)
		}
		views, _ = l.ListTransactions(ctx, "123456")
		if len(views) != 1 || !views[0].RunningBalance.Equal(dec("300")) {
			t.Fatalf("re-created history = %+v", views)
		}
	})
}

func TestLedgerReturnsCopies(t *testing.T) {
	forEachEngine(t, defaultPolicy, func(t *testing.T, l usecase.Ledger) {
		ctx := context.Background()
		account, err := l.CreateAccount(ctx, "123456", "Jane", "100")
		if err != nil {
			t.Fatal(err)
		}
		account.Balance = dec("1000000")
		account.HolderName = "Mallory"

		got, _ := l.GetAccount(ctx, "123456")
		if !got.Balance.Equal(dec("100")) || got.HolderName != "Jane" {
			t.Fatalf("caller mutated ledger state: %+v", got)
		}
	})
}

func TestLedgerListAccountsAndStats(t *testing.T) {
	forEachEngine(t, defaultPolicy, func(t *testing.T, l usecase.Ledger) {
		ctx := context.Background()
		for _, n := range []string{"300000", "100000", "200000"} {
			if _, err := l.CreateAccount(ctx, n, "Holder", "100"); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := l.Withdraw(ctx, "100000", "40"); err != nil {
			t.Fatal(err)
		}

		accounts, err := l.ListAccounts(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(accounts) != 3 || accounts[0].Number != "100000" || accounts[2].Number != "300000" {
			t.Fatalf("accounts not sorted by number: %+v", accounts)
		}

		stats, err := l.Stats(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if stats.TotalAccounts != 3 ||
			!stats.TotalBalance.Equal(dec("260")) ||
			!stats.TotalDeposits.Equal(dec("300")) ||
			!stats.TotalWithdrawals.Equal(dec("40")) {
			t.Fatalf("unexpected stats: %+v", stats)
		}
	})
}

func TestLedgerConcurrentMovements(t *testing.T) {
	forEachEngine(t, defaultPolicy, func(t *testing.T, l usecase.Ledger) {
		ctx := context.Background()
		if _, err := l.CreateAccount(ctx, "123456", "Jane", "100"); err != nil {
			t.Fatal(err)
		}

		const workers = 50
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				if _, err := l.Deposit(ctx, "123456", "10"); err != nil {
					t.Error(err)
				}
			}()
			go func() {
				defer wg.Done()
				if _, err := l.Withdraw(ctx, "123456", "1"); err != nil {
					t.Error(err)
				}
			}()
		}
		wg.Wait()

		balance, _ := l.GetBalance(ctx, "123456")
		if want := dec("550"); !balance.Equal(want) {
			t.Fatalf("balance=%s want %s", balance, want)
		}
		views, _ := l.ListTransactions(ctx, "123456")
		if len(views) != 1+2*workers {
			t.Fatalf("transactions=%d want %d", len(views), 1+2*workers)
		}
	})
}

func TestLMAXLedgerStopped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLMAXLedger(defaultPolicy, 0)
	l.Start(ctx)

	if _, err := l.CreateAccount(context.Background(), "123456", "Jane", "100"); err != nil {
		t.Fatal(err)
	}

	cancel()
	<-l.Done()

	if _, err := l.Deposit(context.Background(), "123456", "10"); !errors.Is(err, domain.ErrLedgerStopped) {
		t.Fatalf("want ErrLedgerStopped, got %v", err)
	}
}

func TestLMAXLedgerCallerContext(t *testing.T) {
	// 未啟動的引擎不會消費輸送帶，呼叫端只能靠 ctx 離開
	l := NewLMAXLedger(defaultPolicy, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := l.GetBalance(ctx, "123456"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want deadline exceeded, got %v", err)
	}
}

func TestLMAXLedgerAbandonedRequestNotApplied(t *testing.T) {
	gate := make(chan struct{})
	entered := make(chan struct{})
	var once sync.Once
	clock := stepClock()
	// 第一筆請求卡在時間來源裡，讓後面的請求留在輸送帶上
	l := NewLMAXLedger(defaultPolicy, 4, WithClock(func() time.Time {
		once.Do(func() {
			close(entered)
			<-gate
		})
		return clock()
	}))
	ctx, cancel := context.WithCancel(context.Background())
	l.Start(ctx)
	t.Cleanup(func() {
		cancel()
		<-l.Done()
	})

	first := make(chan error, 1)
	go func() {
		_, err := l.CreateAccount(context.Background(), "111111", "Jane", "100")
		first <- err
	}()
	<-entered

	callCtx, callCancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer callCancel()
	if _, err := l.CreateAccount(callCtx, "123456", "John", "100"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want deadline exceeded, got %v", err)
	}

	close(gate)
	if err := <-first; err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := l.GetAccount(context.Background(), "123456"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("abandoned create was applied: %v", err)
	}
	stats, err := l.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalAccounts != 1 {
		t.Fatalf("accounts=%d want 1", stats.TotalAccounts)
	}
}

func TestLMAXLedgerCancelledCallersMatchState(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLMAXLedger(defaultPolicy, 8)
	l.Start(ctx)
	t.Cleanup(func() {
		cancel()
		<-l.Done()
	})
	if _, err := l.CreateAccount(context.Background(), "123456", "Jane", "100"); err != nil {
		t.Fatal(err)
	}

	// 成功回報的存款數必須與餘額一致，逾時的請求不可以偷偷入帳
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			callCtx, callCancel := context.WithTimeout(context.Background(), time.Duration(i%5)*time.Microsecond)
			defer callCancel()
			if _, err := l.Deposit(callCtx, "123456", "1"); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else if !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("unexpected error %v", err)
			}
		}(i)
	}
	wg.Wait()

	balance, err := l.GetBalance(context.Background(), "123456")
	if err != nil {
		t.Fatal(err)
	}
	want := dec("100").Add(decimal.NewFromInt(int64(succeeded)))
	if !balance.Equal(want) {
		t.Fatalf("balance=%s want %s (%d successful deposits)", balance, want, succeeded)
	}
	views, _ := l.ListTransactions(context.Background(), "123456")
	if len(views) != succeeded+1 {
		t.Fatalf("transactions=%d want %d", len(views), succeeded+1)
	}
}
