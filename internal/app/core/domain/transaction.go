package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType 交易類型
type TransactionType string

const (
	// 存款 (含開戶入金)
	TransactionTypeDeposit TransactionType = "deposit"
	// 提款
	TransactionTypeWithdraw TransactionType = "withdraw"
)

// Transaction 交易紀錄，寫入後不再修改
type Transaction struct {
	// TransactionID: 內部追蹤號 (UUID)
	TransactionID uuid.UUID `json:"id"`
	// AccountNumber: 以帳號弱參照帳戶，刪戶後由帳本統一清除
	AccountNumber string          `json:"account_no"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     time.Time       `json:"timestamp"`
}

func NewTransaction(accountNumber string, txType TransactionType, amount decimal.Decimal, now time.Time) Transaction {
	return Transaction{
		TransactionID: uuid.New(),
		AccountNumber: accountNumber,
		Type:          txType,
		Amount:        amount,
		Timestamp:     now,
	}
}

// Movement 一次存提款的結果：寫入的交易與變更後餘額
type Movement struct {
	Transaction Transaction
	Balance     decimal.Decimal
}

// signedAmount 存款為正、提款為負
func (t Transaction) signedAmount() decimal.Decimal {
	if t.Type == TransactionTypeWithdraw {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionView 交易明細的顯示列
type TransactionView struct {
	// SequenceID: 依顯示位置編號 (TXN0001...)，不是穩定的識別碼
	SequenceID     string          `json:"txn_id"`
	Type           TransactionType `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Timestamp      time.Time       `json:"timestamp"`
	RunningBalance decimal.Decimal `json:"balance"`
}

// SequenceID 回傳第 i 筆 (從 0 起算) 的顯示編號
func SequenceID(i int) string {
	return fmt.Sprintf("TXN%04d", i+1)
}

// BuildHistory 依時間排序 (同時間保持寫入順序) 並累加出每筆的當時餘額
//
// 參數:
//
//	txs: 單一帳戶的交易，依寫入順序排列
//
// 回傳:
//
//	[]TransactionView: 交易明細；沒有交易時回傳空切片
func BuildHistory(txs []Transaction) []TransactionView {
	ordered := make([]Transaction, len(txs))
	copy(ordered, txs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	views := make([]TransactionView, 0, len(ordered))
	running := decimal.Zero
	for i, tx := range ordered {
		running = running.Add(tx.signedAmount())
		views = append(views, TransactionView{
			SequenceID:     SequenceID(i),
			Type:           tx.Type,
			Amount:         tx.Amount,
			Timestamp:      tx.Timestamp,
			RunningBalance: running,
		})
	}
	return views
}
