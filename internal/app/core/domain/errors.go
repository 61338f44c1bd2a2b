package domain

import "errors"

var (
	// ErrInvalidAccountNumber 帳號必須為 6 位數字
	ErrInvalidAccountNumber = errors.New("account number must be exactly 6 digits")

	// ErrAccountAlreadyExists 帳戶已存在
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrInvalidName 戶名只能包含字母與空白
	ErrInvalidName = errors.New("holder name must contain only letters and spaces")

	// ErrInvalidAmount 金額格式錯誤或不為正數
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrBelowMinimumBalance 開戶金額低於最低門檻
	ErrBelowMinimumBalance = errors.New("initial balance below minimum")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = errors.New("insufficient funds")

	// ErrLedgerStopped 帳本引擎已關閉
	ErrLedgerStopped = errors.New("ledger stopped")
)

// 錯誤種類名稱，給前端當作穩定的錯誤代碼
const (
	KindInvalidAccountNumber = "InvalidAccountNumber"
	KindDuplicateAccount     = "DuplicateAccount"
	KindInvalidName          = "InvalidName"
	KindInvalidAmount        = "InvalidAmount"
	KindBelowMinimumBalance  = "BelowMinimumBalance"
	KindAccountNotFound      = "AccountNotFound"
	KindInsufficientFunds    = "InsufficientFunds"
	KindInternal             = "Internal"
)

var kinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidAccountNumber, KindInvalidAccountNumber},
	{ErrAccountAlreadyExists, KindDuplicateAccount},
	{ErrInvalidName, KindInvalidName},
	{ErrInvalidAmount, KindInvalidAmount},
	{ErrBelowMinimumBalance, KindBelowMinimumBalance},
	{ErrAccountNotFound, KindAccountNotFound},
	{ErrInsufficientBalance, KindInsufficientFunds},
}

// Kind 回傳錯誤所屬的種類名稱；非業務錯誤一律為 KindInternal
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// IsValidationError 判斷是否為在變更前就被拒絕的業務錯誤
func IsValidationError(err error) bool {
	return err != nil && Kind(err) != KindInternal
}
