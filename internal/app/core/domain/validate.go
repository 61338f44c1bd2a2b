package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

const (
	// AccountNumberLength 帳號長度
	AccountNumberLength = 6
	// CurrencyScale 金額精度：小數點後 2 位
	CurrencyScale = 2
	// MaxAmountLength 金額字串長度上限
	MaxAmountLength = 40
	// MaxAmountIntegerDigits 整數部分位數上限
	MaxAmountIntegerDigits = 18
)

// ValidateAccountNumber 帳號必須剛好 6 個 ASCII 數字
func ValidateAccountNumber(number string) error {
	if len(number) != AccountNumberLength {
		return fmt.Errorf("%w: got %q", ErrInvalidAccountNumber, number)
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: got %q", ErrInvalidAccountNumber, number)
		}
	}
	return nil
}

// NormalizeHolderName 去除前後空白後檢查戶名：至少一個字母，其餘只能是字母或空白
func NormalizeHolderName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	for _, r := range trimmed {
		if !unicode.IsLetter(r) && r != ' ' {
			return "", fmt.Errorf("%w: unexpected %q", ErrInvalidName, r)
		}
	}
	return trimmed, nil
}

// ParseAmount 解析金額字串並四捨五入到 CurrencyScale 位，不檢查正負
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is empty", ErrInvalidAmount)
	}
	if len(s) > MaxAmountLength {
		return decimal.Zero, fmt.Errorf("%w: longer than %d characters", ErrInvalidAmount, MaxAmountLength)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, raw)
	}
	// Round 會依指數展開係數，必須先擋掉極端指數
	exp := d.Exponent()
	if exp < -MaxAmountLength || int64(exp)+int64(d.NumDigits()) > MaxAmountIntegerDigits {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, raw)
	}
	return d.Round(CurrencyScale), nil
}

// ParsePositiveAmount 存提款金額必須大於 0
func ParsePositiveAmount(raw string) (decimal.Decimal, error) {
	d, err := ParseAmount(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s must be positive", ErrInvalidAmount, d.StringFixed(CurrencyScale))
	}
	return d, nil
}
