package domain

import (
	"errors"
	"fmt"
)

// Kind 錯誤種類，呼叫端只依種類分支，不解析訊息文字
type Kind uint8

const (
	KindUnknown Kind = iota
	// 必填欄位為空、數量或金額不為正
	KindInvalidInput
	// 金額低於最小值或高於單筆上限
	KindOutOfRange
	// 每日額度、倉庫格數、單項數量上限
	KindLimitExceeded
	// 扣除手續費後低於最小交易金額
	KindFeeRejected
	// 餘額、投資餘額或物品數量不足
	KindInsufficientFunds
	// 找不到物品或帳戶
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindOutOfRange:
		return "out of range"
	case KindLimitExceeded:
		return "limit exceeded"
	case KindFeeRejected:
		return "fee rejected"
	case KindInsufficientFunds:
		return "insufficient funds"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Error 帶種類的業務錯誤
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// Is 讓 errors.Is 以種類比對；target 有訊息時需完全相同
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

var (
	// 各種類的比對用 sentinel
	ErrInvalidInput      = &Error{Kind: KindInvalidInput}
	ErrOutOfRange        = &Error{Kind: KindOutOfRange}
	ErrLimitExceeded     = &Error{Kind: KindLimitExceeded}
	ErrFeeRejected       = &Error{Kind: KindFeeRejected}
	ErrInsufficientFunds = &Error{Kind: KindInsufficientFunds}
	ErrNotFound          = &Error{Kind: KindNotFound}

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = &Error{Kind: KindNotFound, Message: "account not found"}

	// ErrAccountAlreadyExists 帳戶已存在
	ErrAccountAlreadyExists = &Error{Kind: KindInvalidInput, Message: "account already exists"}

	// ErrInvalidOperation 未知的交易類型
	ErrInvalidOperation = &Error{Kind: KindInvalidInput, Message: "invalid operation type"}
)

func newError(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf 取出錯誤種類，非業務錯誤回傳 KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
