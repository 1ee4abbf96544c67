package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newService 依字串建立服務，方便表格測試
func newService(depositFee, withdrawalFee, transferFee, rate, limit string) *BankingService {
	return NewBankingService("Test Bank", d(depositFee), d(withdrawalFee), d(transferFee), d(rate), d(limit))
}

func freeService() *BankingService {
	return newService("0", "0", "0", "0", "0")
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "want %s, got %s", want, got.String())
}

func assertKind(t *testing.T, want Kind, err error) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Equal(t, want, KindOf(err), "error: %v", err)
	}
}
