package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnforceAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
		errMsg  string
	}{
		{name: "exact minimum passes", amount: "1.0"},
		{name: "exact maximum passes", amount: "10000"},
		{name: "just below minimum fails", amount: "0.999999", wantErr: true, errMsg: "below minimum transaction of 1.00"},
		{name: "zero fails", amount: "0", wantErr: true, errMsg: "below minimum"},
		{name: "negative fails", amount: "-5", wantErr: true, errMsg: "amount -5.00 is below minimum"},
		{name: "above maximum fails", amount: "10000.01", wantErr: true, errMsg: "exceeds maximum per transaction of 10000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := enforceAmount(d(tt.amount))
			if tt.wantErr {
				assertKind(t, KindOutOfRange, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeposit_AppliesFeeAndTracksRequestedAmount(t *testing.T) {
	svc := newService("0.25", "0", "0", "0", "0")
	acct := NewAccount("Hero", d("500"))

	require.NoError(t, svc.Deposit(acct, d("200")))

	assertDecimal(t, "699.75", acct.Balance)
	assertDecimal(t, "200", acct.DailyTotal)

	history := acct.History()
	require.Len(t, history, 1)
	assert.Equal(t, EntryDeposit, history[0].Description)
	assertDecimal(t, "199.75", history[0].Amount)
	assertDecimal(t, "699.75", history[0].ResultingBalance)
}

func TestDeposit_DailyLimit(t *testing.T) {
	svc := newService("0", "0", "0", "0", "100")
	acct := NewAccount("Hero", d("0"))

	require.NoError(t, svc.Deposit(acct, d("60")))
	assertDecimal(t, "60", acct.DailyTotal)

	err := svc.Deposit(acct, d("60"))
	assertKind(t, KindLimitExceeded, err)
	assert.Contains(t, err.Error(), "daily limit exceeded: 120.00 / 100.00")
	assert.ErrorIs(t, err, ErrLimitExceeded)

	assertDecimal(t, "60", acct.DailyTotal)
	assertDecimal(t, "60", acct.Balance)
	assert.Equal(t, 1, acct.HistoryLen())
}

func TestDeposit_DailyLimitUsesRequestedAmount(t *testing.T) {
	// 手續費不影響每日額度：申請 100、實收 90，額度 100 已用完
	svc := newService("10", "0", "0", "0", "100")
	acct := NewAccount("Hero", d("0"))

	require.NoError(t, svc.Deposit(acct, d("100")))
	assertDecimal(t, "90", acct.Balance)
	assertDecimal(t, "100", acct.DailyTotal)

	assertKind(t, KindLimitExceeded, svc.Deposit(acct, d("1")))
}

func TestDeposit_FeeRejected(t *testing.T) {
	svc := newService("5", "0", "0", "0", "0")
	acct := NewAccount("Hero", d("10"))

	err := svc.Deposit(acct, d("5.5"))
	assertKind(t, KindFeeRejected, err)
	assertDecimal(t, "10", acct.Balance)
	assertDecimal(t, "0", acct.DailyTotal)
	assert.Zero(t, acct.HistoryLen())
}

func TestDeposit_RangeCheckedBeforeDaily(t *testing.T) {
	svc := newService("0", "0", "0", "0", "100")
	acct := NewAccount("Hero", d("0"))
	acct.DailyTotal = d("100")

	assertKind(t, KindOutOfRange, svc.Deposit(acct, d("0.5")))
	assertKind(t, KindLimitExceeded, svc.Deposit(acct, d("1")))
}

func TestDeposit_ZeroDailyLimitFallsBackToDefault(t *testing.T) {
	svc := &BankingService{Name: "Literal"}
	acct := NewAccount("Hero", d("0"))
	acct.DailyTotal = d("20000")

	require.NoError(t, svc.Deposit(acct, d("5000")))
	assertKind(t, KindLimitExceeded, svc.Deposit(acct, d("1")))
}

func TestWithdraw(t *testing.T) {
	svc := newService("0", "0.5", "0", "0", "0")
	acct := NewAccount("Hero", d("100"))

	require.NoError(t, svc.Withdraw(acct, d("50")))

	assertDecimal(t, "50.5", acct.Balance)
	assertDecimal(t, "50", acct.DailyTotal)
	history := acct.History()
	require.Len(t, history, 1)
	assert.Equal(t, EntryWithdrawal, history[0].Description)
	assertDecimal(t, "-49.5", history[0].Amount)
	assertDecimal(t, "50.5", history[0].ResultingBalance)
}

func TestWithdraw_FeeTooSmall(t *testing.T) {
	svc := newService("0", "5", "0", "0", "0")
	acct := NewAccount("Hero", d("100"))

	err := svc.Withdraw(acct, d("5.0"))
	assertKind(t, KindFeeRejected, err)
	assert.ErrorIs(t, err, ErrFeeRejected)
	assertDecimal(t, "100", acct.Balance)
	assertDecimal(t, "0", acct.DailyTotal)
}

func TestWithdraw_InsufficientBalance(t *testing.T) {
	svc := newService("0", "1", "0", "0", "0")
	acct := NewAccount("Hero", d("20"))

	err := svc.Withdraw(acct, d("30"))
	assertKind(t, KindInsufficientFunds, err)
	assert.Contains(t, err.Error(), "have 20.00, need 29.00")
	assertDecimal(t, "20", acct.Balance)
	assertDecimal(t, "0", acct.DailyTotal)

	// 餘額只需涵蓋扣除手續費後的金額
	require.NoError(t, svc.Withdraw(acct, d("21")))
	assertDecimal(t, "0", acct.Balance)
}

func TestDepositWithdraw_RoundTripWithoutFees(t *testing.T) {
	svc := freeService()
	acct := NewAccount("Hero", d("123.45"))

	require.NoError(t, svc.Deposit(acct, d("77.77")))
	require.NoError(t, svc.Withdraw(acct, d("77.77")))

	assertDecimal(t, "123.45", acct.Balance)
}

func TestTransfer_FeeOnlyReducesCredit(t *testing.T) {
	svc := newService("0", "0", "0.1", "0", "0")
	from := NewAccount("Alice", d("500"))
	to := NewAccount("Bob", d("20"))

	require.NoError(t, svc.Transfer(from, to, d("100")))

	assertDecimal(t, "400", from.Balance)
	assertDecimal(t, "119.9", to.Balance)
	assertDecimal(t, "100", from.DailyTotal)
	assertDecimal(t, "0", to.DailyTotal)

	// 總額守恆 (扣除手續費)
	before := d("520")
	after := from.Balance.Add(to.Balance)
	assertDecimal(t, before.Sub(svc.TransferFee).String(), after)

	sent := from.History()
	require.Len(t, sent, 1)
	assert.Equal(t, EntryTransferSent, sent[0].Description)
	assertDecimal(t, "-100", sent[0].Amount)

	received := to.History()
	require.Len(t, received, 1)
	assert.Equal(t, EntryTransferReceived, received[0].Description)
	assertDecimal(t, "99.9", received[0].Amount)
	assertDecimal(t, "119.9", received[0].ResultingBalance)
}

func TestTransfer_ConservedWithoutFee(t *testing.T) {
	svc := freeService()
	from := NewAccount("Alice", d("300"))
	to := NewAccount("Bob", d("0"))

	require.NoError(t, svc.Transfer(from, to, d("300")))
	assertDecimal(t, "0", from.Balance)
	assertDecimal(t, "300", to.Balance)
}

func TestTransfer_InsufficientChecksFullAmount(t *testing.T) {
	svc := newService("0", "0", "10", "0", "0")
	from := NewAccount("Alice", d("99.5"))
	to := NewAccount("Bob", d("0"))

	err := svc.Transfer(from, to, d("100"))
	assertKind(t, KindInsufficientFunds, err)
	assert.Contains(t, err.Error(), "99.50 available, 100.00 required")

	from.Balance = d("100")
	require.NoError(t, svc.Transfer(from, to, d("100")))
	assertDecimal(t, "0", from.Balance)
	assertDecimal(t, "90", to.Balance)
}

func TestTransfer_TooSmallAfterFee(t *testing.T) {
	svc := newService("0", "0", "5", "0", "0")
	from := NewAccount("Alice", d("100"))
	to := NewAccount("Bob", d("0"))

	err := svc.Transfer(from, to, d("5.5"))
	assertKind(t, KindFeeRejected, err)
	assert.Contains(t, err.Error(), "amount 5.50 too small after fee")

	assertDecimal(t, "100", from.Balance)
	assertDecimal(t, "0", to.Balance)
	assertDecimal(t, "0", from.DailyTotal)
	assert.Zero(t, from.HistoryLen())
	assert.Zero(t, to.HistoryLen())
}

func TestTransfer_OnlySenderDailyLimit(t *testing.T) {
	svc := newService("0", "0", "0", "0", "100")
	from := NewAccount("Alice", d("500"))
	to := NewAccount("Bob", d("0"))
	to.DailyTotal = d("100")

	require.NoError(t, svc.Transfer(from, to, d("80")))
	assertDecimal(t, "100", to.DailyTotal)

	err := svc.Transfer(from, to, d("30"))
	assertKind(t, KindLimitExceeded, err)
	assertDecimal(t, "80", from.DailyTotal)
}

func TestTransfer_OutOfRange(t *testing.T) {
	svc := freeService()
	from := NewAccount("Alice", d("50000"))
	to := NewAccount("Bob", d("0"))

	assertKind(t, KindOutOfRange, svc.Transfer(from, to, d("10000.5")))
	assertKind(t, KindOutOfRange, svc.Transfer(from, to, d("0.5")))
}

func TestTransfer_SameAccountLosesFee(t *testing.T) {
	svc := newService("0", "0", "2", "0", "0")
	acct := NewAccount("Alice", d("100"))

	require.NoError(t, svc.Transfer(acct, acct, d("50")))
	assertDecimal(t, "98", acct.Balance)
	assertDecimal(t, "50", acct.DailyTotal)
	assert.Equal(t, 2, acct.HistoryLen())
}
