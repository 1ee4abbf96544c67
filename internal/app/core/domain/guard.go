package domain

import "github.com/shopspring/decimal"

// enforceAmount 單筆金額必須介於 MinTransaction 與 MaxTransaction
func enforceAmount(amount decimal.Decimal) error {
	if amount.LessThan(MinTransaction) {
		return newError(KindOutOfRange, "amount %s is below minimum transaction of %s",
			amount.StringFixed(2), MinTransaction.StringFixed(2))
	}
	if amount.GreaterThan(MaxTransaction) {
		return newError(KindOutOfRange, "amount %s exceeds maximum per transaction of %s",
			amount.StringFixed(2), MaxTransaction.StringFixed(2))
	}
	return nil
}

// enforceDaily 以申請金額 (未扣手續費) 檢查每日累計
func (s *BankingService) enforceDaily(account *Account, requested decimal.Decimal) error {
	limit := s.EffectiveDailyLimit()
	projected := account.DailyTotal.Add(requested)
	if projected.GreaterThan(limit) {
		return newError(KindLimitExceeded, "daily limit exceeded: %s / %s",
			projected.StringFixed(2), limit.StringFixed(2))
	}
	return nil
}

// applyFee 回傳扣除手續費後的金額；低於最小交易金額時 ok 為 false
func applyFee(amount, fee decimal.Decimal) (decimal.Decimal, bool) {
	if !fee.IsPositive() {
		return amount, true
	}
	afterFee := amount.Sub(fee)
	if afterFee.LessThan(MinTransaction) {
		return amount, false
	}
	return afterFee, true
}
