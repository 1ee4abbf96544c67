package domain

import "github.com/shopspring/decimal"

// Deposit 存款
// 檢查順序: 金額範圍 -> 每日額度 (申請金額) -> 手續費
// 入帳的是扣除手續費後的金額，每日累計加的是申請金額
func (s *BankingService) Deposit(account *Account, amount decimal.Decimal) error {
	requested := amount
	if err := enforceAmount(amount); err != nil {
		return err
	}
	if err := s.enforceDaily(account, requested); err != nil {
		return err
	}

	credited, ok := applyFee(amount, s.DepositFee)
	if !ok {
		return newError(KindFeeRejected, "deposit rejected due to service fee")
	}

	account.Balance = account.Balance.Add(credited)
	account.DailyTotal = account.DailyTotal.Add(requested)
	account.addHistory(EntryDeposit, credited)
	return nil
}

// Withdraw 提款，在手續費之後才檢查餘額
func (s *BankingService) Withdraw(account *Account, amount decimal.Decimal) error {
	requested := amount
	if err := enforceAmount(amount); err != nil {
		return err
	}
	if err := s.enforceDaily(account, requested); err != nil {
		return err
	}

	debited, ok := applyFee(amount, s.WithdrawalFee)
	if !ok {
		return newError(KindFeeRejected, "withdrawal rejected due to service fee")
	}

	if account.Balance.LessThan(debited) {
		return newError(KindInsufficientFunds, "insufficient balance: have %s, need %s",
			account.Balance.StringFixed(2), debited.StringFixed(2))
	}

	account.Balance = account.Balance.Sub(debited)
	account.DailyTotal = account.DailyTotal.Add(requested)
	account.addHistory(EntryWithdrawal, debited.Neg())
	return nil
}

// Transfer 轉帳
// 付款方扣全額，收款方收到扣除手續費後的金額，手續費不歸入任何帳戶
// 只檢查並累計付款方的每日額度
func (s *BankingService) Transfer(from, to *Account, amount decimal.Decimal) error {
	if err := enforceAmount(amount); err != nil {
		return err
	}
	if err := s.enforceDaily(from, amount); err != nil {
		return err
	}

	if from.Balance.LessThan(amount) {
		return newError(KindInsufficientFunds, "transfer failed: %s available, %s required",
			from.Balance.StringFixed(2), amount.StringFixed(2))
	}

	credited := amount
	if s.TransferFee.IsPositive() {
		if amount.Sub(s.TransferFee).LessThan(MinTransaction) {
			return newError(KindFeeRejected, "transfer failed: amount %s too small after fee",
				amount.StringFixed(2))
		}
		credited = amount.Sub(s.TransferFee)
	}

	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(credited)
	from.DailyTotal = from.DailyTotal.Add(amount)

	from.addHistory(EntryTransferSent, amount.Neg())
	to.addHistory(EntryTransferReceived, credited)
	return nil
}
