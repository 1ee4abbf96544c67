package domain

import "github.com/shopspring/decimal"

// Invest 把現金移入投資
// 不受單筆範圍與每日額度限制，只要求金額為正
func (s *BankingService) Invest(account *Account, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return newError(KindInvalidInput, "investment requires positive amount")
	}
	if account.Balance.LessThan(amount) {
		return newError(KindInsufficientFunds, "cannot invest %s with only %s balance",
			amount.StringFixed(2), account.Balance.StringFixed(2))
	}

	account.Balance = account.Balance.Sub(amount)
	account.InvestmentBalance = account.InvestmentBalance.Add(amount)
	account.addHistory(EntryInvestmentDeposit, amount.Neg())
	return nil
}

// ApplyInvestmentYield 依收益率增加投資餘額，沒有投資或收益率 <= 0 時不做事
// 由外部排程 (例如每個遊戲日) 呼叫
func (s *BankingService) ApplyInvestmentYield(account *Account) {
	if !account.InvestmentBalance.IsPositive() || !s.InvestmentRate.IsPositive() {
		return
	}

	yield := account.InvestmentBalance.Mul(s.InvestmentRate)
	account.InvestmentBalance = account.InvestmentBalance.Add(yield)
	account.addHistory(EntryInvestmentYield, yield)
}

// WithdrawInvestment 投資轉回現金，不收手續費
func (s *BankingService) WithdrawInvestment(account *Account, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return newError(KindInvalidInput, "withdraw amount must be positive")
	}
	if account.InvestmentBalance.LessThan(amount) {
		return newError(KindInsufficientFunds, "only %s invested, cannot withdraw %s",
			account.InvestmentBalance.StringFixed(2), amount.StringFixed(2))
	}

	account.InvestmentBalance = account.InvestmentBalance.Sub(amount)
	account.Balance = account.Balance.Add(amount)
	account.addHistory(EntryInvestmentWithdrawal, amount)
	return nil
}
