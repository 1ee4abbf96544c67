package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account 玩家帳戶：現金、投資、倉庫物品與交易紀錄
// 本身不加鎖，並行存取由 Ledger 負責
type Account struct {
	ID                uuid.UUID
	Owner             string
	Balance           decimal.Decimal
	InvestmentBalance decimal.Decimal
	// DailyTotal 自上次重置後累計的申請金額 (未扣手續費)
	DailyTotal decimal.Decimal

	items   vault
	history history
}

// AccountSnapshot 帳戶的深拷貝，可在鎖外讀取
type AccountSnapshot struct {
	ID                uuid.UUID
	Owner             string
	Balance           decimal.Decimal
	InvestmentBalance decimal.Decimal
	DailyTotal        decimal.Decimal
	Items             []ItemStack
	History           []TransactionEntry
}

func NewAccount(owner string, initialBalance decimal.Decimal) *Account {
	a := &Account{ID: uuid.New()}
	a.Reset(owner, initialBalance)
	return a
}

// Reset 重設帳戶，保留 ID，其餘欄位清空
// owner 為空時使用 "Unknown"，負的初始餘額視為 0
func (a *Account) Reset(owner string, initialBalance decimal.Decimal) {
	if owner == "" {
		owner = defaultOwner
	}
	if initialBalance.IsNegative() {
		initialBalance = decimal.Zero
	}
	a.Owner = owner
	a.Balance = initialBalance
	a.InvestmentBalance = decimal.Zero
	a.DailyTotal = decimal.Zero
	a.items.reset()
	a.history.reset()
}

// ResetDaily 每日週期開始時歸零，由外部排程呼叫
func (a *Account) ResetDaily() {
	a.DailyTotal = decimal.Zero
}

// Items 依存放順序回傳倉庫內容副本
func (a *Account) Items() []ItemStack {
	return a.items.list()
}

// ItemCount 不同物品數
func (a *Account) ItemCount() int {
	return a.items.len()
}

// Quantity 回傳某物品的存量，沒有則為 0
func (a *Account) Quantity(name string) int {
	if i := a.items.find(name); i >= 0 {
		return a.items.items[i].Quantity
	}
	return 0
}

// History 依時間順序回傳交易紀錄副本
func (a *Account) History() []TransactionEntry {
	return a.history.list()
}

// HistoryLen 目前保留的交易紀錄筆數
func (a *Account) HistoryLen() int {
	return a.history.len()
}

func (a *Account) Snapshot() AccountSnapshot {
	return AccountSnapshot{
		ID:                a.ID,
		Owner:             a.Owner,
		Balance:           a.Balance,
		InvestmentBalance: a.InvestmentBalance,
		DailyTotal:        a.DailyTotal,
		Items:             a.items.list(),
		History:           a.history.list(),
	}
}

// addHistory 紀錄當下的現金餘額
func (a *Account) addHistory(description string, amount decimal.Decimal) {
	a.history.push(TransactionEntry{
		ID:               uuid.New(),
		Timestamp:        time.Now(),
		Description:      description,
		Amount:           amount,
		ResultingBalance: a.Balance,
	})
}
