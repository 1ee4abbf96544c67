package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 交易紀錄描述
const (
	EntryDeposit              = "Deposit"
	EntryWithdrawal           = "Withdrawal"
	EntryTransferSent         = "Transfer Sent"
	EntryTransferReceived     = "Transfer Received"
	EntryInvestmentDeposit    = "Investment Deposit"
	EntryInvestmentYield      = "Investment Yield"
	EntryInvestmentWithdrawal = "Investment Withdrawal"
	EntryItemStored           = "Item Stored"
	EntryItemRetrieved        = "Item Retrieved"
)

// TransactionEntry 單筆交易紀錄，建立後不再修改
type TransactionEntry struct {
	ID          uuid.UUID
	Timestamp   time.Time
	Description string
	// Amount 正數為流入，負數為流出；物品操作時為數量
	Amount decimal.Decimal
	// ResultingBalance 寫入當下的現金餘額
	ResultingBalance decimal.Decimal
}

// history 固定容量的環狀緩衝，滿了就覆蓋最舊的一筆
type history struct {
	entries [MaxHistory]TransactionEntry
	start   int // 最舊一筆的位置
	count   int
}

func (h *history) push(entry TransactionEntry) {
	if h.count < MaxHistory {
		h.entries[(h.start+h.count)%MaxHistory] = entry
		h.count++
		return
	}
	h.entries[h.start] = entry
	h.start = (h.start + 1) % MaxHistory
}

// list 依時間順序回傳副本
func (h *history) list() []TransactionEntry {
	out := make([]TransactionEntry, h.count)
	for i := 0; i < h.count; i++ {
		out[i] = h.entries[(h.start+i)%MaxHistory]
	}
	return out
}

func (h *history) len() int {
	return h.count
}

func (h *history) reset() {
	*h = history{}
}
