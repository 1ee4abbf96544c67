package domain

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationType 交易類型
// 為了節省記憶體，使用 uint8
type OperationType uint8

const (
	// 存款
	OperationDeposit OperationType = iota + 1
	// 提款
	OperationWithdraw
	// 轉帳
	OperationTransfer
	// 投資
	OperationInvest
	// 投資提領
	OperationWithdrawInvestment
	// 投資收益
	OperationApplyYield
	// 存放物品
	OperationStoreItem
	// 取出物品
	OperationRetrieveItem
	// 每日額度重置
	OperationResetDaily
)

func (t OperationType) String() string {
	switch t {
	case OperationDeposit:
		return "deposit"
	case OperationWithdraw:
		return "withdraw"
	case OperationTransfer:
		return "transfer"
	case OperationInvest:
		return "invest"
	case OperationWithdrawInvestment:
		return "withdraw_investment"
	case OperationApplyYield:
		return "apply_yield"
	case OperationStoreItem:
		return "store_item"
	case OperationRetrieveItem:
		return "retrieve_item"
	case OperationResetDaily:
		return "reset_daily"
	default:
		return "unknown"
	}
}

// Operation 送進 Ledger 的交易請求
type Operation struct {
	// RefID: 外部追蹤號，非零值時用於冪等
	RefID uuid.UUID
	// From: 操作的帳戶；To: 只有轉帳的收款方會用到
	From uuid.UUID
	To   uuid.UUID
	// Amount: 金額 (物品操作不使用)
	Amount decimal.Decimal
	// Item, Quantity: 物品操作使用
	Item     string
	Quantity int
	Type     OperationType
}

// GetLockIDs 回傳需要鎖定的帳號 ID，依 UUID 排序並去重以避免死鎖
func (o *Operation) GetLockIDs() (ids []uuid.UUID) {
	ids = make([]uuid.UUID, 0, 2)
	ids = append(ids, o.From)
	if o.Type == OperationTransfer && o.To != o.From {
		ids = append(ids, o.To)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids
}

// Apply 依 Type 執行對應的業務邏輯
// to 只在轉帳時使用，其他類型可傳 nil
func (s *BankingService) Apply(op *Operation, from, to *Account) error {
	if from == nil || (op.Type == OperationTransfer && to == nil) {
		return ErrAccountNotFound
	}
	switch op.Type {
	case OperationDeposit:
		return s.Deposit(from, op.Amount)
	case OperationWithdraw:
		return s.Withdraw(from, op.Amount)
	case OperationTransfer:
		return s.Transfer(from, to, op.Amount)
	case OperationInvest:
		return s.Invest(from, op.Amount)
	case OperationWithdrawInvestment:
		return s.WithdrawInvestment(from, op.Amount)
	case OperationApplyYield:
		s.ApplyInvestmentYield(from)
		return nil
	case OperationStoreItem:
		return from.StoreItem(op.Item, op.Quantity)
	case OperationRetrieveItem:
		return from.RetrieveItem(op.Item, op.Quantity)
	case OperationResetDaily:
		from.ResetDaily()
		return nil
	default:
		return ErrInvalidOperation
	}
}
