package memory

import (
	"bytes"
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// lockedAccount 帳戶與保護它的鎖
type lockedAccount struct {
	mu      sync.Mutex
	account *domain.Account
}

// MutexLedger 是一個使用 Mutex 實現的帳本
//
// 結構:
//
//	service: 銀行服務設定
//	mu: 保護 accounts map 本身，帳戶內容由各自的鎖保護
//	accounts: 帳戶資料 Map
//	processedTransactions: 已處理或處理中的交易 Map
type MutexLedger struct {
	service  *domain.BankingService
	mu       sync.RWMutex
	accounts map[uuid.UUID]*lockedAccount
	// 已處理或處理中的交易
	processedMu           sync.Mutex
	processedTransactions map[uuid.UUID]*refState
	logger                *log.Logger
}

// refState 一個 RefID 的處理狀態
// done 在處理結束時關閉；processedAt 為零值表示失敗 (此時已從 map 移除)
type refState struct {
	done        chan struct{}
	processedAt time.Time
}

// NewMutexLedger 建立一個新的 MutexLedger 實例
//
// 參數:
//
//	service: 銀行服務設定
//	accounts: 初始帳戶
//	opts: 選項 (WithLogger)
//
// 回傳:
//
//	*MutexLedger: MutexLedger 實例
//	error: 初始化錯誤 (如帳戶 ID 重複)
func NewMutexLedger(service *domain.BankingService, accounts []*domain.Account, opts ...Option) (*MutexLedger, error) {
	if service == nil {
		return nil, ErrNilService
	}
	o := newOptions(opts)
	ledger := &MutexLedger{
		service:               service,
		accounts:              make(map[uuid.UUID]*lockedAccount, len(accounts)),
		processedTransactions: make(map[uuid.UUID]*refState),
		logger:                o.logger,
	}
	for _, account := range accounts {
		if _, ok := ledger.accounts[account.ID]; ok {
			return nil, domain.ErrAccountAlreadyExists
		}
		ledger.accounts[account.ID] = &lockedAccount{account: account}
	}
	return ledger, nil
}

// OpenAccount 開戶並回傳新帳戶 ID
func (m *MutexLedger) OpenAccount(ctx context.Context, owner string, initialBalance decimal.Decimal) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	account := domain.NewAccount(owner, initialBalance)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = &lockedAccount{account: account}
	return account.ID, nil
}

// GetAccount 取得指定帳戶的快照
//
// 參數:
//
//	ctx: 上下文
//	accountID: 帳戶 ID
//
// 回傳:
//
//	domain.AccountSnapshot: 帳戶快照
//	error: 查詢錯誤 (如帳戶不存在)
func (m *MutexLedger) GetAccount(ctx context.Context, accountID uuid.UUID) (domain.AccountSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.AccountSnapshot{}, err
	}
	m.mu.RLock()
	la, ok := m.accounts[accountID]
	m.mu.RUnlock()
	if !ok {
		return domain.AccountSnapshot{}, domain.ErrAccountNotFound
	}

	la.mu.Lock()
	defer la.mu.Unlock()
	return la.account.Snapshot(), nil
}

// ListAccounts 回傳所有帳戶 ID (依 UUID 排序)
func (m *MutexLedger) ListAccounts(ctx context.Context) ([]uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	ids := make([]uuid.UUID, 0, len(m.accounts))
	for id := range m.accounts {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids, nil
}

// PostTransaction 處理交易請求
// 先保留 RefID 再依 GetLockIDs 的順序鎖定涉及的帳戶，交叉轉帳不會死鎖
// 同一 RefID 同時送進來時，後到的等前一筆結束：成功則直接回傳，失敗則自己執行
//
// 參數:
//
//	ctx: 上下文
//	op: 交易請求物件
//
// 回傳:
//
//	error: 處理錯誤
func (m *MutexLedger) PostTransaction(ctx context.Context, op *domain.Operation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	processed, err := m.reserve(ctx, op.RefID)
	if err != nil {
		return err
	}
	if processed {
		m.logger.Printf("%s %s already processed", op.Type, op.RefID)
		return nil
	}

	err = m.lockAndApply(op)
	m.finish(op.RefID, err == nil)
	return err
}

// lockAndApply 鎖定帳戶後執行交易，解鎖順序與加鎖相反
func (m *MutexLedger) lockAndApply(op *domain.Operation) error {
	locked, err := m.resolve(op.GetLockIDs())
	if err != nil {
		return err
	}

	for _, la := range locked {
		la.mu.Lock()
	}
	defer func() {
		for i := len(locked) - 1; i >= 0; i-- {
			locked[i].mu.Unlock()
		}
	}()
	return m.postTransactionInternal(op, locked)
}

// resolve 依順序取出帳戶，任一不存在即失敗
func (m *MutexLedger) resolve(ids []uuid.UUID) ([]*lockedAccount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locked := make([]*lockedAccount, 0, len(ids))
	for _, id := range ids {
		la, ok := m.accounts[id]
		if !ok {
			return nil, domain.ErrAccountNotFound
		}
		locked = append(locked, la)
	}
	return locked, nil
}

// postTransactionInternal 執行交易核心邏輯，呼叫前需持有帳戶鎖
func (m *MutexLedger) postTransactionInternal(op *domain.Operation, locked []*lockedAccount) error {
	from := pick(locked, op.From)
	var to *domain.Account
	if op.Type == domain.OperationTransfer {
		to = pick(locked, op.To)
	}

	if err := m.service.Apply(op, from, to); err != nil {
		m.logger.Printf("%s rejected for %s: %v", op.Type, op.From, err)
		return err
	}
	return nil
}

// reserve 在同一個臨界區內檢查並保留 RefID
// 回傳 true 表示已成功處理過；RefID 為零值時不追蹤
// 等待期間不持有任何帳戶鎖
func (m *MutexLedger) reserve(ctx context.Context, refID uuid.UUID) (bool, error) {
	if refID == uuid.Nil {
		return false, nil
	}
	for {
		m.processedMu.Lock()
		state, ok := m.processedTransactions[refID]
		if !ok {
			m.processedTransactions[refID] = &refState{done: make(chan struct{})}
			m.processedMu.Unlock()
			return false, nil
		}
		m.processedMu.Unlock()

		select {
		case <-state.done:
		case <-ctx.Done():
			return false, ctx.Err()
		}
		if !state.processedAt.IsZero() {
			return true, nil
		}
		// 前一筆失敗，保留已被移除，重新搶
	}
}

// finish 結束保留：成功時記錄時間，失敗時移除讓呼叫端可以重試
func (m *MutexLedger) finish(refID uuid.UUID, ok bool) {
	if refID == uuid.Nil {
		return
	}
	m.processedMu.Lock()
	defer m.processedMu.Unlock()
	state := m.processedTransactions[refID]
	if ok {
		state.processedAt = time.Now()
	} else {
		delete(m.processedTransactions, refID)
	}
	close(state.done)
}

func pick(locked []*lockedAccount, id uuid.UUID) *domain.Account {
	for _, la := range locked {
		if la.account.ID == id {
			return la.account
		}
	}
	return nil
}

var _ usecase.Ledger = (*MutexLedger)(nil)
