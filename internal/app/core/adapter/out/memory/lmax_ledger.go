package memory

import (
	"bytes"
	"context"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// transactionRequest 交易請求包裝channel，讓呼叫端可以等待結果
// Op 與 Query 二擇一
type transactionRequest struct {
	Op     *domain.Operation
	Query  func(accounts map[uuid.UUID]*domain.Account) error
	Result chan error // 讓呼叫端等這個 channel
}

// LMAXLedger 單一執行緒處理所有請求，帳戶狀態不需要鎖
type LMAXLedger struct {
	service  *domain.BankingService
	accounts map[uuid.UUID]*domain.Account
	// 已處理過的交易
	processedTransactions map[uuid.UUID]bool
	// 輸送帶 負責接收交易
	transactionChan chan *transactionRequest
	// Pool 減少 GC 壓力
	requestPool sync.Pool
	startOnce   sync.Once
	// 核心停止後關閉
	done   chan struct{}
	logger *log.Logger
}

// NewLMAXLedger 建立一個新的 LMAXLedger 實例，需呼叫 Start 才會開始處理
//
// 參數:
//
//	service: 銀行服務設定
//	accounts: 初始帳戶
//	opts: 選項 (WithLogger, WithQueueSize)
//
// 回傳:
//
//	*LMAXLedger: LMAXLedger 實例
//	error: 初始化錯誤
func NewLMAXLedger(service *domain.BankingService, accounts []*domain.Account, opts ...Option) (*LMAXLedger, error) {
	if service == nil {
		return nil, ErrNilService
	}
	o := newOptions(opts)
	ledger := &LMAXLedger{
		service:               service,
		accounts:              make(map[uuid.UUID]*domain.Account, len(accounts)),
		processedTransactions: make(map[uuid.UUID]bool),
		transactionChan:       make(chan *transactionRequest, o.queueSize),
		requestPool: sync.Pool{
			New: func() interface{} {
				return &transactionRequest{
					Result: make(chan error, 1),
				}
			},
		},
		done:   make(chan struct{}),
		logger: o.logger,
	}
	for _, account := range accounts {
		if _, ok := ledger.accounts[account.ID]; ok {
			return nil, domain.ErrAccountAlreadyExists
		}
		ledger.accounts[account.ID] = account
	}
	return ledger, nil
}

// Start 啟動核心引擎 (非同步)，ctx 取消後處理完剩下的請求才停止
func (l *LMAXLedger) Start(ctx context.Context) {
	l.startOnce.Do(func() {
		go l.run(ctx)
	})
}

// Done 核心停止後關閉
func (l *LMAXLedger) Done() <-chan struct{} {
	return l.done
}

func (l *LMAXLedger) run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			// 收到關閉信號，把剩下的交易處理完
			l.drain()
			l.logger.Printf("lmax ledger stopped: %v", ctx.Err())
			return
		case req := <-l.transactionChan:
			l.processTransaction(req)
		}
	}
}

func (l *LMAXLedger) drain() {
	for {
		select {
		case req := <-l.transactionChan:
			l.processTransaction(req)
		default:
			return
		}
	}
}

// PostTransaction 接收交易請求
//
// PostTransaction(等待) -> Channel -> Run Loop (核心) -> Apply -> Result Channel -> PostTransaction(收到結果)
func (l *LMAXLedger) PostTransaction(ctx context.Context, op *domain.Operation) error {
	req := l.requestPool.Get().(*transactionRequest)
	req.Op = op
	return l.submit(ctx, req)
}

// OpenAccount 開戶並回傳新帳戶 ID
func (l *LMAXLedger) OpenAccount(ctx context.Context, owner string, initialBalance decimal.Decimal) (uuid.UUID, error) {
	account := domain.NewAccount(owner, initialBalance)
	err := l.query(ctx, func(accounts map[uuid.UUID]*domain.Account) error {
		accounts[account.ID] = account
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return account.ID, nil
}

// GetAccount 取得指定帳戶的快照
func (l *LMAXLedger) GetAccount(ctx context.Context, accountID uuid.UUID) (domain.AccountSnapshot, error) {
	var snap domain.AccountSnapshot
	err := l.query(ctx, func(accounts map[uuid.UUID]*domain.Account) error {
		account, ok := accounts[accountID]
		if !ok {
			return domain.ErrAccountNotFound
		}
		snap = account.Snapshot()
		return nil
	})
	return snap, err
}

// ListAccounts 回傳所有帳戶 ID (依 UUID 排序)
func (l *LMAXLedger) ListAccounts(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := l.query(ctx, func(accounts map[uuid.UUID]*domain.Account) error {
		ids = make([]uuid.UUID, 0, len(accounts))
		for id := range accounts {
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids, nil
}

func (l *LMAXLedger) query(ctx context.Context, fn func(accounts map[uuid.UUID]*domain.Account) error) error {
	req := l.requestPool.Get().(*transactionRequest)
	req.Query = fn
	return l.submit(ctx, req)
}

// submit 放入輸送帶並等待結果
// 呼叫端放棄等待時 req 不放回 Pool，核心仍可能寫入 Result
func (l *LMAXLedger) submit(ctx context.Context, req *transactionRequest) error {
	// 清空 Channel (雖然理論上應該是空的，但保險起見)
	select {
	case <-req.Result:
	default:
	}

	select {
	case <-l.done:
		return ErrLedgerClosed
	default:
	}

	select {
	case l.transactionChan <- req:
	case <-ctx.Done():
		l.release(req)
		return ctx.Err()
	case <-l.done:
		l.release(req)
		return ErrLedgerClosed
	}

	select {
	case err := <-req.Result:
		l.release(req)
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		// 結果在 done 關閉前寫入，先確認是否已處理
		select {
		case err := <-req.Result:
			return err
		default:
			return ErrLedgerClosed
		}
	}
}

func (l *LMAXLedger) release(req *transactionRequest) {
	req.Op = nil
	req.Query = nil
	l.requestPool.Put(req)
}

// processTransaction 處理單筆請求並回傳結果
func (l *LMAXLedger) processTransaction(req *transactionRequest) {
	if req.Query != nil {
		req.Result <- req.Query(l.accounts)
		return
	}
	req.Result <- l.apply(req.Op)
}

func (l *LMAXLedger) apply(op *domain.Operation) error {
	// 0. Idempotency Check (Thread Safe in Loop)
	if op.RefID != uuid.Nil && l.processedTransactions[op.RefID] {
		l.logger.Printf("%s %s already processed", op.Type, op.RefID)
		return nil
	}

	// 1. 取得帳戶
	from, ok := l.accounts[op.From]
	if !ok {
		return domain.ErrAccountNotFound
	}
	var to *domain.Account
	if op.Type == domain.OperationTransfer {
		if to, ok = l.accounts[op.To]; !ok {
			return domain.ErrAccountNotFound
		}
	}

	// 2. 執行業務邏輯
	if err := l.service.Apply(op, from, to); err != nil {
		l.logger.Printf("%s rejected for %s: %v", op.Type, op.From, err)
		return err
	}

	// 3. 更新 Idempotency
	if op.RefID != uuid.Nil {
		l.processedTransactions[op.RefID] = true
	}
	return nil
}

var _ usecase.Ledger = (*LMAXLedger)(nil)
