package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// CoreUseCase 是核心業務邏輯層，把帳戶 ID 形式的呼叫轉成 Operation
type CoreUseCase struct {
	ledger   Ledger
	service  *domain.BankingService
	reporter Reporter
}

func NewCoreUseCase(ledger Ledger, service *domain.BankingService, reporter Reporter) *CoreUseCase {
	return &CoreUseCase{
		ledger:   ledger,
		service:  service,
		reporter: reporter,
	}
}

// Service 回傳銀行服務設定
func (c *CoreUseCase) Service() *domain.BankingService {
	return c.service
}

// OpenAccount 開戶
func (c *CoreUseCase) OpenAccount(ctx context.Context, owner string, initialBalance decimal.Decimal) (uuid.UUID, error) {
	return c.ledger.OpenAccount(ctx, owner, initialBalance)
}

// GetAccount 取得帳戶快照
func (c *CoreUseCase) GetAccount(ctx context.Context, accountID uuid.UUID) (domain.AccountSnapshot, error) {
	return c.ledger.GetAccount(ctx, accountID)
}

// PostTransaction 直接送出已組好的交易
func (c *CoreUseCase) PostTransaction(ctx context.Context, op *domain.Operation) error {
	return c.ledger.PostTransaction(ctx, op)
}

func (c *CoreUseCase) Deposit(ctx context.Context, refID, accountID uuid.UUID, amount decimal.Decimal) error {
	return c.post(ctx, &domain.Operation{RefID: refID, Type: domain.OperationDeposit, From: accountID, Amount: amount})
}

func (c *CoreUseCase) Withdraw(ctx context.Context, refID, accountID uuid.UUID, amount decimal.Decimal) error {
	return c.post(ctx, &domain.Operation{RefID: refID, Type: domain.OperationWithdraw, From: accountID, Amount: amount})
}

// Transfer 轉帳，手續費由收款方入帳金額扣除
func (c *CoreUseCase) Transfer(ctx context.Context, refID, fromID, toID uuid.UUID, amount decimal.Decimal) error {
	return c.post(ctx, &domain.Operation{RefID: refID, Type: domain.OperationTransfer, From: fromID, To: toID, Amount: amount})
}

func (c *CoreUseCase) Invest(ctx context.Context, refID, accountID uuid.UUID, amount decimal.Decimal) error {
	return c.post(ctx, &domain.Operation{RefID: refID, Type: domain.OperationInvest, From: accountID, Amount: amount})
}

func (c *CoreUseCase) WithdrawInvestment(ctx context.Context, refID, accountID uuid.UUID, amount decimal.Decimal) error {
	return c.post(ctx, &domain.Operation{RefID: refID, Type: domain.OperationWithdrawInvestment, From: accountID, Amount: amount})
}

func (c *CoreUseCase) ApplyInvestmentYield(ctx context.Context, accountID uuid.UUID) error {
	return c.post(ctx, &domain.Operation{Type: domain.OperationApplyYield, From: accountID})
}

func (c *CoreUseCase) StoreItem(ctx context.Context, refID, accountID uuid.UUID, name string, quantity int) error {
	return c.post(ctx, &domain.Operation{RefID: refID, Type: domain.OperationStoreItem, From: accountID, Item: name, Quantity: quantity})
}

func (c *CoreUseCase) RetrieveItem(ctx context.Context, refID, accountID uuid.UUID, name string, quantity int) error {
	return c.post(ctx, &domain.Operation{RefID: refID, Type: domain.OperationRetrieveItem, From: accountID, Item: name, Quantity: quantity})
}

func (c *CoreUseCase) ResetDaily(ctx context.Context, accountID uuid.UUID) error {
	return c.post(ctx, &domain.Operation{Type: domain.OperationResetDaily, From: accountID})
}

// EndOfDay 遊戲日結束：對每個帳戶先結算投資收益再重置每日額度
// 由外部的日週期驅動呼叫
//
// 回傳:
//
//	error: 第一個失敗帳戶的錯誤，之後的帳戶不再處理
func (c *CoreUseCase) EndOfDay(ctx context.Context) error {
	ids, err := c.ledger.ListAccounts(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := c.ApplyInvestmentYield(ctx, id); err != nil {
			return fmt.Errorf("apply yield for %s: %w", id, err)
		}
		if err := c.ResetDaily(ctx, id); err != nil {
			return fmt.Errorf("reset daily for %s: %w", id, err)
		}
	}
	return nil
}

// Report 將帳戶報表寫到 w
func (c *CoreUseCase) Report(ctx context.Context, accountID uuid.UUID, w io.Writer) error {
	snap, err := c.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	return c.reporter.Report(w, c.service, snap)
}

func (c *CoreUseCase) post(ctx context.Context, op *domain.Operation) error {
	return c.ledger.PostTransaction(ctx, op)
}
