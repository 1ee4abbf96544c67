package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// Ledger 是帳戶保管的介面，負責並行下的原子性
type Ledger interface {
	// 不分存提款，直接看 op.Type 決定
	PostTransaction(ctx context.Context, op *domain.Operation) error
	// OpenAccount 開戶
	OpenAccount(ctx context.Context, owner string, initialBalance decimal.Decimal) (uuid.UUID, error)
	// GetAccount 取得帳戶快照
	GetAccount(ctx context.Context, accountID uuid.UUID) (domain.AccountSnapshot, error)
	// ListAccounts 列出所有帳戶 ID
	ListAccounts(ctx context.Context) ([]uuid.UUID, error)
}
