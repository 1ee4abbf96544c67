package memory

import (
	"context"
	"fmt"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/config"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// New 依設定建立 Ledger，LMAX 會直接以 ctx 啟動
func New(ctx context.Context, cfg config.LedgerConfig, service *domain.BankingService, accounts []*domain.Account, opts ...Option) (usecase.Ledger, error) {
	switch cfg.Type {
	case config.LedgerTypeMutex, "":
		ledger, err := NewMutexLedger(service, accounts, opts...)
		if err != nil {
			return nil, err
		}
		return ledger, nil
	case config.LedgerTypeLMAX:
		opts = append([]Option{WithQueueSize(cfg.QueueSize)}, opts...)
		ledger, err := NewLMAXLedger(service, accounts, opts...)
		if err != nil {
			return nil, err
		}
		ledger.Start(ctx)
		return ledger, nil
	default:
		return nil, fmt.Errorf("invalid ledger type: %q", cfg.Type)
	}
}
