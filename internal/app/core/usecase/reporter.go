package usecase

import (
	"io"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// Reporter 把帳戶快照輸出成報表，只讀不寫
type Reporter interface {
	Report(w io.Writer, service *domain.BankingService, snap domain.AccountSnapshot) error
}
