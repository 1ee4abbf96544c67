// Package report 把帳戶快照格式化成給玩家看的文字報表，只讀不寫
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

const timeLayout = "15:04:05"

// TextReporter 以純文字輸出報表
type TextReporter struct{}

func (TextReporter) Report(w io.Writer, service *domain.BankingService, snap domain.AccountSnapshot) error {
	return Write(w, service, snap)
}

var _ usecase.Reporter = TextReporter{}

// Write 將報表寫到 w
//
// 內容: 服務名稱、持有人、現金、投資、每日累計/額度、倉庫物品、
// 依時間順序的交易紀錄 (本地時間、描述、金額、交易後餘額)
func Write(w io.Writer, service *domain.BankingService, snap domain.AccountSnapshot) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\n=== %s Banking Report for %s ===\n", service.Name, snap.Owner)
	fmt.Fprintf(bw, "Balance: %s\n", snap.Balance.StringFixed(2))
	fmt.Fprintf(bw, "Investments: %s\n", snap.InvestmentBalance.StringFixed(2))
	fmt.Fprintf(bw, "Daily Total: %s / %s\n",
		snap.DailyTotal.StringFixed(2), service.EffectiveDailyLimit().StringFixed(2))

	fmt.Fprintf(bw, "Stored Items (%d):\n", len(snap.Items))
	for _, item := range snap.Items {
		fmt.Fprintf(bw, "  %s x%d\n", item.Name, item.Quantity)
	}

	fmt.Fprintf(bw, "Recent Transactions (%d):\n", len(snap.History))
	for _, entry := range snap.History {
		fmt.Fprintf(bw, "  [%s] %-21s %8s -> %s\n",
			entry.Timestamp.Local().Format(timeLayout),
			entry.Description,
			entry.Amount.StringFixed(2),
			entry.ResultingBalance.StringFixed(2),
		)
	}

	return bw.Flush()
}

// String 回傳報表字串
func String(service *domain.BankingService, snap domain.AccountSnapshot) string {
	var sb strings.Builder
	_ = Write(&sb, service, snap)
	return sb.String()
}
