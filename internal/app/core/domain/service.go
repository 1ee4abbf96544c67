package domain

import "github.com/shopspring/decimal"

// 交易護欄常數
var (
	// MinTransaction 最小交易金額
	MinTransaction = decimal.NewFromInt(1)
	// MaxTransaction 單筆交易上限
	MaxTransaction = decimal.NewFromInt(10000)
	// DefaultDailyLimit 服務未設定每日額度時使用
	DefaultDailyLimit = decimal.NewFromInt(25000)
)

const (
	// MaxItems 倉庫可存放的不同物品數
	MaxItems = 32
	// MaxItemQuantity 單項物品數量上限
	MaxItemQuantity = 999
	// MaxHistory 交易紀錄保留筆數
	MaxHistory = 64
)

const (
	defaultServiceName = "Bank"
	defaultOwner       = "Unknown"
)

// BankingService 銀行 NPC 的設定，同一套規則可透過費用與額度變化出不同個性
// 建立後視為唯讀
type BankingService struct {
	Name           string
	DepositFee     decimal.Decimal
	WithdrawalFee  decimal.Decimal
	TransferFee    decimal.Decimal
	InvestmentRate decimal.Decimal // 收益率，0.05 = 5%
	DailyLimit     decimal.Decimal
}

// NewBankingService 建立銀行服務設定
//
// 參數:
//
//	name: 服務名稱，空字串時為 "Bank"
//	depositFee, withdrawalFee, transferFee: 各類交易手續費
//	investmentRate: 投資收益率
//	dailyLimit: 每日額度，<= 0 時使用 DefaultDailyLimit
//
// 回傳:
//
//	*BankingService: 服務設定
func NewBankingService(name string, depositFee, withdrawalFee, transferFee, investmentRate, dailyLimit decimal.Decimal) *BankingService {
	if name == "" {
		name = defaultServiceName
	}
	if !dailyLimit.IsPositive() {
		dailyLimit = DefaultDailyLimit
	}
	return &BankingService{
		Name:           name,
		DepositFee:     depositFee,
		WithdrawalFee:  withdrawalFee,
		TransferFee:    transferFee,
		InvestmentRate: investmentRate,
		DailyLimit:     dailyLimit,
	}
}

// EffectiveDailyLimit 實際生效的每日額度
func (s *BankingService) EffectiveDailyLimit() decimal.Decimal {
	if s.DailyLimit.IsPositive() {
		return s.DailyLimit
	}
	return DefaultDailyLimit
}
