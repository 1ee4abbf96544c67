package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// LedgerType 使用哪種 Ledger
type LedgerType string

const (
	LedgerTypeMutex LedgerType = "mutex"
	LedgerTypeLMAX  LedgerType = "lmax"
)

// Config 銀行設定檔
type Config struct {
	Service  ServiceConfig   `yaml:"service"`
	Ledger   LedgerConfig    `yaml:"ledger"`
	Accounts []AccountConfig `yaml:"accounts"`
}

// ServiceConfig 銀行 NPC 的個性：名稱、手續費、收益率與每日額度
type ServiceConfig struct {
	Name           string  `yaml:"name"`
	DepositFee     float64 `yaml:"deposit_fee"`
	WithdrawalFee  float64 `yaml:"withdrawal_fee"`
	TransferFee    float64 `yaml:"transfer_fee"`
	InvestmentRate float64 `yaml:"investment_rate"`
	DailyLimit     float64 `yaml:"daily_limit"` // <= 0 時使用預設 25000
}

// LedgerConfig 帳本並行策略
type LedgerConfig struct {
	Type      LedgerType `yaml:"type"`       // mutex | lmax
	QueueSize int        `yaml:"queue_size"` // 只有 lmax 使用
}

// AccountConfig 啟動時預先建立的帳戶
type AccountConfig struct {
	Owner   string  `yaml:"owner"`
	Balance float64 `yaml:"balance"`
}

// Load 讀取並解析設定檔
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse 解析 YAML 並補全預設值
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Ledger.Type == "" {
		cfg.Ledger.Type = LedgerTypeMutex
	}
	if cfg.Ledger.QueueSize <= 0 {
		cfg.Ledger.QueueSize = 1000
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate 檢查設定值
// 手續費與收益率 <= 0 交給 domain 處理 (視為不收費、不產生收益)，這裡不擋
func (c Config) Validate() error {
	switch c.Ledger.Type {
	case LedgerTypeMutex, LedgerTypeLMAX:
		return nil
	default:
		return fmt.Errorf("invalid ledger type: %q", c.Ledger.Type)
	}
}

// BankingService 依設定建立銀行服務
func (s ServiceConfig) BankingService() *domain.BankingService {
	return domain.NewBankingService(
		s.Name,
		decimal.NewFromFloat(s.DepositFee),
		decimal.NewFromFloat(s.WithdrawalFee),
		decimal.NewFromFloat(s.TransferFee),
		decimal.NewFromFloat(s.InvestmentRate),
		decimal.NewFromFloat(s.DailyLimit),
	)
}

// NewAccounts 依設定建立預設帳戶
func (c Config) NewAccounts() []*domain.Account {
	accounts := make([]*domain.Account, 0, len(c.Accounts))
	for _, a := range c.Accounts {
		accounts = append(accounts, domain.NewAccount(a.Owner, decimal.NewFromFloat(a.Balance)))
	}
	return accounts
}
