package memory

import (
	"errors"
	"io"
	"log"
)

const defaultQueueSize = 1000

var (
	// ErrLedgerClosed LMAX 核心已停止，不再接受請求
	ErrLedgerClosed = errors.New("ledger closed")

	// ErrNilService 未提供銀行服務設定
	ErrNilService = errors.New("banking service is required")
)

type options struct {
	logger    *log.Logger
	queueSize int
}

// Option 定義了 Ledger 的配置選項函數
type Option func(*options)

// WithLogger 設定 Ledger 的 logger，預設不輸出
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithQueueSize 設定 LMAX 輸送帶的緩衝大小，<= 0 時使用預設 1000
func WithQueueSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.queueSize = size
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:    log.New(io.Discard, "", 0),
		queueSize: defaultQueueSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
