package config

import (
	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Bank
	BranchCode      string `env:"BRANCH_CODE"      envDefault:"0001"`
	WithdrawalLimit string `env:"WITHDRAWAL_LIMIT" envDefault:"500"`
	MaxWithdrawals  int    `env:"MAX_WITHDRAWALS"  envDefault:"3"`
	CurrencySymbol  string `env:"CURRENCY_SYMBOL"  envDefault:"$"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
