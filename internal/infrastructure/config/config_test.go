package config_test

import (
	"testing"

	"github.com/iho/gobank/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.BranchCode != "0001" {
		t.Fatalf("expected default branch code 0001, got %s", cfg.BranchCode)
	}

	if cfg.WithdrawalLimit != "500" {
		t.Fatalf("expected default withdrawal limit 500, got %s", cfg.WithdrawalLimit)
	}

	if cfg.MaxWithdrawals != 3 {
		t.Fatalf("expected default max withdrawals 3, got %d", cfg.MaxWithdrawals)
	}

	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BRANCH_CODE", "0042")
	t.Setenv("WITHDRAWAL_LIMIT", "750.50")
	t.Setenv("MAX_WITHDRAWALS", "5")
	t.Setenv("CURRENCY_SYMBOL", "R$")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.BranchCode != "0042" {
		t.Fatalf("expected branch code override, got %s", cfg.BranchCode)
	}

	if cfg.WithdrawalLimit != "750.50" {
		t.Fatalf("expected withdrawal limit override, got %s", cfg.WithdrawalLimit)
	}

	if cfg.MaxWithdrawals != 5 {
		t.Fatalf("expected max withdrawals override, got %d", cfg.MaxWithdrawals)
	}

	if cfg.CurrencySymbol != "R$" {
		t.Fatalf("expected currency symbol override, got %s", cfg.CurrencySymbol)
	}

	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level override, got %s", cfg.LogLevel)
	}
}

func TestLoadInvalidInt(t *testing.T) {
	t.Setenv("MAX_WITHDRAWALS", "not-a-number")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid integer")
	}
}
