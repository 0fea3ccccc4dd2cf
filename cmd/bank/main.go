package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/gobank/internal/adapter/console"
	"github.com/iho/gobank/internal/adapter/repository/memory"
	"github.com/iho/gobank/internal/infrastructure/config"
	"github.com/iho/gobank/internal/infrastructure/logger"
	"github.com/iho/gobank/internal/usecase"
)

var (
	flagLimit          string
	flagMaxWithdrawals int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gobank",
		Short: "In-memory banking console",
		Long:  `An interactive banking console: register customers, open checking accounts, deposit, withdraw and print statements. All state lives in memory and is lost on exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	rootCmd.Flags().StringVar(&flagLimit, "limit", "", "Per-withdrawal limit for new checking accounts (overrides WITHDRAWAL_LIMIT)")
	rootCmd.Flags().IntVar(&flagMaxWithdrawals, "max-withdrawals", 0, "Withdrawal-count cap for new checking accounts (overrides MAX_WITHDRAWALS)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("limit") {
		cfg.WithdrawalLimit = flagLimit
	}
	if cmd.Flags().Changed("max-withdrawals") {
		cfg.MaxWithdrawals = flagMaxWithdrawals
	}

	withdrawalLimit, err := decimal.NewFromString(cfg.WithdrawalLimit)
	if err != nil {
		return fmt.Errorf("invalid withdrawal limit %q: %w", cfg.WithdrawalLimit, err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	customerRepo := memory.NewCustomerRepository()
	accountRepo := memory.NewAccountRepository()

	customerUC := usecase.NewCustomerUseCase(customerRepo, log)
	accountUC := usecase.NewAccountUseCase(customerRepo, accountRepo, usecase.CheckingConfig{
		BranchCode:      cfg.BranchCode,
		WithdrawalLimit: withdrawalLimit,
		MaxWithdrawals:  cfg.MaxWithdrawals,
	}, log)
	transactionUC := usecase.NewTransactionUseCase(customerRepo, log)

	session := console.NewSession(
		os.Stdin,
		os.Stdout,
		customerUC,
		accountUC,
		transactionUC,
		cfg.CurrencySymbol,
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("branch", cfg.BranchCode).
		Str("withdrawal_limit", withdrawalLimit.String()).
		Int("max_withdrawals", cfg.MaxWithdrawals).
		Msg("starting session")

	return session.Run(ctx)
}
