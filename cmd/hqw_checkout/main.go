package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
	"github.com/hqdw/hq_warehouse_app/internal/core/services"
	"github.com/hqdw/hq_warehouse_app/internal/repositories/database/pgsql"
	"github.com/hqdw/hq_warehouse_app/pkg/config"
	"github.com/hqdw/hq_warehouse_app/pkg/database"
)

// flagParseError marks errors raised by flag parsing so main can exit with a
// distinct code.
type flagParseError struct {
	err error
}

func (e flagParseError) Error() string { return e.err.Error() }
func (e flagParseError) Unwrap() error { return e.err }

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hqw_checkout",
	Short: "Check out staging records into the warehouse",
	Long: `hqw_checkout lifts staged currency, exchange rate and hotel offer records
into the warehouse tables. Records that fail validation or are refused by the
warehouse are flagged on the staging row and left for a later sweep.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <batch-id>",
	Short: "Check out every staging record of one batch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		batchID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("batch id must be an integer, got %q", args[0])
		}

		checkout, cleanup, err := buildCheckoutService()
		if err != nil {
			return err
		}
		defer cleanup()

		outcomes, err := checkout.CheckoutBatch(cmd.Context(), batchID)
		printOutcomes(outcomes)
		return err
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep <entity>",
	Short: "Re-attempt flagged records of one entity (currency, forex or offer)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entity := domain.EntityType(args[0])
		switch entity {
		case domain.EntityCurrency, domain.EntityForex, domain.EntityOffer:
		default:
			return fmt.Errorf("entity must be one of currency, forex, offer; got %q", args[0])
		}

		checkout, cleanup, err := buildCheckoutService()
		if err != nil {
			return err
		}
		defer cleanup()

		outcomes, err := checkout.SweepErrors(cmd.Context(), entity)
		printOutcomes(outcomes)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return flagParseError{err: err}
	})
	rootCmd.AddCommand(batchCmd, sweepCmd)
}

// buildCheckoutService wires the full checkout pipeline from configuration.
// The returned cleanup closes the connection pool.
func buildCheckoutService() (*services.CheckoutService, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	cache := services.NewDimensionCache(cfg.BaseCurrencyCode)
	resolver := services.NewForexResolver(cache, repos.ForexRepo)
	validator := services.NewCheckoutValidator(cache, repos.CurrencyRepo, resolver, loc)
	writer := services.NewWarehouseWriter(repos.CurrencyRepo, repos.ForexRepo, repos.OfferRepo)
	checkout := services.NewCheckoutService(repos.StagingRepo, repos.BatchRepo, validator, writer, cache, loc, logger)

	return checkout, func() { database.ClosePgxPool(dbPool) }, nil
}

// printOutcomes reports failures always and successes only in verbose mode.
func printOutcomes(outcomes []services.RecordOutcome) {
	for _, outcome := range outcomes {
		if outcome.Success && !verbose {
			continue
		}
		fmt.Println(outcome.String())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var parseErr flagParseError
		if errors.As(err, &parseErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
