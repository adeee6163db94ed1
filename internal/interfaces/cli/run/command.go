package run

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	spotcheckUC "github.com/n8dizzle/debrief-tools/internal/application/spotcheck/usecases"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/config"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/database"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/migrations"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/repository"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/scheduler"
	"github.com/n8dizzle/debrief-tools/internal/shared/biztime"
	"github.com/n8dizzle/debrief-tools/internal/shared/db"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the QA scheduler daemon",
		Long:  `Run the daily spot-check selection scheduler until interrupted.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.QA.BusinessTimezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	logger.Info("starting scheduler daemon",
		"environment", env,
		"business_timezone", cfg.QA.BusinessTimezone,
		"selection_hour", cfg.QA.SelectionHour,
	)

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migrations.MigrateQATables(database.Get()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log := logger.NewLogger()
	gormDB := database.Get()
	txManager := db.NewTransactionManager(gormDB)

	debriefRepo := repository.NewDebriefRepository(gormDB)
	spotCheckRepo := repository.NewSpotCheckRepository(gormDB)

	selector := spotcheckUC.NewSelectDailySpotChecksUseCase(
		debriefRepo,
		spotCheckRepo,
		txManager,
		cfg.QA.SpotCheckFraction,
		log,
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sched := scheduler.NewSpotCheckScheduler(selector, cfg.QA.SelectionHour, log)
	sched.Start(ctx)
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", "signal", sig.String())
	return nil
}
