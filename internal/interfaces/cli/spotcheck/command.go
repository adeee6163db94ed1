package spotcheck

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/n8dizzle/debrief-tools/internal/application/spotcheck/dto"
	spotcheckUC "github.com/n8dizzle/debrief-tools/internal/application/spotcheck/usecases"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/cache"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/config"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/database"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/migrations"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/repository"
	"github.com/n8dizzle/debrief-tools/internal/shared/biztime"
	"github.com/n8dizzle/debrief-tools/internal/shared/db"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

var (
	env          string
	targetDate   string
	fraction     float64
	dispatcherID uint
	debriefID    uint
	spotCheckID  uint
	reviewerID   uint
	reviewFile   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spotcheck",
		Short: "Spot-check operations",
		Long:  `Run the daily spot-check selection or report dispatcher accuracy.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newSelectCommand(),
		newAccuracyCommand(),
		newCreateCommand(),
		newBeginCommand(),
		newReviewCommand(),
	)

	return cmd
}

func newSelectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Run the daily spot-check selection once",
		RunE:  runSelect,
	}

	cmd.Flags().StringVar(&targetDate, "date", "", "Target date (YYYY-MM-DD, default yesterday in business timezone)")
	cmd.Flags().Float64Var(&fraction, "fraction", 0, "Sampling fraction override (default from config)")

	return cmd
}

func newAccuracyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accuracy",
		Short: "Report dispatcher spot-check accuracy",
		RunE:  runAccuracy,
	}

	cmd.Flags().UintVar(&dispatcherID, "dispatcher", 0, "Dispatcher id (default all active dispatchers)")

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Put a single debrief up for audit",
		RunE:  runCreate,
	}

	cmd.Flags().UintVar(&debriefID, "debrief", 0, "Debrief id")
	cmd.MarkFlagRequired("debrief")

	return cmd
}

func newBeginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "begin",
		Short: "Claim a pending spot check for review",
		RunE:  runBegin,
	}

	cmd.Flags().UintVar(&spotCheckID, "id", 0, "Spot check id")
	cmd.Flags().UintVar(&reviewerID, "reviewer", 0, "Reviewer dispatcher id")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("reviewer")

	return cmd
}

func newReviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Submit a spot check review from a JSON file",
		RunE:  runReview,
	}

	cmd.Flags().StringVar(&reviewFile, "file", "", "Path to a JSON review submission")
	cmd.MarkFlagRequired("file")

	return cmd
}

type environment struct {
	cfg           *config.Config
	log           logger.Interface
	txManager     *db.TransactionManager
	accuracyCache spotcheckUC.AccuracyCache

	debriefRepo    *repository.DebriefRepository
	spotCheckRepo  *repository.SpotCheckRepository
	dispatcherRepo *repository.DispatcherRepository

	cleanup func()
}

func setup() (*environment, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.QA.BusinessTimezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := migrations.MigrateQATables(database.Get()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log := logger.NewLogger()
	gormDB := database.Get()

	e := &environment{
		cfg:            cfg,
		log:            log,
		txManager:      db.NewTransactionManager(gormDB),
		debriefRepo:    repository.NewDebriefRepository(gormDB),
		spotCheckRepo:  repository.NewSpotCheckRepository(gormDB),
		dispatcherRepo: repository.NewDispatcherRepository(gormDB),
	}

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		e.accuracyCache = cache.NewRedisAccuracyCache(redisClient, log)
		e.cleanup = func() {
			redisClient.Close()
			database.Close()
		}
	} else {
		e.cleanup = func() { database.Close() }
	}

	return e, nil
}

func runSelect(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.cleanup()

	selector := spotcheckUC.NewSelectDailySpotChecksUseCase(
		e.debriefRepo,
		e.spotCheckRepo,
		e.txManager,
		e.cfg.QA.SpotCheckFraction,
		e.log,
	)

	result, err := selector.Execute(cmd.Context(), spotcheckUC.SelectDailySpotChecksCommand{
		TargetDate:     targetDate,
		TargetFraction: fraction,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Message)
	return nil
}

func runAccuracy(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.cleanup()

	if dispatcherID != 0 {
		uc := spotcheckUC.NewGetDispatcherAccuracyUseCase(
			e.dispatcherRepo,
			e.spotCheckRepo,
			e.accuracyCache,
			e.log,
		)
		report, err := uc.Execute(cmd.Context(), spotcheckUC.GetDispatcherAccuracyQuery{DispatcherID: dispatcherID})
		if err != nil {
			return err
		}
		printReport(report)
		return nil
	}

	uc := spotcheckUC.NewListDispatcherAccuracyUseCase(
		e.dispatcherRepo,
		e.spotCheckRepo,
		e.accuracyCache,
		e.log,
	)
	reports, err := uc.Execute(cmd.Context())
	if err != nil {
		return err
	}
	for _, report := range reports {
		printReport(report)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.cleanup()

	uc := spotcheckUC.NewCreateManualSpotCheckUseCase(e.debriefRepo, e.spotCheckRepo, e.log)
	result, err := uc.Execute(cmd.Context(), spotcheckUC.CreateManualSpotCheckCommand{DebriefID: debriefID})
	if err != nil {
		return err
	}

	fmt.Printf("%s (spot check %d)\n", result.Message, result.SpotCheckID)
	return nil
}

func runBegin(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.cleanup()

	uc := spotcheckUC.NewBeginReviewUseCase(e.spotCheckRepo, e.dispatcherRepo, e.log)
	result, err := uc.Execute(cmd.Context(), spotcheckUC.BeginReviewCommand{
		SpotCheckID: spotCheckID,
		ReviewerID:  reviewerID,
	})
	if err != nil {
		return err
	}

	fmt.Printf("spot check %d is now %s\n", result.SpotCheckID, result.Status)
	return nil
}

func runReview(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.cleanup()

	data, err := os.ReadFile(reviewFile)
	if err != nil {
		return fmt.Errorf("failed to read review file: %w", err)
	}

	var review spotcheckUC.SubmitReviewCommand
	if err := json.Unmarshal(data, &review); err != nil {
		return fmt.Errorf("failed to parse review file: %w", err)
	}

	uc := spotcheckUC.NewSubmitReviewUseCase(
		e.spotCheckRepo,
		e.debriefRepo,
		e.dispatcherRepo,
		e.accuracyCache,
		e.log,
	)
	result, err := uc.Execute(cmd.Context(), review)
	if err != nil {
		return err
	}

	fmt.Println(result.Message)
	return nil
}

func printReport(report *dto.AccuracyReport) {
	overall := "n/a"
	if report.OverallAccuracy != nil {
		overall = fmt.Sprintf("%.1f%%", *report.OverallAccuracy)
	}
	fmt.Printf("%s (%s): overall %s over %d spot checks\n",
		report.DispatcherName, report.Role, overall, report.SampleSize)
	for _, item := range report.Items {
		if item.Total == 0 {
			continue
		}
		fmt.Printf("  %-14s %d/%d (%.1f%%)\n", item.Name, item.Correct, item.Total, *item.Accuracy)
	}
}
