package debrief

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	debriefUC "github.com/n8dizzle/debrief-tools/internal/application/debrief/usecases"
	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	vo "github.com/n8dizzle/debrief-tools/internal/domain/debrief/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/config"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/database"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/jobfeed"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/notification"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/migrations"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/repository"
	"github.com/n8dizzle/debrief-tools/internal/shared/biztime"
	"github.com/n8dizzle/debrief-tools/internal/shared/db"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

var (
	env        string
	submitFile string
	jobID      int64
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debrief",
		Short: "Debrief operations",
		Long:  `Submit, inspect, and pre-fill post-job debrief checklists.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newSubmitCommand(), newShowCommand(), newSuggestCommand())

	return cmd
}

func newSubmitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a debrief checklist from a JSON file",
		RunE:  runSubmit,
	}

	cmd.Flags().StringVar(&submitFile, "file", "", "Path to a JSON debrief submission")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a job's debrief and composite score",
		RunE:  runShow,
	}

	cmd.Flags().Int64Var(&jobID, "job", 0, "External job id")
	cmd.MarkFlagRequired("job")

	return cmd
}

func newSuggestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Show auto-suggested checklist values for a job",
		RunE:  runSuggest,
	}

	cmd.Flags().Int64Var(&jobID, "job", 0, "External job id")
	cmd.MarkFlagRequired("job")

	return cmd
}

type environment struct {
	cfg         *config.Config
	log         logger.Interface
	txManager   *db.TransactionManager
	ticketRepo  *repository.TicketRepository
	debriefRepo *repository.DebriefRepository
	cleanup     func()
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

	gormDB := database.Get()

	return &environment{
		cfg:         cfg,
		log:         logger.NewLogger(),
		txManager:   db.NewTransactionManager(gormDB),
		ticketRepo:  repository.NewTicketRepository(gormDB),
		debriefRepo: repository.NewDebriefRepository(gormDB),
		cleanup:     func() { database.Close() },
	}, nil
}

func runSubmit(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.cleanup()

	data, err := os.ReadFile(submitFile)
	if err != nil {
		return fmt.Errorf("failed to read submission file: %w", err)
	}

	var submission debriefUC.SubmitDebriefCommand
	if err := json.Unmarshal(data, &submission); err != nil {
		return fmt.Errorf("failed to parse submission file: %w", err)
	}

	// Follow-up collaborators are optional: without a webhook or feed
	// credentials the submission still completes, just without dispatch.
	var notifier debriefUC.FollowUpNotifier
	if e.cfg.Slack.WebhookURL != "" {
		notifier = notification.NewSlackNotifier(&e.cfg.Slack, e.log)
	}
	var taskCreator debriefUC.TaskCreator
	if e.cfg.JobFeed.ClientID != "" {
		taskCreator = jobfeed.NewTaskCreator(jobfeed.NewClient(&e.cfg.JobFeed, e.log), e.log)
	}

	uc := debriefUC.NewSubmitDebriefUseCase(
		e.ticketRepo,
		e.debriefRepo,
		repository.NewDispatcherRepository(database.Get()),
		e.txManager,
		notifier,
		taskCreator,
		e.cfg.Server.BaseURL,
		e.log,
	)

	result, err := uc.Execute(cmd.Context(), submission)
	if err != nil {
		return err
	}

	fmt.Printf("%s: job %d scored %.1f\n", result.Message, result.JobID, result.CompositeScore)
	if result.Overwritten {
		fmt.Println("previous submission was overwritten")
	}
	for _, warning := range result.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.cleanup()

	uc := debriefUC.NewGetDebriefUseCase(e.ticketRepo, e.debriefRepo, e.log)
	result, err := uc.Execute(cmd.Context(), debriefUC.GetDebriefQuery{JobID: jobID})
	if err != nil {
		return err
	}

	fmt.Printf("job %d debriefed by dispatcher %d, composite score %.1f\n",
		result.JobID, result.DispatcherID, result.CompositeScore)
	fmt.Printf("  photos %s, payment %s, estimates %s, membership %s, reviews %s\n",
		result.Checklist.PhotosReviewed,
		result.Checklist.PaymentVerified,
		result.Checklist.EstimatesVerified,
		result.Checklist.MembershipVerified,
		result.Checklist.GoogleReviewsDiscussed,
	)
	if result.Checklist.InvoiceSummaryScore != nil {
		fmt.Printf("  invoice summary %d/10\n", *result.Checklist.InvoiceSummaryScore)
	}
	if result.FollowUp.Required {
		fmt.Printf("  follow-up (%s): %s\n", result.FollowUp.Type, result.FollowUp.Description)
	}
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.cleanup()

	t, err := e.ticketRepo.GetByJobID(cmd.Context(), jobID)
	if err != nil {
		return err
	}

	suggestions := debrief.AutoSuggestions(t.Snapshot())

	printSuggestion("photos_reviewed", suggestions.PhotosReviewed)
	printSuggestion("payment_verified", suggestions.PaymentVerified)
	printSuggestion("estimates_verified", suggestions.EstimatesVerified)
	printSuggestion("membership_verified", suggestions.MembershipVerified)
	return nil
}

func printSuggestion(name string, value *vo.CheckStatus) {
	if value == nil {
		fmt.Printf("  %-20s needs review\n", name)
		return
	}
	fmt.Printf("  %-20s %s\n", name, value.String())
}
