package ticket

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	ticketUC "github.com/n8dizzle/debrief-tools/internal/application/ticket/usecases"
	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
	vo "github.com/n8dizzle/debrief-tools/internal/domain/ticket/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/config"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/database"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/jobfeed"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/migrations"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/repository"
	"github.com/n8dizzle/debrief-tools/internal/shared/biztime"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

var (
	env      string
	feedFile string
	jobID    int64
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Ticket queue operations",
		Long:  `Ingest completed jobs into the debrief queue and manage ticket state.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newIngestCommand(), newVerifyCommand(), newOpenCommand(), newResetCommand(), newQueueCommand())

	return cmd
}

func newIngestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest completed jobs from a JSON feed file",
		RunE:  runIngest,
	}

	cmd.Flags().StringVar(&feedFile, "file", "", "Path to a JSON array of job records")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a job's status in the upstream feed",
		RunE:  runVerify,
	}

	cmd.Flags().Int64Var(&jobID, "job", 0, "External job id")
	cmd.MarkFlagRequired("job")

	return cmd
}

func newOpenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Mark a ticket as being reviewed",
		RunE:  runOpen,
	}

	cmd.Flags().Int64Var(&jobID, "job", 0, "External job id")
	cmd.MarkFlagRequired("job")

	return cmd
}

func newResetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Return a ticket to the pending queue",
		RunE:  runReset,
	}

	cmd.Flags().Int64Var(&jobID, "job", 0, "External job id")
	cmd.MarkFlagRequired("job")

	return cmd
}

func newQueueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "queue",
		Short: "List tickets waiting for a debrief",
		RunE:  runQueue,
	}
}

type environment struct {
	cfg        *config.Config
	log        logger.Interface
	ticketRepo *repository.TicketRepository
	cleanup    func()
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

	return &environment{
		cfg:        cfg,
		log:        logger.NewLogger(),
		ticketRepo: repository.NewTicketRepository(database.Get()),
		cleanup:    func() { database.Close() },
	}, nil
}

// jobRecord is one entry of the ingest feed file.
type jobRecord struct {
	JobID             int64      `json:"jobId"`
	JobNumber         string     `json:"jobNumber"`
	BusinessUnitName  string     `json:"businessUnitName"`
	JobTypeName       string     `json:"jobTypeName"`
	JobCategory       string     `json:"jobCategory"`
	TradeType         string     `json:"tradeType"`
	JobStatus         string     `json:"jobStatus"`
	IsOpportunity     bool       `json:"isOpportunity"`
	TechID            int64      `json:"techId"`
	TechName          string     `json:"techName"`
	CustomerID        int64      `json:"customerId"`
	CustomerName      string     `json:"customerName"`
	IsNewCustomer     bool       `json:"isNewCustomer"`
	LocationID        int64      `json:"locationId"`
	LocationAddress   string     `json:"locationAddress"`
	InvoiceID         int64      `json:"invoiceId"`
	InvoiceNumber     string     `json:"invoiceNumber"`
	InvoiceSummary    string     `json:"invoiceSummary"`
	InvoiceTotal      float64    `json:"invoiceTotal"`
	InvoiceBalance    float64    `json:"invoiceBalance"`
	PaymentCollected  bool       `json:"paymentCollected"`
	EstimateCount     int        `json:"estimateCount"`
	EstimatesTotal    float64    `json:"estimatesTotal"`
	MembershipSold    bool       `json:"membershipSold"`
	MembershipType    string     `json:"membershipType"`
	MembershipExpires *time.Time `json:"membershipExpires"`
	PhotoCount        int        `json:"photoCount"`
	FormCount         int        `json:"formCount"`
	CompletedOn       *time.Time `json:"completedOn"`
}

func (r jobRecord) snapshot() ticket.Snapshot {
	return ticket.Snapshot{
		JobNumber:         r.JobNumber,
		BusinessUnitName:  r.BusinessUnitName,
		JobTypeName:       r.JobTypeName,
		JobCategory:       r.JobCategory,
		TradeType:         r.TradeType,
		JobStatus:         r.JobStatus,
		IsOpportunity:     r.IsOpportunity,
		TechID:            r.TechID,
		TechName:          r.TechName,
		CustomerID:        r.CustomerID,
		CustomerName:      r.CustomerName,
		IsNewCustomer:     r.IsNewCustomer,
		LocationID:        r.LocationID,
		LocationAddress:   r.LocationAddress,
		InvoiceID:         r.InvoiceID,
		InvoiceNumber:     r.InvoiceNumber,
		InvoiceSummary:    r.InvoiceSummary,
		InvoiceTotal:      r.InvoiceTotal,
		InvoiceBalance:    r.InvoiceBalance,
		PaymentCollected:  r.PaymentCollected,
		EstimateCount:     r.EstimateCount,
		EstimatesTotal:    r.EstimatesTotal,
		MembershipSold:    r.MembershipSold,
		MembershipType:    r.MembershipType,
		MembershipExpires: r.MembershipExpires,
		PhotoCount:        r.PhotoCount,
		FormCount:         r.FormCount,
		CompletedAt:       r.CompletedOn,
	}
}

func runIngest(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.cleanup()

	data, err := os.ReadFile(feedFile)
	if err != nil {
		return fmt.Errorf("failed to read feed file: %w", err)
	}

	var records []jobRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse feed file: %w", err)
	}

	uc := ticketUC.NewIngestTicketUseCase(e.ticketRepo, e.log)

	created, skipped := 0, 0
	for _, record := range records {
		result, err := uc.Execute(cmd.Context(), ticketUC.IngestTicketCommand{
			JobID:    record.JobID,
			Snapshot: record.snapshot(),
		})
		if err != nil {
			return fmt.Errorf("failed to ingest job %d: %w", record.JobID, err)
		}
		if result.AlreadyExists {
			skipped++
		} else {
			created++
		}
	}

	fmt.Printf("ingested %d tickets (%d already existed)\n", created, skipped)
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.cleanup()

	if e.cfg.JobFeed.ClientID == "" {
		return fmt.Errorf("job feed credentials are not configured for %s", env)
	}

	client := jobfeed.NewClient(&e.cfg.JobFeed, e.log)
	job, err := client.GetJob(cmd.Context(), jobID)
	if err != nil {
		return err
	}

	completed := "not completed"
	if job.CompletedOn != nil {
		completed = "completed " + job.CompletedOn.Format(time.RFC3339)
	}
	fmt.Printf("job %d (%s): %s, %s\n", job.ID, job.JobNumber, job.JobStatus, completed)
	return nil
}

func runOpen(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.cleanup()

	uc := ticketUC.NewMarkInProgressUseCase(e.ticketRepo, e.log)
	result, err := uc.Execute(cmd.Context(), ticketUC.MarkInProgressCommand{JobID: jobID})
	if err != nil {
		return err
	}

	fmt.Printf("ticket %d is now %s\n", result.TicketID, result.Status)
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.cleanup()

	debriefRepo := repository.NewDebriefRepository(database.Get())
	uc := ticketUC.NewResetTicketStatusUseCase(e.ticketRepo, debriefRepo, e.log)
	result, err := uc.Execute(cmd.Context(), ticketUC.ResetTicketStatusCommand{JobID: jobID})
	if err != nil {
		return err
	}

	fmt.Println(result.Message)
	return nil
}

func runQueue(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.cleanup()

	pending, err := e.ticketRepo.ListByStatus(cmd.Context(), vo.StatusPending)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		fmt.Println("no tickets waiting for a debrief")
		return nil
	}

	for _, t := range pending {
		snap := t.Snapshot()
		fmt.Printf("job %d  %-10s %-20s tech %s\n", t.JobID(), snap.JobNumber, snap.CustomerName, snap.TechName)
	}
	return nil
}
