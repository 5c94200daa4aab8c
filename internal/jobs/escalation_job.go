package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type escalateHandler interface {
	Handle(ctx context.Context, cmd commands.EscalateOverdueOrdersCommand) (commands.ScanReport, error)
}

// EscalationJob disputes overdue orders on a cron schedule.
type EscalationJob struct {
	handler   escalateHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewEscalationJob(handler escalateHandler, schedule string, batchSize int, logger *slog.Logger) *EscalationJob {
	return &EscalationJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "escalation_job"),
	}
}

func (j *EscalationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Escalation job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single scan. Overlapping runs are harmless: every write
// is conditional on the version that was read.
func (j *EscalationJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewEscalateOverdueOrdersCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Escalation job misconfigured", "error", err)
		return
	}

	report, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Escalation scan failed", "error", err)
	}
	logReport(ctx, j.logger, report)
}

// Stop waits for a running scan to finish.
func (j *EscalationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Escalation job stopped")
}

func logReport(ctx context.Context, logger *slog.Logger, report commands.ScanReport) {
	for _, failure := range report.Failures {
		logger.ErrorContext(ctx, "Order not processed", "order_id", failure.OrderID.String(), "error", failure.Err)
	}
	if report.Scanned == 0 {
		return
	}
	logger.InfoContext(ctx, "Scan finished",
		"scanned", report.Scanned,
		"processed", report.Processed,
		"skipped", report.Skipped,
		"failed", len(report.Failures),
	)
}
