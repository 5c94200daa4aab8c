package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type remindHandler interface {
	Handle(ctx context.Context, cmd commands.SendPaymentRemindersCommand) (commands.ScanReport, error)
}

// PaymentReminderJob reminds sellers of unconfirmed payments on a cron
// schedule.
type PaymentReminderJob struct {
	handler   remindHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewPaymentReminderJob(handler remindHandler, schedule string, batchSize int, logger *slog.Logger) *PaymentReminderJob {
	return &PaymentReminderJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "payment_reminder_job"),
	}
}

func (j *PaymentReminderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reminder job started", "schedule", j.schedule)
	return nil
}

func (j *PaymentReminderJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewSendPaymentRemindersCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment reminder job misconfigured", "error", err)
		return
	}

	report, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment reminder scan failed", "error", err)
	}
	logReport(ctx, j.logger, report)
}

func (j *PaymentReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Payment reminder job stopped")
}
