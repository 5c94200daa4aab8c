package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEscalateHandler struct{ mock.Mock }

func (m *MockEscalateHandler) Handle(
	ctx context.Context,
	cmd commands.EscalateOverdueOrdersCommand,
) (commands.ScanReport, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ScanReport), args.Error(1)
}

type MockRemindHandler struct{ mock.Mock }

func (m *MockRemindHandler) Handle(
	ctx context.Context,
	cmd commands.SendPaymentRemindersCommand,
) (commands.ScanReport, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ScanReport), args.Error(1)
}

func TestEscalationJob_RunOnce_LogsReport(t *testing.T) {
	failed := kernel.NewUUID()
	handler := new(MockEscalateHandler)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.EscalateOverdueOrdersCommand) bool {
		return cmd.BatchSize() == 25
	})).Return(commands.ScanReport{
		Scanned:   4,
		Processed: 2,
		Skipped:   1,
		Failures:  []commands.OrderFailure{{OrderID: failed, Err: errors.New("connection reset")}},
	}, nil).Once()

	var buf bytes.Buffer
	job := jobs.NewEscalationJob(handler, "0 * * * * *", 25, slog.New(slog.NewTextHandler(&buf, nil)))
	job.RunOnce(context.Background())

	handler.AssertExpectations(t)
	out := buf.String()
	assert.Contains(t, out, "component=escalation_job")
	assert.Contains(t, out, "processed=2")
	assert.Contains(t, out, "skipped=1")
	assert.Contains(t, out, failed.String())
	assert.Contains(t, out, "connection reset")
}

func TestEscalationJob_RunOnce_InvalidBatchSize(t *testing.T) {
	handler := new(MockEscalateHandler)
	var buf bytes.Buffer

	jobs.NewEscalationJob(handler, "0 * * * * *", 0, slog.New(slog.NewTextHandler(&buf, nil))).
		RunOnce(context.Background())

	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	assert.Contains(t, buf.String(), "misconfigured")
}

func TestPaymentReminderJob_RunOnce_ScanError(t *testing.T) {
	handler := new(MockRemindHandler)
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(commands.ScanReport{}, errors.New("store unavailable")).Once()
	var buf bytes.Buffer

	jobs.NewPaymentReminderJob(handler, "0 */5 * * * *", 10, slog.New(slog.NewTextHandler(&buf, nil))).
		RunOnce(context.Background())

	assert.Contains(t, buf.String(), "store unavailable")
}

func TestJobManager_StartAll_InvalidScheduleStartsNothing(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	escalation := jobs.NewEscalationJob(new(MockEscalateHandler), "0 * * * * *", 10, logger)
	reminder := jobs.NewPaymentReminderJob(new(MockRemindHandler), "not a schedule", 10, logger)

	err := jobs.NewJobManager(escalation, reminder).StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment reminder")
}

func TestJobManager_StartAndStop(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	manager := jobs.NewJobManager(
		jobs.NewEscalationJob(new(MockEscalateHandler), "0 0 0 1 1 *", 10, logger),
		jobs.NewPaymentReminderJob(new(MockRemindHandler), "0 0 0 1 1 *", 10, logger),
	)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
