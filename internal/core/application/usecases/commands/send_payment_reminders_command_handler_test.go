package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPaymentRemindersCommandHandler_Handle(t *testing.T) {
	cmd, err := commands.NewSendPaymentRemindersCommand(commands.DefaultScanBatchSize)
	require.NoError(t, err)
	now := t0.Add(7 * time.Hour)
	cutoff := now.Add(-order.ReminderDelay)

	t.Run("should remind sellers once", func(t *testing.T) {
		ctx := t.Context()
		m := newScanMocks(ctx)
		due := orderIn(t, order.ProofSent)
		reminded := orderIn(t, order.ProofSent)
		require.NoError(t, reminded.SendPaymentReminder(t0.Add(6*time.Hour)))
		reminded.PullEvents()
		m.repo.On("GetDueForReminder", ctx, cutoff, commands.DefaultScanBatchSize).
			Return([]*order.Order{due, reminded}, nil).Once()
		m.repo.On("Update", ctx, due).Return(nil).Once()

		h := commands.NewSendPaymentRemindersCommandHandler(m.factory, clock.NewFixed(now), m.dispatcher)
		report, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, commands.ScanReport{Scanned: 2, Processed: 1, Skipped: 1}, report)
		assert.Equal(t, order.ProofSent, due.Status())
		require.NotNil(t, due.ReminderSentAt())
		assert.Equal(t, now, *due.ReminderSentAt())
		assert.Equal(t, t0.Add(6*time.Hour), *reminded.ReminderSentAt())
		m.repo.AssertNumberOfCalls(t, "Update", 1)
	})

	t.Run("should leave confirmed orders alone", func(t *testing.T) {
		ctx := t.Context()
		m := newScanMocks(ctx)
		confirmed := orderIn(t, order.Confirmed)
		m.repo.On("GetDueForReminder", ctx, cutoff, commands.DefaultScanBatchSize).
			Return([]*order.Order{confirmed}, nil).Once()

		h := commands.NewSendPaymentRemindersCommandHandler(m.factory, clock.NewFixed(now), m.dispatcher)
		report, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, report.Skipped)
		assert.Nil(t, confirmed.ReminderSentAt())
	})
}
