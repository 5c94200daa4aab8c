package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discardNotifier struct{}

func (discardNotifier) Notify(context.Context, ports.Notification) error { return nil }

func newTestRoot() CompositionRoot {
	configs := Config{
		FeePercent:          decimal.NewFromInt(5),
		EscalationSchedule:  "0 * * * * *",
		ReminderSchedule:    "30 */5 * * * *",
		EscalationBatchSize: 10,
	}
	return NewCompositionRoot(configs, nil, discardNotifier{}, slog.New(slog.DiscardHandler))
}

func TestCompositionRoot_ServesRoutes(t *testing.T) {
	root := newTestRoot()
	e := echo.New()
	root.CreateServer().RegisterRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, e.Routes())
}

func TestCompositionRoot_UoWFactoriesCreateFreshUnits(t *testing.T) {
	root := newTestRoot()

	orderUoW := root.orderUoWFactory().Create()
	reviewUoW := root.reviewUoWFactory().Create()

	require.NotNil(t, orderUoW)
	require.NotNil(t, reviewUoW)
	assert.NotSame(t, orderUoW, reviewUoW)
}

func TestCompositionRoot_CreateJobManager(t *testing.T) {
	root := newTestRoot()

	assert.NotNil(t, root.CreateJobManager())
}

func TestCompositionRoot_CloseDrainsDispatcher(t *testing.T) {
	root := newTestRoot()

	require.NoError(t, root.Close(context.Background()))
	assert.NoError(t, root.Close(context.Background()))
}
