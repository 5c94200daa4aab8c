package http_test

import (
	"context"
	"net/http"
	"testing"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newValidatedServer(t *testing.T) (*echo.Echo, handlerMocks) {
	t.Helper()
	e, m := newTestServer()

	doc, err := httpadapter.LoadOpenAPI(context.Background())
	require.NoError(t, err)
	validator, err := httpadapter.RequestValidator(doc)
	require.NoError(t, err)
	e.Use(validator)

	return e, m
}

func TestLoadOpenAPI_DescribesEveryRoute(t *testing.T) {
	doc, err := httpadapter.LoadOpenAPI(context.Background())
	require.NoError(t, err)

	for _, path := range []string{
		"/api/v1/orders",
		"/api/v1/orders/{id}",
		"/api/v1/orders/{id}/proof",
		"/api/v1/orders/{id}/confirm-receipt",
		"/api/v1/orders/{id}/confirm-delivery",
		"/api/v1/orders/{id}/cancel",
		"/api/v1/orders/{id}/dispute",
		"/api/v1/orders/{id}/reviews",
		"/api/v1/users/{id}/rating",
		"/api/v1/users/{id}/reviews",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestRequestValidator_Rejects(t *testing.T) {
	orderID := kernel.NewUUID().String()

	tests := map[string]struct {
		method string
		target string
		caller string
		body   string
	}{
		"missing caller header": {
			method: http.MethodPost,
			target: "/api/v1/orders/" + orderID + "/cancel",
		},
		"empty transaction ref": {
			method: http.MethodPost,
			target: "/api/v1/orders/" + orderID + "/proof",
			caller: "buyer-1",
			body:   `{"screenshot_ref": "img://proof", "transaction_ref": ""}`,
		},
		"review without rating": {
			method: http.MethodPost,
			target: "/api/v1/orders/" + orderID + "/reviews",
			caller: "buyer-1",
			body:   `{"comment": "ok"}`,
		},
		"unknown role": {
			method: http.MethodGet,
			target: "/api/v1/orders?role=courier",
			caller: "buyer-1",
		},
		"order id is not a uuid": {
			method: http.MethodGet,
			target: "/api/v1/orders/42",
			caller: "buyer-1",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e, _ := newValidatedServer(t)

			rec := do(e, tt.method, tt.target, tt.caller, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
		})
	}
}

func TestRequestValidator_PassesValidRequest(t *testing.T) {
	e, m := newValidatedServer(t)
	m.submitProof.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	rec := do(e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/proof", "buyer-1",
		`{"screenshot_ref": "img://proof", "transaction_ref": "TX-1"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	m.submitProof.AssertExpectations(t)
}

func TestRequestValidator_IgnoresUndescribedPaths(t *testing.T) {
	e, _ := newValidatedServer(t)

	rec := do(e, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterDocs_ServesDocument(t *testing.T) {
	e := echo.New()
	httpadapter.RegisterDocs(e)

	rec := do(e, http.MethodGet, "/api/v1/openapi.yaml", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
}
