package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// One failing checker flips the aggregate to unhealthy and 503 while
// the healthy checks keep reporting individually.
func TestHealthHandlerAggregatesCheckers(t *testing.T) {
	checkers := map[string]HealthChecker{
		"storage":  HealthCheckerFunc(func(ctx context.Context) error { return nil }),
		"database": HealthCheckerFunc(func(ctx context.Context) error { return errors.New("connection refused") }),
	}

	rec := httptest.NewRecorder()
	HealthHandler(checkers)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.Equal(t, "unhealthy", status.Status)
	require.Equal(t, "healthy", status.Checks["storage"].Status)
	require.Equal(t, "connection refused", status.Checks["database"].Message)
}

func TestHealthHandlerNoCheckers(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthHandler(nil)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
