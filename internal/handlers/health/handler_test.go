package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"rri/internal/handlers/health"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(_ context.Context) error {
	return p.err
}

func TestHealthHandler_Ping(t *testing.T) {
	tests := []struct {
		name         string
		pingErr      error
		expectedCode int
		expectedBody health.Status
	}{
		{
			name:         "database reachable",
			pingErr:      nil,
			expectedCode: http.StatusOK,
			expectedBody: health.Status{Status: "ok", DB: true},
		},
		{
			name:         "database unreachable",
			pingErr:      errors.New("connection refused"),
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: health.Status{Status: "degraded", DB: false},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler := health.New(&stubPinger{err: test.pingErr})

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()

			handler.Ping(rec, req)

			assert.Equal(t, test.expectedCode, rec.Code)

			var body health.Status
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, test.expectedBody, body)
		})
	}
}

func TestHealthHandler_DBFieldIsBoolean(t *testing.T) {
	handler := health.New(&stubPinger{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.Ping(rec, req)

	var raw map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, true, raw["db"])
}
