package fixtures

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) NextFixtures(ctx context.Context, count int) ([]json.RawMessage, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

func TestFixturesHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name          string
		countParam    string
		expectedCount int
	}{
		{name: "explicit count", countParam: "5", expectedCount: 5},
		{name: "garbage count falls back to 10", countParam: "abc", expectedCount: 10},
		{name: "negative count falls back to 10", countParam: "-3", expectedCount: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			mockService.On("NextFixtures", mock.Anything, tt.expectedCount).
				Return([]json.RawMessage{json.RawMessage(`{"fixture":{"id":1}}`)}, nil)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/fixtures/next/"+tt.countParam, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("count", tt.countParam)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), `"fixtures":[`),
				"response body should contain fixtures array, got %s", w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
