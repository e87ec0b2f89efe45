package squadplayer

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

	"github.com/matchpulse/matchpulse-backend/internal/apperr"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) SquadPlayer(ctx context.Context, teamID, playerID string) (json.RawMessage, error) {
	args := m.Called(ctx, teamID, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func TestSquadPlayerHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		teamID         string
		playerID       string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "player found",
			teamID:   "57",
			playerID: "3754",
			setupMock: func(m *MockService) {
				m.On("SquadPlayer", mock.Anything, "57", "3754").
					Return(json.RawMessage(`{"id":3754,"name":"Bukayo Saka"}`), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Bukayo Saka"`,
		},
		{
			name:     "player not in squad",
			teamID:   "57",
			playerID: "999",
			setupMock: func(m *MockService) {
				m.On("SquadPlayer", mock.Anything, "57", "999").
					Return(nil, apperr.ErrPlayerNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `Jugador no encontrado`,
		},
		{
			name:     "upstream failure",
			teamID:   "57",
			playerID: "3754",
			setupMock: func(m *MockService) {
				m.On("SquadPlayer", mock.Anything, "57", "3754").
					Return(nil, &apperr.UpstreamError{Provider: "football-data", StatusCode: 500})
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `Error al obtener los datos del jugador`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/player/"+tt.teamID+"/"+tt.playerID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("teamId", tt.teamID)
			rctx.URLParams.Add("playerId", tt.playerID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
