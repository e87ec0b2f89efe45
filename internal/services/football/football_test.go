package football

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/matchpulse/matchpulse-backend/internal/apperr"
	"github.com/matchpulse/matchpulse-backend/internal/models"
)

type MockFootballDataClient struct {
	mock.Mock
}

func (m *MockFootballDataClient) Team(ctx context.Context, id string) (json.RawMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockFootballDataClient) CompetitionTeams(ctx context.Context, code string, season int) ([]json.RawMessage, error) {
	args := m.Called(ctx, code, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

func (m *MockFootballDataClient) Standings(ctx context.Context, code string) (json.RawMessage, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockFootballDataClient) ScorersBody(ctx context.Context, code string) (json.RawMessage, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockFootballDataClient) Scorers(ctx context.Context, code string) ([]json.RawMessage, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

type MockAPISportsClient struct {
	mock.Mock
}

func (m *MockAPISportsClient) Teams(ctx context.Context, league, season int) ([]json.RawMessage, error) {
	args := m.Called(ctx, league, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

func (m *MockAPISportsClient) TopScorers(ctx context.Context, league, season int) ([]json.RawMessage, error) {
	args := m.Called(ctx, league, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

func (m *MockAPISportsClient) Players(ctx context.Context, id string, season int) ([]json.RawMessage, error) {
	args := m.Called(ctx, id, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

func (m *MockAPISportsClient) NextFixtures(ctx context.Context, count int) ([]json.RawMessage, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

func (m *MockAPISportsClient) LiveMatches(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockAPISportsClient) FixtureStatistics(ctx context.Context, fixtureID string) (json.RawMessage, error) {
	args := m.Called(ctx, fixtureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockAPISportsClient) FixtureEvents(ctx context.Context, fixtureID string) (json.RawMessage, error) {
	args := m.Called(ctx, fixtureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockAPISportsClient) FixtureLineups(ctx context.Context, fixtureID string) (json.RawMessage, error) {
	args := m.Called(ctx, fixtureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func rawTeam(name string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"id":1,"name":%q}`, name))
}

func TestService_SearchTeams(t *testing.T) {
	ctx := context.Background()

	t.Run("case-insensitive substring match across leagues", func(t *testing.T) {
		fd := new(MockFootballDataClient)
		fd.On("CompetitionTeams", mock.Anything, "PL", 2024).
			Return([]json.RawMessage{rawTeam("Manchester United FC"), rawTeam("Arsenal FC")}, nil).Once()
		fd.On("CompetitionTeams", mock.Anything, "PD", 2024).
			Return([]json.RawMessage{rawTeam("Real Madrid CF")}, nil).Once()
		fd.On("CompetitionTeams", mock.Anything, "SA", 2024).
			Return([]json.RawMessage{rawTeam("AC Milan")}, nil).Once()
		fd.On("CompetitionTeams", mock.Anything, "BL1", 2024).
			Return([]json.RawMessage{}, nil).Once()
		fd.On("CompetitionTeams", mock.Anything, "FL1", 2024).
			Return([]json.RawMessage{rawTeam("Real Club")}, nil).Once()

		svc := New(fd, new(MockAPISportsClient))

		got, err := svc.SearchTeams(ctx, "REAL")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.JSONEq(t, string(rawTeam("Real Madrid CF")), string(got[0]))
		assert.JSONEq(t, string(rawTeam("Real Club")), string(got[1]))
		fd.AssertExpectations(t)
	})

	t.Run("caps results at 20", func(t *testing.T) {
		many := make([]json.RawMessage, 30)
		for i := range many {
			many[i] = rawTeam(fmt.Sprintf("United %d", i))
		}
		fd := new(MockFootballDataClient)
		fd.On("CompetitionTeams", mock.Anything, mock.Anything, 2024).Return(many, nil)

		svc := New(fd, new(MockAPISportsClient))

		got, err := svc.SearchTeams(ctx, "united")
		require.NoError(t, err)
		assert.Len(t, got, 20)
	})

	t.Run("upstream failure fails the whole search", func(t *testing.T) {
		fd := new(MockFootballDataClient)
		upErr := &apperr.UpstreamError{Provider: "football-data", StatusCode: 403}
		fd.On("CompetitionTeams", mock.Anything, mock.Anything, 2024).
			Return(nil, upErr)

		svc := New(fd, new(MockAPISportsClient))

		_, err := svc.SearchTeams(ctx, "arsenal")
		require.Error(t, err)
	})
}

func TestService_SearchTeamsAPISports(t *testing.T) {
	fd := new(MockFootballDataClient)
	api := new(MockAPISportsClient)

	entry := json.RawMessage(`{"team":{"id":33,"name":"Manchester United"},"venue":{"id":556}}`)
	other := json.RawMessage(`{"team":{"id":42,"name":"Arsenal"},"venue":{"id":494}}`)

	for _, league := range models.Leagues {
		if league.ID == 39 {
			api.On("Teams", mock.Anything, 39, 2023).
				Return([]json.RawMessage{entry, other}, nil).Once()
			continue
		}
		api.On("Teams", mock.Anything, league.ID, 2023).
			Return([]json.RawMessage{}, nil).Once()
	}

	svc := New(fd, api)

	got, err := svc.SearchTeamsAPISports(context.Background(), "united")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.JSONEq(t, string(entry), string(got[0]))
	api.AssertExpectations(t)
}

func TestService_SquadPlayer(t *testing.T) {
	ctx := context.Background()

	teamBody := json.RawMessage(`{
		"id": 57,
		"name": "Arsenal FC",
		"squad": [
			{"id": 1138, "name": "Kai Havertz", "position": "Midfield"},
			{"id": 3754, "name": "Bukayo Saka", "position": "Right Winger"}
		]
	}`)

	t.Run("found", func(t *testing.T) {
		fd := new(MockFootballDataClient)
		fd.On("Team", ctx, "57").Return(teamBody, nil).Once()

		svc := New(fd, new(MockAPISportsClient))

		got, err := svc.SquadPlayer(ctx, "57", "3754")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id": 3754, "name": "Bukayo Saka", "position": "Right Winger"}`, string(got))
	})

	t.Run("not in squad", func(t *testing.T) {
		fd := new(MockFootballDataClient)
		fd.On("Team", ctx, "57").Return(teamBody, nil).Once()

		svc := New(fd, new(MockAPISportsClient))

		_, err := svc.SquadPlayer(ctx, "57", "99999")
		require.ErrorIs(t, err, apperr.ErrPlayerNotFound)
	})
}

func TestService_ScorersAll(t *testing.T) {
	fd := new(MockFootballDataClient)

	// Answers arrive out of order; the result must still follow the fixed
	// competition order.
	delays := map[string]time.Duration{
		"PL": 50 * time.Millisecond,
		"PD": 10 * time.Millisecond,
		"SA": 40 * time.Millisecond,
		"BL1": 0,
		"FL1": 20 * time.Millisecond,
	}
	for _, comp := range models.Competitions {
		comp := comp
		fd.On("Scorers", mock.Anything, comp.Code).
			Run(func(_ mock.Arguments) { time.Sleep(delays[comp.Code]) }).
			Return([]json.RawMessage{json.RawMessage(fmt.Sprintf(`{"league":%q}`, comp.Code))}, nil).Once()
	}

	svc := New(fd, new(MockAPISportsClient))

	got, err := svc.ScorersAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(models.Competitions))
	for i, comp := range models.Competitions {
		assert.Equal(t, comp.Code, got[i].League)
		assert.Equal(t, comp.Name, got[i].LeagueName)
		require.Len(t, got[i].Scorers, 1)
	}
	fd.AssertExpectations(t)
}

func TestService_ScorersAll_FailFast(t *testing.T) {
	fd := new(MockFootballDataClient)

	upErr := &apperr.UpstreamError{Provider: "football-data", StatusCode: 429}
	fd.On("Scorers", mock.Anything, "PL").Return(nil, upErr).Once()
	fd.On("Scorers", mock.Anything, mock.Anything).
		Return([]json.RawMessage{}, nil).Maybe()

	svc := New(fd, new(MockAPISportsClient))

	_, err := svc.ScorersAll(context.Background())
	require.Error(t, err)

	var ue *apperr.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 429, ue.StatusCode)
}

func TestService_TopScorersAll(t *testing.T) {
	api := new(MockAPISportsClient)

	for _, league := range models.Leagues {
		league := league
		api.On("TopScorers", mock.Anything, league.ID, 2023).
			Return([]json.RawMessage{json.RawMessage(fmt.Sprintf(`{"leagueId":%d}`, league.ID))}, nil).Once()
	}

	svc := New(new(MockFootballDataClient), api)

	got, err := svc.TopScorersAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(models.Leagues))
	for i, league := range models.Leagues {
		assert.Equal(t, league.Name, got[i].League)
		assert.Equal(t, league.ID, got[i].LeagueID)
	}
	api.AssertExpectations(t)
}

func TestService_PlayerByID(t *testing.T) {
	ctx := context.Background()

	t.Run("first entry wins", func(t *testing.T) {
		api := new(MockAPISportsClient)
		entry := json.RawMessage(`{"player":{"id":154,"name":"L. Messi"}}`)
		api.On("Players", ctx, "154", 2024).
			Return([]json.RawMessage{entry, json.RawMessage(`{"player":{"id":155}}`)}, nil).Once()

		svc := New(new(MockFootballDataClient), api)

		got, err := svc.PlayerByID(ctx, "154")
		require.NoError(t, err)
		assert.JSONEq(t, string(entry), string(got))
	})

	t.Run("empty response array means not found", func(t *testing.T) {
		api := new(MockAPISportsClient)
		api.On("Players", ctx, "0", 2024).Return([]json.RawMessage{}, nil).Once()

		svc := New(new(MockFootballDataClient), api)

		_, err := svc.PlayerByID(ctx, "0")
		require.ErrorIs(t, err, apperr.ErrPlayerNotFound)
	})
}

func TestService_Passthroughs(t *testing.T) {
	ctx := context.Background()

	fd := new(MockFootballDataClient)
	api := new(MockAPISportsClient)

	fd.On("Standings", ctx, "PL").Return(json.RawMessage(`{"standings":[]}`), nil).Once()
	fd.On("ScorersBody", ctx, "PD").Return(json.RawMessage(`{"scorers":[]}`), nil).Once()
	api.On("LiveMatches", ctx).Return(json.RawMessage(`{"response":[]}`), nil).Once()
	api.On("FixtureEvents", ctx, "215662").Return(json.RawMessage(`{"response":[]}`), nil).Once()

	svc := New(fd, api)

	standings, err := svc.Standings(ctx, "PL")
	require.NoError(t, err)
	assert.JSONEq(t, `{"standings":[]}`, string(standings))

	scorers, err := svc.TopScorers(ctx, "PD")
	require.NoError(t, err)
	assert.JSONEq(t, `{"scorers":[]}`, string(scorers))

	live, err := svc.LiveMatches(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"response":[]}`, string(live))

	events, err := svc.MatchEvents(ctx, "215662")
	require.NoError(t, err)
	assert.JSONEq(t, `{"response":[]}`, string(events))
}

func TestService_SearchTeams_TransportError(t *testing.T) {
	fd := new(MockFootballDataClient)
	fd.On("CompetitionTeams", mock.Anything, mock.Anything, 2024).
		Return(nil, errors.New("dial tcp: connection refused"))

	svc := New(fd, new(MockAPISportsClient))

	_, err := svc.SearchTeams(context.Background(), "city")
	require.Error(t, err)
}
