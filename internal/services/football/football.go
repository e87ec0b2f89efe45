// Package football aggregates the two upstream football providers behind one
// service. Multi-league endpoints fan out one request per league and fail
// fast on the first upstream error.
package football

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/matchpulse/matchpulse-backend/internal/apperr"
	"github.com/matchpulse/matchpulse-backend/internal/models"
)

// Seasons the upstream plans expose. The free api-sports.io tier lags one
// season behind football-data.org for league-level queries.
const (
	footballDataSeason    = 2024
	apiSportsTeamsSeason  = 2023
	apiSportsPlayerSeason = 2024
)

const maxSearchResults = 20

// FootballDataClient is the contract against the football-data.org client.
type FootballDataClient interface {
	Team(ctx context.Context, id string) (json.RawMessage, error)
	CompetitionTeams(ctx context.Context, code string, season int) ([]json.RawMessage, error)
	Standings(ctx context.Context, code string) (json.RawMessage, error)
	ScorersBody(ctx context.Context, code string) (json.RawMessage, error)
	Scorers(ctx context.Context, code string) ([]json.RawMessage, error)
}

// APISportsClient is the contract against the api-sports.io client.
type APISportsClient interface {
	Teams(ctx context.Context, league, season int) ([]json.RawMessage, error)
	TopScorers(ctx context.Context, league, season int) ([]json.RawMessage, error)
	Players(ctx context.Context, id string, season int) ([]json.RawMessage, error)
	NextFixtures(ctx context.Context, count int) ([]json.RawMessage, error)
	LiveMatches(ctx context.Context) (json.RawMessage, error)
	FixtureStatistics(ctx context.Context, fixtureID string) (json.RawMessage, error)
	FixtureEvents(ctx context.Context, fixtureID string) (json.RawMessage, error)
	FixtureLineups(ctx context.Context, fixtureID string) (json.RawMessage, error)
}

// Service exposes the aggregated football data operations.
type Service struct {
	footballData FootballDataClient
	apiSports    APISportsClient
}

// New creates a football Service over the two provider clients.
func New(footballData FootballDataClient, apiSports APISportsClient) *Service {
	return &Service{
		footballData: footballData,
		apiSports:    apiSports,
	}
}

// Team returns the raw football-data.org team object, squad included.
func (s *Service) Team(ctx context.Context, id string) (json.RawMessage, error) {
	return s.footballData.Team(ctx, id)
}

// namedEntry is the minimal shape team search decodes: a top-level name for
// football-data.org entries.
type namedEntry struct {
	Name string `json:"name"`
}

// nestedTeamEntry is the api-sports.io variant, where the name sits under a
// "team" object.
type nestedTeamEntry struct {
	Team namedEntry `json:"team"`
}

// SearchTeams searches the five football-data.org competitions for teams
// whose name contains query (case-insensitive). At most 20 entries are
// returned, ordered by the fixed competition order.
func (s *Service) SearchTeams(ctx context.Context, query string) ([]json.RawMessage, error) {
	const op = "football.SearchTeams"

	perLeague := make([][]json.RawMessage, len(models.Competitions))
	g, gctx := errgroup.WithContext(ctx)
	for i, comp := range models.Competitions {
		g.Go(func() error {
			teams, err := s.footballData.CompetitionTeams(gctx, comp.Code, footballDataSeason)
			if err != nil {
				return err
			}
			perLeague[i] = teams
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := make([]json.RawMessage, 0, maxSearchResults)
	for _, teams := range perLeague {
		for _, raw := range teams {
			var entry namedEntry
			if err := json.Unmarshal(raw, &entry); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			if strings.Contains(strings.ToLower(entry.Name), needle) {
				matches = append(matches, raw)
				if len(matches) == maxSearchResults {
					return matches, nil
				}
			}
		}
	}
	return matches, nil
}

// SearchTeamsAPISports searches the five api-sports.io leagues for teams
// whose name contains query (case-insensitive). Same cap and ordering rules
// as SearchTeams, against the other provider's catalogue.
func (s *Service) SearchTeamsAPISports(ctx context.Context, query string) ([]json.RawMessage, error) {
	const op = "football.SearchTeamsAPISports"

	perLeague := make([][]json.RawMessage, len(models.Leagues))
	g, gctx := errgroup.WithContext(ctx)
	for i, league := range models.Leagues {
		g.Go(func() error {
			teams, err := s.apiSports.Teams(gctx, league.ID, apiSportsTeamsSeason)
			if err != nil {
				return err
			}
			perLeague[i] = teams
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := make([]json.RawMessage, 0, maxSearchResults)
	for _, teams := range perLeague {
		for _, raw := range teams {
			var entry nestedTeamEntry
			if err := json.Unmarshal(raw, &entry); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			if strings.Contains(strings.ToLower(entry.Team.Name), needle) {
				matches = append(matches, raw)
				if len(matches) == maxSearchResults {
					return matches, nil
				}
			}
		}
	}
	return matches, nil
}

// SquadPlayer returns the squad member with the given player id from a
// football-data.org team. ErrPlayerNotFound when the squad has no such id.
func (s *Service) SquadPlayer(ctx context.Context, teamID, playerID string) (json.RawMessage, error) {
	const op = "football.SquadPlayer"

	body, err := s.footballData.Team(ctx, teamID)
	if err != nil {
		return nil, err
	}

	var team struct {
		Squad []json.RawMessage `json:"squad"`
	}
	if err := json.Unmarshal(body, &team); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, raw := range team.Squad {
		var member struct {
			ID json.Number `json:"id"`
		}
		if err := json.Unmarshal(raw, &member); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if member.ID.String() == playerID {
			return raw, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, apperr.ErrPlayerNotFound)
}

// Standings returns the raw standings payload of one competition.
func (s *Service) Standings(ctx context.Context, code string) (json.RawMessage, error) {
	return s.footballData.Standings(ctx, code)
}

// TopScorers returns the raw scorers payload of one competition.
func (s *Service) TopScorers(ctx context.Context, code string) (json.RawMessage, error) {
	return s.footballData.ScorersBody(ctx, code)
}

// ScorersAll fans out one scorers request per competition and returns the
// results in the fixed competition order, independent of completion order.
func (s *Service) ScorersAll(ctx context.Context) ([]models.CompetitionScorers, error) {
	out := make([]models.CompetitionScorers, len(models.Competitions))
	g, gctx := errgroup.WithContext(ctx)
	for i, comp := range models.Competitions {
		g.Go(func() error {
			scorers, err := s.footballData.Scorers(gctx, comp.Code)
			if err != nil {
				return err
			}
			out[i] = models.CompetitionScorers{
				League:     comp.Code,
				LeagueName: comp.Name,
				Scorers:    scorers,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// TopScorersAll fans out one top-scorers request per api-sports.io league
// and returns the results in the fixed league order.
func (s *Service) TopScorersAll(ctx context.Context) ([]models.LeagueTopScorers, error) {
	out := make([]models.LeagueTopScorers, len(models.Leagues))
	g, gctx := errgroup.WithContext(ctx)
	for i, league := range models.Leagues {
		g.Go(func() error {
			scorers, err := s.apiSports.TopScorers(gctx, league.ID, apiSportsTeamsSeason)
			if err != nil {
				return err
			}
			out[i] = models.LeagueTopScorers{
				League:   league.Name,
				LeagueID: league.ID,
				Scorers:  scorers,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// NextFixtures returns the next count fixtures across all leagues.
func (s *Service) NextFixtures(ctx context.Context, count int) ([]json.RawMessage, error) {
	return s.apiSports.NextFixtures(ctx, count)
}

// PlayerByID returns the api-sports.io player entry with the given id.
// ErrPlayerNotFound when the provider returns an empty response array.
func (s *Service) PlayerByID(ctx context.Context, id string) (json.RawMessage, error) {
	const op = "football.PlayerByID"

	players, err := s.apiSports.Players(ctx, id, apiSportsPlayerSeason)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrPlayerNotFound)
	}
	return players[0], nil
}

// LiveMatches returns the raw live fixtures feed.
func (s *Service) LiveMatches(ctx context.Context) (json.RawMessage, error) {
	return s.apiSports.LiveMatches(ctx)
}

// MatchStatistics returns the raw statistics payload of a fixture.
func (s *Service) MatchStatistics(ctx context.Context, fixtureID string) (json.RawMessage, error) {
	return s.apiSports.FixtureStatistics(ctx, fixtureID)
}

// MatchEvents returns the raw events payload of a fixture.
func (s *Service) MatchEvents(ctx context.Context, fixtureID string) (json.RawMessage, error) {
	return s.apiSports.FixtureEvents(ctx, fixtureID)
}

// MatchLineups returns the raw lineups payload of a fixture.
func (s *Service) MatchLineups(ctx context.Context, fixtureID string) (json.RawMessage, error) {
	return s.apiSports.FixtureLineups(ctx, fixtureID)
}
