// Package apisports implements the client for the api-sports.io v3 football
// API (Provider B). Leagues are addressed by numeric IDs and every request
// authenticates with the x-apisports-key header. Responses wrap their payload
// in a "response" array.
package apisports

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/matchpulse/matchpulse-backend/internal/apperr"
)

const providerName = "api-sports"

// Client is an HTTP client for api-sports.io.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL and API key.
func NewClient(apiURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	u := c.apiURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &apperr.UpstreamError{Provider: providerName, Err: err}
	}
	req.Header.Set("x-apisports-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperr.UpstreamError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperr.UpstreamError{Provider: providerName, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apperr.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}
	return body, nil
}

// getResponse performs a GET and unwraps the "response" array.
func (c *Client) getResponse(ctx context.Context, op, path string, query url.Values) ([]json.RawMessage, error) {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return envelope.Response, nil
}

// Teams returns the team entries of a league for one season.
func (c *Client) Teams(ctx context.Context, league, season int) ([]json.RawMessage, error) {
	const op = "apisports.Teams"
	query := url.Values{
		"league": {strconv.Itoa(league)},
		"season": {strconv.Itoa(season)},
	}
	return c.getResponse(ctx, op, "/teams", query)
}

// TopScorers returns the top scorers of a league for one season.
func (c *Client) TopScorers(ctx context.Context, league, season int) ([]json.RawMessage, error) {
	const op = "apisports.TopScorers"
	query := url.Values{
		"league": {strconv.Itoa(league)},
		"season": {strconv.Itoa(season)},
	}
	return c.getResponse(ctx, op, "/players/topscorers", query)
}

// Players returns the player entries matching an id for one season. The id
// is forwarded as-is; an unknown id simply yields an empty response array.
func (c *Client) Players(ctx context.Context, id string, season int) ([]json.RawMessage, error) {
	const op = "apisports.Players"
	query := url.Values{
		"id":     {id},
		"season": {strconv.Itoa(season)},
	}
	return c.getResponse(ctx, op, "/players", query)
}

// NextFixtures returns the next count fixtures across all leagues.
func (c *Client) NextFixtures(ctx context.Context, count int) ([]json.RawMessage, error) {
	const op = "apisports.NextFixtures"
	query := url.Values{"next": {strconv.Itoa(count)}}
	return c.getResponse(ctx, op, "/fixtures", query)
}

// LiveMatches returns the raw body of the live fixtures feed.
func (c *Client) LiveMatches(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/fixtures", url.Values{"live": {"all"}})
}

// FixtureStatistics returns the raw statistics payload of a fixture.
func (c *Client) FixtureStatistics(ctx context.Context, fixtureID string) (json.RawMessage, error) {
	return c.get(ctx, "/fixtures/statistics", url.Values{"fixture": {fixtureID}})
}

// FixtureEvents returns the raw events payload of a fixture.
func (c *Client) FixtureEvents(ctx context.Context, fixtureID string) (json.RawMessage, error) {
	return c.get(ctx, "/fixtures/events", url.Values{"fixture": {fixtureID}})
}

// FixtureLineups returns the raw lineups payload of a fixture.
func (c *Client) FixtureLineups(ctx context.Context, fixtureID string) (json.RawMessage, error) {
	return c.get(ctx, "/fixtures/lineups", url.Values{"fixture": {fixtureID}})
}
