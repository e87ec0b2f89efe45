// Package footballdata implements the client for the football-data.org v4
// API (Provider A). Competitions are addressed by string codes ("PL", "PD")
// and every request authenticates with the X-Auth-Token header.
package footballdata

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

const providerName = "football-data"

// Client is an HTTP client for football-data.org.
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

// get performs an authenticated GET and returns the raw response body.
// Transport errors and non-2xx statuses become *apperr.UpstreamError.
func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	u := c.apiURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &apperr.UpstreamError{Provider: providerName, Err: err}
	}
	req.Header.Set("X-Auth-Token", c.apiKey)

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

// Team returns the raw team object for the given team id, squad included.
func (c *Client) Team(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, "/teams/"+url.PathEscape(id), nil)
}

// CompetitionTeams returns the teams of a competition for one season.
func (c *Client) CompetitionTeams(ctx context.Context, code string, season int) ([]json.RawMessage, error) {
	const op = "footballdata.CompetitionTeams"

	query := url.Values{"season": {strconv.Itoa(season)}}
	body, err := c.get(ctx, "/competitions/"+url.PathEscape(code)+"/teams", query)
	if err != nil {
		return nil, err
	}
	var envelope teamsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return envelope.Teams, nil
}

// Standings returns the raw standings payload of a competition.
func (c *Client) Standings(ctx context.Context, code string) (json.RawMessage, error) {
	return c.get(ctx, "/competitions/"+url.PathEscape(code)+"/standings", nil)
}

// ScorersBody returns the raw scorers payload of a competition.
func (c *Client) ScorersBody(ctx context.Context, code string) (json.RawMessage, error) {
	return c.get(ctx, "/competitions/"+url.PathEscape(code)+"/scorers", nil)
}

// Scorers returns only the scorers array of a competition.
func (c *Client) Scorers(ctx context.Context, code string) ([]json.RawMessage, error) {
	const op = "footballdata.Scorers"

	body, err := c.ScorersBody(ctx, code)
	if err != nil {
		return nil, err
	}
	var envelope scorersEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return envelope.Scorers, nil
}
