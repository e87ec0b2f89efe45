package models

import "encoding/json"

// Competition identifies a league in the football-data.org catalogue.
type Competition struct {
	Code string // e.g. "PL"
	Name string // display name
}

// League identifies a league in the api-sports.io catalogue. The two ID
// spaces are independent and not convertible.
type League struct {
	ID   int
	Name string
}

// Competitions is the fixed football-data.org iteration order for fan-outs.
var Competitions = []Competition{
	{Code: "PL", Name: "Premier League"},
	{Code: "PD", Name: "La Liga"},
	{Code: "SA", Name: "Serie A"},
	{Code: "BL1", Name: "Bundesliga"},
	{Code: "FL1", Name: "Ligue 1"},
}

// Leagues is the fixed api-sports.io iteration order for fan-outs.
var Leagues = []League{
	{ID: 39, Name: "Premier League"},
	{ID: 140, Name: "La Liga"},
	{ID: 78, Name: "Bundesliga"},
	{ID: 135, Name: "Serie A"},
	{ID: 61, Name: "Ligue 1"},
}

// CompetitionScorers is one element of the /api/scorers aggregate.
type CompetitionScorers struct {
	League     string            `json:"league"`
	LeagueName string            `json:"leagueName"`
	Scorers    []json.RawMessage `json:"scorers"`
}

// LeagueTopScorers is one element of the /api/topscorers/all aggregate.
type LeagueTopScorers struct {
	League   string            `json:"league"`
	LeagueID int               `json:"leagueId"`
	Scorers  []json.RawMessage `json:"scorers"`
}
