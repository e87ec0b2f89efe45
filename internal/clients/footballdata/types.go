package footballdata

import "encoding/json"

// teamsEnvelope is the wrapper around /competitions/{code}/teams. Elements
// stay raw; the gateway only ever inspects single fields of them.
type teamsEnvelope struct {
	Teams []json.RawMessage `json:"teams"`
}

// scorersEnvelope is the wrapper around /competitions/{code}/scorers.
type scorersEnvelope struct {
	Scorers []json.RawMessage `json:"scorers"`
}
