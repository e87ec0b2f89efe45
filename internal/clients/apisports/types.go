package apisports

import "encoding/json"

// Envelope is the standard api-sports.io wrapper. Only the response array is
// unwrapped; its elements stay raw.
type Envelope struct {
	Response []json.RawMessage `json:"response"`
}
