package domain

import (
	"encoding/json"
	"time"
)

// Artifact is one recorded generator call: what was asked and what the
// model produced.
type Artifact struct {
	ID        string          `json:"id"`
	Framework Framework       `json:"framework"`
	Kind      string          `json:"kind"`
	Input     json.RawMessage `json:"input"`
	Output    json.RawMessage `json:"output"`
	Model     string          `json:"model,omitempty"`
	// KitID groups the artifacts produced by one launch kit run.
	KitID     string    `json:"kit_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Decode unmarshals the artifact output into v.
func (a *Artifact) Decode(v any) error {
	return json.Unmarshal(a.Output, v)
}
