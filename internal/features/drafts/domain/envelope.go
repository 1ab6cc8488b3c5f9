package domain

import (
	"encoding/json"
	"time"
)

// SchemaVersion stamps stored drafts. Envelopes written under a different
// version are discarded on load instead of being fed to a newer wizard.
const SchemaVersion = 1

// Envelope wraps a stored wizard draft with the bookkeeping needed to
// expire it. The draft payload itself is opaque to this feature.
type Envelope struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"savedAt"`
	Draft   json.RawMessage `json:"draft"`
}

// NewEnvelope stamps a draft payload for storage.
func NewEnvelope(draft json.RawMessage, now time.Time) *Envelope {
	return &Envelope{
		Version: SchemaVersion,
		SavedAt: now.UTC(),
		Draft:   draft,
	}
}

// Stale reports whether the envelope must be discarded on load: wrong
// schema version, or older than the retention window. The age check is
// belt-and-braces on top of the store TTL.
func (e *Envelope) Stale(now time.Time, ttl time.Duration) bool {
	if e.Version != SchemaVersion {
		return true
	}
	return now.Sub(e.SavedAt) > ttl
}
