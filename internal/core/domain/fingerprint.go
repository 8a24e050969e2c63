package domain

import "time"

// Fingerprint is the recorded state of one tracked file.
type Fingerprint struct {
	Path    string `json:"path"`
	Size    int64  `json:"size"`
	ModTime int64  `json:"mtime"`
	Hash    string `json:"hash"`
}

// Matches reports whether two fingerprints describe the same file state.
func (f Fingerprint) Matches(other Fingerprint) bool {
	return f == other
}

// FingerprintRecord holds the fingerprints recorded for one output target, keyed by cache label.
type FingerprintRecord struct {
	Target    string                 `json:"target"`
	Entries   map[string]Fingerprint `json:"entries,omitempty"`
	Timestamp time.Time              `json:"timestamp,omitzero"`
}
