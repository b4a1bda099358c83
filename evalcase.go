package roteiro

import "time"

// EvalCase is one raw script in an evaluation dataset, optionally paired
// with a previously obtained validation result.
type EvalCase struct {
	ID         string            `json:"id"`
	Raw        string            `json:"raw"`
	Validation *ValidationResult `json:"validation,omitempty"`
}

// AdaptationRecord is the persisted outcome of adapting one stage block,
// written by the CLI after a batch settles.
type AdaptationRecord struct {
	CaseID    string    `json:"case_id"`
	Stage     string    `json:"stage"`
	Original  string    `json:"original"`
	Adapted   string    `json:"adapted"`
	ToneNote  string    `json:"tone_note,omitempty"`
	AdaptedAt time.Time `json:"adapted_at"`
}

// CaseLoader loads evaluation cases from a source.
type CaseLoader interface {
	Load(path string) ([]EvalCase, error)
}

// RecordStore persists and retrieves adaptation records.
type RecordStore interface {
	Load(path string) ([]AdaptationRecord, error)
	Save(path string, records []AdaptationRecord) error
}
