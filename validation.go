package roteiro

import (
	"sync"

	"go.uber.org/zap"
)

// ValidationResult is the four-criterion quality score an external scoring
// collaborator produces for a script. All scores live in [0, 10]. It is a
// value object: the engine interprets it but never computes it.
type ValidationResult struct {
	Hook        float64 `json:"hook"`
	Clarity     float64 `json:"clarity"`
	CTA         float64 `json:"cta"`
	Emotion     float64 `json:"emotion"`
	Total       float64 `json:"total"`
	Suggestions string  `json:"suggestions,omitempty"`
}

// ScoreFor returns the criterion score that drives the given stage: the
// hook criterion scores the identification block, clarity the conflict,
// emotional connection the turn, and call-to-action the ending.
func (v ValidationResult) ScoreFor(stage Stage) float64 {
	switch stage {
	case StageIdentification:
		return v.Hook
	case StageConflict:
		return v.Clarity
	case StageTurn:
		return v.Emotion
	case StageEnding:
		return v.CTA
	default:
		return v.Total
	}
}

// InRange reports whether every score is within [0, 10].
func (v ValidationResult) InRange() bool {
	for _, s := range []float64{v.Hook, v.Clarity, v.CTA, v.Emotion, v.Total} {
		if s != ClampScore(s) {
			return false
		}
	}
	return true
}

// Clamped returns a copy with every score forced into [0, 10].
func (v ValidationResult) Clamped() ValidationResult {
	v.Hook = ClampScore(v.Hook)
	v.Clarity = ClampScore(v.Clarity)
	v.CTA = ClampScore(v.CTA)
	v.Emotion = ClampScore(v.Emotion)
	v.Total = ClampScore(v.Total)
	return v
}

// ValidationRegistry stores at most one ValidationResult per script
// identity. Re-validation overwrites, never appends. Safe for concurrent
// use.
type ValidationRegistry struct {
	logger *zap.Logger

	mu      sync.RWMutex
	results map[string]ValidationResult
}

// RegistryOption configures a ValidationRegistry.
type RegistryOption func(*ValidationRegistry)

// WithRegistryLogger sets the logger used for contract-violation warnings.
func WithRegistryLogger(logger *zap.Logger) RegistryOption {
	return func(r *ValidationRegistry) {
		r.logger = logger
	}
}

// NewValidationRegistry creates an empty registry.
func NewValidationRegistry(opts ...RegistryOption) *ValidationRegistry {
	r := &ValidationRegistry{
		logger:  zap.NewNop(),
		results: make(map[string]ValidationResult),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Set stores the result for a script identity, overwriting any previous
// one. Out-of-range scores indicate an upstream contract violation: they
// are clamped and logged, not rejected. The stored result is returned.
func (r *ValidationRegistry) Set(scriptID string, result ValidationResult) ValidationResult {
	if !result.InRange() {
		r.logger.Warn("validation scores out of range, clamping",
			zap.String("script_id", scriptID),
			zap.Float64("total", result.Total))
		result = result.Clamped()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[scriptID] = result
	return result
}

// Get returns the stored result for a script identity, if any.
func (r *ValidationRegistry) Get(scriptID string) (ValidationResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.results[scriptID]
	return result, ok
}
