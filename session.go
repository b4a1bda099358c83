package roteiro

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AdaptationThreshold is the block score below which a stage is rewritten.
// Blocks scoring at or above it are considered good enough and left alone.
const AdaptationThreshold = 8.5

// ErrBusy is returned when an adaptation batch is already in flight.
// The rejection is synchronous; batches are never queued.
var ErrBusy = errors.New("roteiro: adaptation already in progress")

// SessionState is the lifecycle state of an adaptation session.
type SessionState int

// Session states. Sessions cycle Idle -> Generating -> Idle and are
// long-lived; there is no terminal state.
const (
	StateIdle SessionState = iota
	StateGenerating
)

// AdaptedBlock tracks one stage's original text and, once generated, its
// adapted rewrite. Adapted stays empty for stages that never scored below
// the threshold; re-generation overwrites, never appends.
type AdaptedBlock struct {
	Stage    Stage  `json:"stage"`
	Original string `json:"original"`
	Adapted  string `json:"adapted,omitempty"`
	ToneNote string `json:"tone_note,omitempty"`
}

// IsAdapted reports whether an adapted rewrite has been produced.
func (b AdaptedBlock) IsAdapted() bool {
	return b.Adapted != ""
}

// BatchResult reports the outcome of one adaptation batch after every
// per-stage request has settled.
type BatchResult struct {
	Requested []Stage         // stages sent to the adapter, canonical order
	Failed    map[Stage]error // per-stage failures; empty when complete
}

// Complete reports whether every requested stage was adapted.
func (r *BatchResult) Complete() bool {
	return len(r.Failed) == 0
}

// Partial reports whether some but not all requested stages failed.
// Already-completed stages from the same batch are never lost.
func (r *BatchResult) Partial() bool {
	return len(r.Failed) > 0 && len(r.Failed) < len(r.Requested)
}

// AdaptationSession manages the rewrite workflow for one script: which
// stages need adaptation, their original/adapted text pairs, and the
// comparison-view toggle. It is single-writer: exactly one batch may be in
// flight, enforced by the Generating state.
type AdaptationSession struct {
	adapter BlockAdapter
	logger  *zap.Logger

	mu         sync.Mutex
	state      SessionState
	blocks     map[Stage]*AdaptedBlock
	scores     map[Stage]float64
	order      []Stage // stages present in the document, document order
	comparison bool
}

// SessionOption configures an AdaptationSession.
type SessionOption func(*AdaptationSession)

// WithSessionLogger sets the logger for batch progress and failures.
func WithSessionLogger(logger *zap.Logger) SessionOption {
	return func(s *AdaptationSession) {
		s.logger = logger
	}
}

// NewAdaptationSession creates an idle session backed by the given adapter.
// The session is document-agnostic until the first Adapt call, which seeds
// a tracked block for every stage present in the document it receives.
func NewAdaptationSession(adapter BlockAdapter, opts ...SessionOption) *AdaptationSession {
	s := &AdaptationSession{
		adapter: adapter,
		logger:  zap.NewNop(),
		blocks:  make(map[Stage]*AdaptedBlock),
		scores:  make(map[Stage]float64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Adapt runs one adaptation batch: every stage block in the document whose
// criterion score is below AdaptationThreshold is sent to the adapter for
// a rewrite. Per-stage requests run concurrently; the call blocks until
// all of them settle, then the session returns to Idle.
//
// A second call while a batch is in flight is rejected with ErrBusy. A
// per-stage failure is isolated: it is recorded on the BatchResult, the
// block keeps its previous value, and sibling stages are unaffected.
func (s *AdaptationSession) Adapt(ctx context.Context, doc Document, result ValidationResult) (*BatchResult, error) {
	type request struct {
		stage    Stage
		original string
	}

	s.mu.Lock()
	if s.state == StateGenerating {
		s.mu.Unlock()
		s.logger.Warn("adaptation batch rejected, session busy")
		return nil, ErrBusy
	}
	s.state = StateGenerating

	// Seed a block for every stage present in the document, whether or not
	// it will be adapted, so callers can always compare what exists.
	s.order = s.order[:0]
	var requests []request
	for _, sec := range doc.StageSections() {
		stage := sec.Stage
		s.order = append(s.order, stage)
		if block, ok := s.blocks[stage]; ok {
			block.Original = sec.Text
		} else {
			s.blocks[stage] = &AdaptedBlock{Stage: stage, Original: sec.Text}
		}
		score := result.ScoreFor(stage)
		s.scores[stage] = score
		if score < AdaptationThreshold {
			requests = append(requests, request{stage: stage, original: sec.Text})
		}
	}
	s.mu.Unlock()

	tone := ToneForScore(result.Total)
	batch := &BatchResult{Failed: make(map[Stage]error)}
	for _, req := range requests {
		batch.Requested = append(batch.Requested, req.stage)
	}

	var batchMu sync.Mutex
	var g errgroup.Group
	for _, req := range requests {
		g.Go(func() error {
			adapted, err := s.adapter.Adapt(ctx, req.stage, req.original, tone)
			if err != nil {
				s.logger.Warn("stage adaptation failed",
					zap.Stringer("stage", req.stage),
					zap.Error(err))
				batchMu.Lock()
				batch.Failed[req.stage] = err
				batchMu.Unlock()
				return nil // a failed stage must not abort its siblings
			}
			s.mu.Lock()
			block := s.blocks[req.stage]
			block.Adapted = adapted.Text
			block.ToneNote = adapted.ToneNote
			s.mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // join: the batch settles before the session goes idle

	s.mu.Lock()
	s.state = StateIdle
	s.mu.Unlock()

	return batch, nil
}

// State returns the current session state.
func (s *AdaptationSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Generating reports whether a batch is in flight.
func (s *AdaptationSession) Generating() bool {
	return s.State() == StateGenerating
}

// ToggleComparison flips the comparison-view flag and returns the new
// value. It never touches the generating state.
func (s *AdaptationSession) ToggleComparison() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comparison = !s.comparison
	return s.comparison
}

// ComparisonVisible reports whether the comparison view is enabled.
func (s *AdaptationSession) ComparisonVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.comparison
}

// Block returns a copy of the tracked block for a stage.
func (s *AdaptationSession) Block(stage Stage) (AdaptedBlock, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	block, ok := s.blocks[stage]
	if !ok {
		return AdaptedBlock{}, false
	}
	return *block, true
}

// Blocks returns copies of all tracked blocks in document order.
func (s *AdaptationSession) Blocks() []AdaptedBlock {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]AdaptedBlock, 0, len(s.order))
	for _, stage := range s.order {
		if block, ok := s.blocks[stage]; ok {
			out = append(out, *block)
		}
	}
	return out
}

// PendingStages returns the stages that still need adaptation: their score
// fell below the threshold and no rewrite has been produced yet.
func (s *AdaptationSession) PendingStages() []Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Stage
	for _, stage := range s.order {
		if s.scores[stage] < AdaptationThreshold && !s.blocks[stage].IsAdapted() {
			out = append(out, stage)
		}
	}
	return out
}

// ImprovementSummary returns the improvement focus for every stage whose
// score triggered adaptation, in document order, one entry per stage.
func (s *AdaptationSession) ImprovementSummary() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, stage := range s.order {
		if s.scores[stage] < AdaptationThreshold {
			out = append(out, ImprovementFocus(stage.Label()))
		}
	}
	return out
}
