package pipeline

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/dkg/dkglog"
	"github.com/katalvlaran/dkg/graph"
	"github.com/katalvlaran/dkg/provenance"
	"github.com/katalvlaran/dkg/updater"
)

// ErrUnregisteredStage is returned by RunStage when no ingestor has ever
// been registered for the requested stage.
var ErrUnregisteredStage = errors.New("pipeline: no ingestors registered for stage")

// Ingestor consumes one external artifact and writes its fields through
// upd. Implementations live in package ingest (or a caller's own adapter);
// this package only orders and invokes them.
type Ingestor interface {
	// Name identifies the ingestor for logging and StageResult reporting.
	Name() string
	// Run performs the ingestion, issuing writes through upd. It must be
	// deterministic for RunStage's idempotency guarantee to hold.
	Run(ctx context.Context, store *graph.Store, upd *updater.Updater) error
}

// StageResult records the outcome of one RunStage call.
type StageResult struct {
	RunID           string
	Stage           provenance.Stage
	IngestorsRun    []string
	FailedIngestor  string
	Err             error
}

// Pipeline orders ingestion across stages (§4.4).
type Pipeline struct {
	store      *graph.Store
	updater    *updater.Updater
	ingestors  map[provenance.Stage][]Ingestor
	log        *zap.Logger
	completed  map[provenance.Stage]int // number of successful RunStage calls
}

// Option configures a Pipeline at construction.
type Option func(*Pipeline)

func WithLogger(l *zap.Logger) Option { return func(p *Pipeline) { p.log = dkglog.OrNop(l) } }

// New constructs a Pipeline over an existing store and updater — both of
// which must already exist, mirroring updater.New's "thread explicitly"
// discipline.
func New(store *graph.Store, upd *updater.Updater, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:     store,
		updater:   upd,
		ingestors: make(map[provenance.Stage][]Ingestor),
		completed: make(map[provenance.Stage]int),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RegisterIngestor appends ing to stage's ingestor list, in registration
// order. Calling this after a stage has already run is valid — it affects
// only subsequent RunStage calls.
func (p *Pipeline) RegisterIngestor(stage provenance.Stage, ing Ingestor) {
	p.ingestors[stage] = append(p.ingestors[stage], ing)
}

// RunStage invokes every ingestor registered for stage, in registration
// order, stopping at the first error. Running the same stage again simply
// re-invokes the same ingestors in the same order (§4.4 idempotency
// contract, given deterministic ingestors).
func (p *Pipeline) RunStage(ctx context.Context, stage provenance.Stage) (StageResult, error) {
	ings, ok := p.ingestors[stage]
	if !ok || len(ings) == 0 {
		return StageResult{}, ErrUnregisteredStage
	}

	res := StageResult{RunID: uuid.NewString(), Stage: stage}
	for _, ing := range ings {
		p.log.Debug("running ingestor", zap.String("run_id", res.RunID), zap.Stringer("stage", stage), zap.String("ingestor", ing.Name()))
		if err := ing.Run(ctx, p.store, p.updater); err != nil {
			res.FailedIngestor = ing.Name()
			res.Err = err
			return res, err
		}
		res.IngestorsRun = append(res.IngestorsRun, ing.Name())
	}
	p.completed[stage]++
	return res, nil
}

// CompletionCount returns how many times RunStage has completed
// successfully for stage.
func (p *Pipeline) CompletionCount(stage provenance.Stage) int {
	return p.completed[stage]
}

// RegisteredStages returns the stages with at least one registered
// ingestor.
func (p *Pipeline) RegisteredStages() []provenance.Stage {
	out := make([]provenance.Stage, 0, len(p.ingestors))
	for s := range p.ingestors {
		out = append(out, s)
	}
	return out
}
