package constraints

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/dkg/dkglog"
	"github.com/katalvlaran/dkg/dkgmetrics"
	"github.com/katalvlaran/dkg/graph"
	"github.com/katalvlaran/dkg/updater"
)

// Projector applies ingest.ConstraintRecord values to a graph.Store through
// an updater.Updater, resolving each record's target patterns against the
// Store's current node/edge catalog.
type Projector struct {
	store   *graph.Store
	upd     *updater.Updater
	cfg     ProjectorConfig
	log     *zap.Logger
	metrics *dkgmetrics.Registry
	globs   *globCache
}

// Option configures a Projector at construction.
type Option func(*Projector)

// WithLogger attaches a structured logger; nil is accepted as a no-op.
func WithLogger(l *zap.Logger) Option {
	return func(p *Projector) { p.log = dkglog.OrNop(l) }
}

// WithMetrics attaches a metrics registry; nil is accepted and every
// observation becomes a no-op.
func WithMetrics(m *dkgmetrics.Registry) Option {
	return func(p *Projector) { p.metrics = m }
}

// WithConfig overrides the default ProjectorConfig.
func WithConfig(cfg ProjectorConfig) Option {
	return func(p *Projector) { p.cfg = cfg }
}

// New constructs a Projector writing through upd. store must be the same
// Store that upd wraps, since resolution reads it directly.
func New(store *graph.Store, upd *updater.Updater, opts ...Option) (*Projector, error) {
	p := &Projector{
		store: store,
		upd:   upd,
		cfg:   DefaultProjectorConfig(),
		log:   zap.NewNop(),
		globs: newGlobCache(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("constraints: %w", err)
	}
	return p, nil
}
