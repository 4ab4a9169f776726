package updater

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/dkg/dkglog"
	"github.com/katalvlaran/dkg/dkgmetrics"
	"github.com/katalvlaran/dkg/graph"
	"github.com/katalvlaran/dkg/provenance"
)

// Sentinel errors, mirroring §7's "Structural" taxonomy for the Updater's
// own hard-error cases. RejectedWrite is deliberately NOT an error (§7:
// "Policy: RejectedWrite(current_record) — expected, non-fatal").
var (
	ErrNoSuchEntity   = errors.New("updater: no such entity")
	ErrTypeMismatch   = errors.New("updater: type mismatch")
	ErrUnknownEntity  = errors.New("updater: entity kind must be Node or Edge")
)

// EntityKind distinguishes which half of the Store a field write targets.
type EntityKind int

const (
	NodeEntity EntityKind = iota
	EdgeEntity
)

// Origin records where an incoming write came from, for diagnostics.
type Origin struct {
	File string
	Line int
}

// Outcome is the result classification of an UpdateField call.
type Outcome int

const (
	// Applied means the write's (source, stage) rank was >= the field's
	// current rank and the Store was updated.
	Applied Outcome = iota
	// Rejected means a lower-ranked write was refused; the Store and
	// Ledger are unchanged.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "Applied"
	case Rejected:
		return "Rejected"
	default:
		panic("updater: unhandled Outcome variant")
	}
}

// Result is returned by every successful (non-erroring) UpdateField call.
type Result struct {
	Outcome Outcome
	// Current is the field's record after the call: the new record if
	// Applied, the pre-existing record if Rejected.
	Current provenance.Record
}

// Updater is the graph's single precedence-gated writer.
type Updater struct {
	store   *graph.Store
	ledger  *provenance.Ledger
	log     *zap.Logger
	metrics *dkgmetrics.Registry
}

// Option configures an Updater at construction.
type Option func(*Updater)

// WithLogger attaches a structured logger; nil is accepted and treated as a
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(u *Updater) { u.log = dkglog.OrNop(l) }
}

// WithMetrics attaches a metrics registry; nil is accepted and every
// observation becomes a no-op.
func WithMetrics(m *dkgmetrics.Registry) Option {
	return func(u *Updater) { u.metrics = m }
}

// New constructs an Updater over store and ledger, both of which must
// already exist — Updater never creates its own Store or Ledger, per §9's
// "thread explicitly, never an ambient singleton" discipline.
func New(store *graph.Store, ledger *provenance.Ledger, opts ...Option) *Updater {
	u := &Updater{store: store, ledger: ledger, log: zap.NewNop()}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// UpdateNodeField applies the §4.3 precedence rule to a write targeting a
// node field.
func (u *Updater) UpdateNodeField(entityID, field string, value any, source provenance.Source, stage provenance.Stage, origin Origin) (Result, error) {
	return u.updateField(NodeEntity, entityID, field, value, source, stage, origin)
}

// UpdateEdgeField applies the §4.3 precedence rule to a write targeting an
// edge field.
func (u *Updater) UpdateEdgeField(entityID, field string, value any, source provenance.Source, stage provenance.Stage, origin Origin) (Result, error) {
	return u.updateField(EdgeEntity, entityID, field, value, source, stage, origin)
}

func (u *Updater) updateField(kind EntityKind, entityID, field string, value any, source provenance.Source, stage provenance.Stage, origin Origin) (Result, error) {
	exists, typeOK := u.probe(kind, entityID, field, value)
	if !exists {
		return Result{}, ErrNoSuchEntity
	}
	if !typeOK {
		return Result{}, ErrTypeMismatch
	}

	newRank := provenance.RankOf(source, stage)
	current, hasCurrent := u.ledger.Current(entityID, field)

	if hasCurrent && newRank.Less(current.Rank()) {
		u.observe(false, stage, source)
		u.log.Debug("rejected write: lower precedence",
			zap.String("entity_id", entityID), zap.String("field", field),
			zap.Stringer("stage", stage), zap.Stringer("source", source))
		return Result{Outcome: Rejected, Current: current}, nil
	}

	if err := u.apply(kind, entityID, field, value); err != nil {
		// Should not happen: probe already validated existence and type,
		// but keep the guard rather than trust it blindly (the Store is
		// the final authority on its own invariants).
		return Result{}, err
	}

	rec := provenance.Record{
		Value:      value,
		Stage:      stage,
		Source:     source,
		OriginFile: origin.File,
		OriginLine: origin.Line,
		Seq:        u.ledger.NextSeq(),
	}
	u.ledger.Append(entityID, field, rec)
	u.observe(true, stage, source)
	u.log.Debug("accepted write",
		zap.String("entity_id", entityID), zap.String("field", field),
		zap.Stringer("stage", stage), zap.Stringer("source", source))

	return Result{Outcome: Applied, Current: rec}, nil
}

func (u *Updater) probe(kind EntityKind, entityID, field string, value any) (exists, typeOK bool) {
	switch kind {
	case NodeEntity:
		if !u.store.HasNode(entityID) {
			return false, false
		}
		return true, graph.CheckNodeFieldType(field, value)
	case EdgeEntity:
		if _, ok := u.store.GetEdge(entityID); !ok {
			return false, false
		}
		return true, graph.CheckEdgeFieldType(field, value)
	default:
		panic("updater: unhandled EntityKind variant")
	}
}

func (u *Updater) apply(kind EntityKind, entityID, field string, value any) error {
	switch kind {
	case NodeEntity:
		return u.store.SetNodeField(entityID, field, value)
	case EdgeEntity:
		return u.store.SetEdgeField(entityID, field, value)
	default:
		panic("updater: unhandled EntityKind variant")
	}
}

func (u *Updater) observe(accepted bool, stage provenance.Stage, source provenance.Source) {
	u.metrics.ObserveWrite(accepted, stage.String(), source.String())
}

// Store exposes the underlying graph.Store for read-only use by callers
// that already hold an Updater (query, view, timing construction code)
// without needing to thread a second reference through the pipeline.
func (u *Updater) Store() *graph.Store { return u.store }

// Ledger exposes the underlying provenance.Ledger for read-only use.
func (u *Updater) Ledger() *provenance.Ledger { return u.ledger }

// RestoreField replays a previously-recorded history entry for
// (entityID, field) without going through precedence gating: the history
// itself is the gate's own prior output (§6 "Persisted snapshot layout").
// It is used only by package snapshot when reconstructing a Store from a
// persisted snapshot, never by ingest adapters.
func (u *Updater) RestoreField(kind EntityKind, entityID, field string, rec provenance.Record) error {
	if err := u.apply(kind, entityID, field, rec.Value); err != nil {
		return err
	}
	u.ledger.Append(entityID, field, rec)
	return nil
}
