package provenance

import (
	"sync"
	"sync/atomic"
)

// Record is a single provenance entry: the value that was accepted, who
// wrote it and from which stage, its optional origin (file/line) and a
// monotonic sequence number standing in for the timestamp tiebreaker
// (§4.4: "a stable per-ingestor sequence, not wall time").
type Record struct {
	Value      any
	Stage      Stage
	Source     Source
	OriginFile string
	OriginLine int
	Seq        uint64
}

// Rank returns the precedence rank this record was written at.
func (r Record) Rank() Rank { return RankOf(r.Source, r.Stage) }

type entityField struct {
	entityID string
	field    string
}

// Ledger holds, for every (entity, field) pair, the current record (the
// head) plus a bounded chronological history. Records are append-only; the
// Ledger never mutates a past Record, it only appends and (once MaxDepth is
// exceeded) drops the oldest entry.
//
// Ledger is a sibling of graph.Store, constructed and threaded explicitly —
// never a package-level singleton (§9).
type Ledger struct {
	mu       sync.RWMutex
	maxDepth int // 0 means unbounded
	history  map[entityField][]Record

	seq uint64 // atomic counter, source of Record.Seq
}

// Option configures a Ledger at construction.
type Option func(*Ledger)

// WithMaxDepth bounds the retained history length per (entity, field) to n
// records (the head always counts as one). n <= 0 means unbounded.
func WithMaxDepth(n int) Option {
	return func(l *Ledger) { l.maxDepth = n }
}

// NewLedger creates an empty Ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{history: make(map[entityField][]Record)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NextSeq returns the next value in the Ledger's monotonic sequence counter,
// used by updater to break same-rank ties by "later write wins" (§4.3).
func (l *Ledger) NextSeq() uint64 {
	return atomic.AddUint64(&l.seq, 1)
}

// Current returns the head record for (entityID, field), or (zero, false)
// if no write has ever been accepted for that pair.
func (l *Ledger) Current(entityID, field string) (Record, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	h := l.history[entityField{entityID, field}]
	if len(h) == 0 {
		return Record{}, false
	}
	return h[len(h)-1], true
}

// History returns the full retained history for (entityID, field), oldest
// first, head last. The returned slice is a copy; callers may not mutate it.
func (l *Ledger) History(entityID, field string) []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	h := l.history[entityField{entityID, field}]
	out := make([]Record, len(h))
	copy(out, h)
	return out
}

// Append records rec as the new head for (entityID, field). It is the
// caller's (updater's) responsibility to have already decided rec should
// win precedence; Ledger never rejects an append.
func (l *Ledger) Append(entityID, field string, rec Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := entityField{entityID, field}
	h := append(l.history[key], rec)
	if l.maxDepth > 0 && len(h) > l.maxDepth {
		h = h[len(h)-l.maxDepth:]
	}
	l.history[key] = h
}

// FieldKey names a single (entity, field) pair tracked by a Ledger.
type FieldKey struct {
	EntityID string
	Field    string
}

// Fields returns every (entityID, field) pair the Ledger has ever recorded
// a write for. Used by snapshot.Snapshot to enumerate provenance for persistence.
func (l *Ledger) Fields() []FieldKey {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]FieldKey, 0, len(l.history))
	for k := range l.history {
		out = append(out, FieldKey{k.entityID, k.field})
	}
	return out
}
