package constraints

// UnresolvedPattern is a warning-level diagnostic: a target pattern that
// matched zero nodes. It is recorded, never fatal (§4.5 "Errors"); the
// remainder of the constraint file must still be projected.
type UnresolvedPattern struct {
	Pattern string
}

// ConflictingDeclaration is a warning-level diagnostic raised when two
// Declared-rank writes at the same (entity, field) disagree; the earlier
// one is whatever the ledger already holds, whether written in this
// projection run or before it — the Updater's precedence rule still resolves
// which one wins (the later write, since both share source and stage
// rank), but a same-rank disagreement is worth surfacing to a constraint
// author even though it is not an error.
type ConflictingDeclaration struct {
	EntityID string
	Field    string
	Previous any
	Proposed any
}

// Diagnostics accumulates the non-fatal findings of one projection run.
type Diagnostics struct {
	Unresolved  []UnresolvedPattern
	Conflicting []ConflictingDeclaration
}
