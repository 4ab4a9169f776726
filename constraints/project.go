package constraints

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dkg/graph"
	"github.com/katalvlaran/dkg/ingest"
	"github.com/katalvlaran/dkg/provenance"
	"github.com/katalvlaran/dkg/updater"
)

// Project applies every record in records to p's Store, in order, returning
// the accumulated non-fatal Diagnostics. A record whose patterns all fail
// to resolve still yields an UnresolvedPattern diagnostic and is skipped;
// Project never stops early on an unresolved pattern (§4.5 "Errors").
func (p *Projector) Project(records []ingest.ConstraintRecord, originFile string) Diagnostics {
	diag := Diagnostics{}
	for _, rec := range records {
		p.projectOne(rec, originFile, &diag)
	}
	return diag
}

func (p *Projector) projectOne(rec ingest.ConstraintRecord, originFile string, diag *Diagnostics) {
	origin := updater.Origin{File: originFile}
	switch r := rec.(type) {
	case ingest.Clock:
		p.projectClock(r, origin, diag)
	case ingest.FalsePath:
		p.projectFalsePath(r, origin, diag)
	case ingest.MulticyclePath:
		p.projectMulticyclePath(r, origin, diag)
	case ingest.DelayBound:
		p.projectDelayBound(r, origin, diag)
	case ingest.IoTiming:
		p.projectIoTiming(r, origin, diag)
	default:
		panic("constraints: unhandled ConstraintRecord variant")
	}
}

func (p *Projector) projectClock(c ingest.Clock, origin updater.Origin, diag *Diagnostics) {
	targets := p.resolveSet(c.Targets, diag)
	for _, id := range sortedKeys(targets) {
		p.writeNode(id, graph.FieldClockDomain, c.Name, origin, diag)
		p.writeNode(id, "clock_period", c.Period, origin, diag)
	}
}

func (p *Projector) projectFalsePath(fp ingest.FalsePath, origin updater.Origin, diag *Diagnostics) {
	from := p.resolveSet(fp.From, diag)
	to := p.resolveSet(fp.To, diag)
	for _, e := range p.selectEdges(from, to) {
		p.writeEdge(e.ID, graph.FieldTimingException, "false_path", origin, diag)
	}
}

func (p *Projector) projectMulticyclePath(mc ingest.MulticyclePath, origin updater.Origin, diag *Diagnostics) {
	from := p.resolveSet(mc.From, diag)
	to := p.resolveSet(mc.To, diag)
	label := fmt.Sprintf("multicycle_%d_%s", mc.Cycles, mc.Kind)
	for _, e := range p.selectEdges(from, to) {
		p.writeEdge(e.ID, graph.FieldTimingException, label, origin, diag)
	}
}

func (p *Projector) projectDelayBound(db ingest.DelayBound, origin updater.Origin, diag *Diagnostics) {
	from := p.resolveSet(db.From, diag)
	to := p.resolveSet(db.To, diag)
	field := fmt.Sprintf("%s_delay", db.Kind)
	for _, e := range p.selectEdges(from, to) {
		p.writeEdge(e.ID, field, db.Value, origin, diag)
	}
}

func (p *Projector) projectIoTiming(io ingest.IoTiming, origin updater.Origin, diag *Diagnostics) {
	ports := p.resolveSet(io.Ports, diag)
	delayField := fmt.Sprintf("%s_delay", io.Kind)
	for _, id := range sortedKeys(ports) {
		p.writeNode(id, delayField, io.Value, origin, diag)
		if io.Clock != "" {
			p.writeNode(id, "io_clock", io.Clock, origin, diag)
		}
	}
}

func (p *Projector) writeNode(id, field string, value any, origin updater.Origin, diag *Diagnostics) {
	prior, hasPrior := p.upd.Ledger().Current(id, field)
	res, err := p.upd.UpdateNodeField(id, field, value, provenance.Declared, provenance.Constraints, origin)
	if err != nil {
		p.log.Sugar().Debugw("constraint node write failed", "entity_id", id, "field", field, "err", err)
		return
	}
	p.noteConflict(res, hasPrior, prior, id, field, diag)
}

func (p *Projector) writeEdge(id, field string, value any, origin updater.Origin, diag *Diagnostics) {
	prior, hasPrior := p.upd.Ledger().Current(id, field)
	res, err := p.upd.UpdateEdgeField(id, field, value, provenance.Declared, provenance.Constraints, origin)
	if err != nil {
		p.log.Sugar().Debugw("constraint edge write failed", "entity_id", id, "field", field, "err", err)
		return
	}
	p.noteConflict(res, hasPrior, prior, id, field, diag)
}

// noteConflict records a ConflictingDeclaration when a same-rank Declared
// write overwrote a different pre-existing Declared value (§4.5): both
// records share (source, stage), so the Updater's precedence rule fell
// through to "later write wins" rather than a genuine rank difference.
func (p *Projector) noteConflict(res updater.Result, hasPrior bool, prior provenance.Record, id, field string, diag *Diagnostics) {
	if res.Outcome != updater.Applied || !hasPrior {
		return
	}
	if prior.Source != provenance.Declared || prior.Stage != provenance.Constraints || prior.Value == res.Current.Value {
		return
	}
	diag.Conflicting = append(diag.Conflicting, ConflictingDeclaration{
		EntityID: id,
		Field:    field,
		Previous: prior.Value,
		Proposed: res.Current.Value,
	})
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
