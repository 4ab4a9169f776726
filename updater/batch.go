package updater

import "github.com/katalvlaran/dkg/provenance"

// TimingFields is the optional-field bundle accepted by BatchUpdateTiming,
// mirroring §4.3's {id -> (delay?, slack?, arrival?, required?)} shape.
type TimingFields struct {
	Delay    *float64
	Slack    *float64
	Arrival  *float64
	Required *float64
}

// BatchUpdateClockDomains applies UpdateNodeField(id, "clock_domain", name, ...)
// for every (id, name) pair in assignments, with identical semantics per
// element (§4.3). It returns the per-id Result map; a per-id error aborts
// only that id's write, the rest of the batch still runs.
func (u *Updater) BatchUpdateClockDomains(assignments map[string]string, source provenance.Source, stage provenance.Stage) (map[string]Result, map[string]error) {
	results := make(map[string]Result, len(assignments))
	errs := make(map[string]error)
	for id, name := range assignments {
		res, err := u.UpdateNodeField(id, "clock_domain", name, source, stage, Origin{})
		if err != nil {
			errs[id] = err
			continue
		}
		results[id] = res
	}
	return results, errs
}

// BatchUpdateTiming applies UpdateNodeField for every non-nil scalar in each
// id's TimingFields, at the caller-supplied source and stage; no default
// pair is applied (§4.3's usual pair is source=Analyzed, stage=Timing).
func (u *Updater) BatchUpdateTiming(values map[string]TimingFields, source provenance.Source, stage provenance.Stage) (map[string][]Result, map[string][]error) {
	results := make(map[string][]Result, len(values))
	errs := make(map[string][]error)
	for id, f := range values {
		var rs []Result
		var es []error
		if f.Delay != nil {
			if r, err := u.UpdateNodeField(id, "delay", *f.Delay, source, stage, Origin{}); err != nil {
				es = append(es, err)
			} else {
				rs = append(rs, r)
			}
		}
		if f.Slack != nil {
			if r, err := u.UpdateNodeField(id, "slack", *f.Slack, source, stage, Origin{}); err != nil {
				es = append(es, err)
			} else {
				rs = append(rs, r)
			}
		}
		if f.Arrival != nil {
			if r, err := u.UpdateNodeField(id, "arrival_time", *f.Arrival, source, stage, Origin{}); err != nil {
				es = append(es, err)
			} else {
				rs = append(rs, r)
			}
		}
		if f.Required != nil {
			if r, err := u.UpdateNodeField(id, "required_time", *f.Required, source, stage, Origin{}); err != nil {
				es = append(es, err)
			} else {
				rs = append(rs, r)
			}
		}
		if len(rs) > 0 {
			results[id] = rs
		}
		if len(es) > 0 {
			errs[id] = es
		}
	}
	return results, errs
}
