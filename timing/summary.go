package timing

import "math"

// ComputeTimingSummary implements §4.6's whole-graph rollup over an
// already-computed Result.
func ComputeTimingSummary(res Result, cfg AggregatorConfig) TimingSummary {
	worst := math.NaN()
	violations := 0
	nearCritical := 0

	for _, m := range res.NodeMetrics {
		if isMissing(m.MinSlack) {
			continue
		}
		if isMissing(worst) || m.MinSlack < worst {
			worst = m.MinSlack
		}
		if m.MinSlack <= cfg.Threshold {
			violations++
		}
		if m.MinSlack < cfg.Alpha*cfg.ClockPeriod {
			nearCritical++
		}
	}

	return TimingSummary{
		WorstSlack:        worst,
		ViolationCount:    violations,
		NearCriticalCount: nearCritical,
		ClockPeriod:       cfg.ClockPeriod,
		AnalysisMode:      cfg.AnalysisMode,
	}
}
