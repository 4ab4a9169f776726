package timing

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dkg/dkgmetrics"
)

// GenerateTimingAlerts implements §4.6's generate_timing_alerts: one alert
// per SuperNode whose metrics cross the critical or near-critical
// threshold, sorted by entity ref for deterministic output.
func GenerateTimingAlerts(res Result, cfg AggregatorConfig, metrics *dkgmetrics.Registry) []TimingAlert {
	var alerts []TimingAlert
	for id, m := range res.NodeMetrics {
		if isMissing(m.MinSlack) {
			continue
		}
		switch {
		case m.MinSlack <= cfg.Threshold:
			alerts = append(alerts, TimingAlert{
				EntityRef: id,
				Severity:  Error,
				Reason:    fmt.Sprintf("min_slack %.4f at or below threshold %.4f", m.MinSlack, cfg.Threshold),
				Metrics:   m,
			})
		case m.MinSlack < cfg.Alpha*cfg.ClockPeriod:
			alerts = append(alerts, TimingAlert{
				EntityRef: id,
				Severity:  Warn,
				Reason:    fmt.Sprintf("min_slack %.4f within near-critical band (< %.4f)", m.MinSlack, cfg.Alpha*cfg.ClockPeriod),
				Metrics:   m,
			})
		}
	}

	sort.Slice(alerts, func(i, j int) bool { return alerts[i].EntityRef < alerts[j].EntityRef })

	for _, a := range alerts {
		metrics.ObserveTimingAlert(a.Severity.String())
	}
	return alerts
}
