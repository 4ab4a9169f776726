package timing

import "math"

// TimingNodeMetrics is the §4.6 per-SuperNode metrics snapshot.
type TimingNodeMetrics struct {
	MinSlack          float64 // NaN if no member carries a slack value
	P5Slack           float64
	MaxArrivalTime    float64
	MinRequiredTime   float64
	CriticalNodeRatio float64
	NearCriticalRatio float64
	// TimingRiskScore is nil when all inputs (slack/arrival/required) are
	// missing across every member, per §4.6 "None when all inputs missing".
	TimingRiskScore *float64
}

// TimingEdgeMetrics is the §4.6 per-SuperEdge metrics snapshot.
type TimingEdgeMetrics struct {
	MaxDelay          float64 // NaN if no member carries a delay value
	P95Delay          float64
	FlowTypeHistogram map[string]int
	FanoutMax         float64
	FanoutP95         float64
}

// Severity classifies a TimingAlert.
type Severity int

const (
	Info Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "Info"
	case Warn:
		return "Warn"
	case Error:
		return "Error"
	default:
		panic("timing: unhandled Severity variant")
	}
}

// TimingAlert names the entity it concerns, a severity, a reason, and the
// metrics snapshot that triggered it.
type TimingAlert struct {
	EntityRef string
	Severity  Severity
	Reason    string
	Metrics   any // a TimingNodeMetrics or TimingEdgeMetrics value
}

// TimingSummary is the §4.6 whole-graph rollup.
type TimingSummary struct {
	WorstSlack        float64
	ViolationCount    int
	NearCriticalCount int
	ClockPeriod       float64
	AnalysisMode      string
}

func isMissing(f float64) bool { return math.IsNaN(f) }
