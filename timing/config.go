package timing

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AggregatorConfig bounds the threshold-driven ratios computed by §4.6.
type AggregatorConfig struct {
	// Threshold is the critical_node_ratio cutoff: slack <= Threshold
	// counts as critical. Default 0.
	Threshold float64
	// Alpha scales ClockPeriod for the near_critical_ratio cutoff: slack
	// < Alpha*ClockPeriod counts as near-critical. Default 0.1.
	Alpha float64 `validate:"gte=0"`
	// ClockPeriod is the nominal clock period used for the near-critical
	// cutoff and reported verbatim in TimingSummary.
	ClockPeriod float64 `validate:"gt=0"`
	// AnalysisMode labels the TimingSummary's provenance (e.g. "post-route").
	AnalysisMode string
}

// DefaultAggregatorConfig returns §4.6's stated defaults for a given clock
// period; Threshold=0, Alpha=0.1.
func DefaultAggregatorConfig(clockPeriod float64) AggregatorConfig {
	return AggregatorConfig{Threshold: 0, Alpha: 0.1, ClockPeriod: clockPeriod, AnalysisMode: "default"}
}

// Validate checks c's struct tags and returns a wrapped
// validator.ValidationErrors on failure, never panicking.
func (c AggregatorConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("timing: invalid config: %w", err)
	}
	return nil
}
