package constraints

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ProjectorConfig bounds the edge-selection-by-endpoints search (§4.5).
type ProjectorConfig struct {
	// EndpointDepth (K) bounds how many Combinational/SequentialLaunch
	// hops a source pattern's match set may be extended through before
	// edge selection. Default 0 (direct matches only).
	EndpointDepth int `validate:"gte=0"`
}

// DefaultProjectorConfig returns §4.5's stated default (K=0).
func DefaultProjectorConfig() ProjectorConfig {
	return ProjectorConfig{EndpointDepth: 0}
}

// Validate checks c's struct tags and returns a wrapped
// validator.ValidationErrors on failure, never panicking.
func (c ProjectorConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("constraints: invalid config: %w", err)
	}
	return nil
}
