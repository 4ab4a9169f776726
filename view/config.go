package view

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config bounds the behavior of Build that isn't fixed by the policy maps
// themselves: the passthrough search depth used when rewriting edges
// through eliminated nodes (§4.7 step 4).
type Config struct {
	// PassthroughDepth bounds how far the edge-rewrite pass follows
	// eliminated predecessors/successors before giving up. Default 8.
	PassthroughDepth int `validate:"gte=1"`
}

// DefaultConfig returns the §4.7-specified default configuration.
func DefaultConfig() Config {
	return Config{PassthroughDepth: 8}
}

// Validate checks c's struct tags and returns a wrapped
// validator.ValidationErrors on failure, never panicking.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("view: invalid config: %w", err)
	}
	return nil
}
