// Package dkglog provides nil-safe structured logging for the DKG engine,
// built on go.uber.org/zap. Every component that can emit a non-fatal
// diagnostic accepts a *zap.Logger; a nil logger is replaced with a no-op
// logger at construction so callers never need to nil-check before logging.
package dkglog
