// Package dkgmetrics wraps the prometheus collectors shared across the
// ingestion pipeline: writes accepted/rejected by the Updater, unresolved
// constraint patterns, timing alerts emitted by severity, and view-build
// duration. None of this is named in spec's Non-goals, so it is carried as
// ambient, optional, nil-safe infrastructure — every collector is reachable
// through a *Registry value that can be left nil (methods on a nil
// *Registry are no-ops).
package dkgmetrics
