package dkglog

import "go.uber.org/zap"

// OrNop returns l if non-nil, otherwise a no-op logger. Components store
// the result of OrNop rather than the raw constructor argument.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// Development returns a *zap.Logger configured for local/test use: console
// encoding, debug level, capitalized (uncolored) level names.
func Development() *zap.Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Production returns a *zap.Logger configured for deployed use: JSON
// encoding, info level.
func Production() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
