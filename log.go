package rngenie

import "github.com/go-logr/logr"

var internalLogger = logr.Discard()

// SetLogger routes the module's diagnostic output to logger. By default nothing is logged.
// Only engine derivation and state restore are logged, never individual draws.
func SetLogger(logger logr.Logger) {
	internalLogger = logger.WithName("rngenie")
}

// Logger returns the logger installed with SetLogger.
func Logger() logr.Logger {
	return internalLogger
}
