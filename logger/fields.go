package logger

import (
	"go.uber.org/zap"
)

// Standard field names for structured logging across declgen.
// Use these constants instead of raw strings so JSON logs stay queryable.
const (
	// Pipeline
	FieldStage = "stage"
	FieldPass  = "pass"
	FieldMode  = "mode"

	// Locators
	FieldType      = "type"
	FieldMember    = "member"
	FieldParameter = "parameter"
	FieldLocator   = "locator"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts
	FieldCount = "count"
	FieldTypes = "types"
	FieldFiles = "files"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Engine struct {
//	    log *zap.SugaredLogger
//	}
//
//	func NewEngine() *Engine {
//	    return &Engine{log: logger.ComponentLogger("correction.engine")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
//	passLog := logger.ChildLogger(log, logger.FieldPass, p.Name)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
