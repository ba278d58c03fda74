// Package errors provides enhanced error types with context metadata for
// romrun. These errors carry suggestions, a context map, and lightweight
// stack traces to improve user diagnostics.
package errors

import (
	"runtime"
	"strings"
)

// ErrorCode categorizes errors for handling
type ErrorCode string

const (
	// Launch errors
	ErrEmulatorNotFound ErrorCode = "EMULATOR_NOT_FOUND"
	ErrLaunchPermission ErrorCode = "LAUNCH_PERMISSION"
	ErrStartTimeout     ErrorCode = "START_TIMEOUT"
	ErrChildCrashed     ErrorCode = "CHILD_CRASHED"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "INVALID_CONFIG"
	ErrMissingPlatform ErrorCode = "MISSING_PLATFORM"

	// Filesystem errors
	ErrFileNotFound     ErrorCode = "FILE_NOT_FOUND"
	ErrPermissionDenied ErrorCode = "PERMISSION_DENIED"

	// Unknown errors
	ErrUnknown ErrorCode = "UNKNOWN"
)

// StackFrame represents a single stack frame
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// LaunchError is the base error type with rich context
type LaunchError struct {
	Code       ErrorCode         `json:"code"`
	Message    string            `json:"message"`
	Details    string            `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	Cause      error             `json:"-"`
	Context    map[string]string `json:"context,omitempty"`
	Stack      []StackFrame      `json:"stack,omitempty"`
}

// Error implements the error interface
func (e *LaunchError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}
	if e.Cause != nil {
		sb.WriteString("\nCaused by: ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap exposes the cause to errors.Is/As
func (e *LaunchError) Unwrap() error { return e.Cause }

// WithSuggestion adds a suggestion for fixing the error
func (e *LaunchError) WithSuggestion(suggestion string) *LaunchError {
	e.Suggestion = suggestion
	return e
}

// WithContext adds contextual information
func (e *LaunchError) WithContext(key, value string) *LaunchError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithCause wraps another error
func (e *LaunchError) WithCause(cause error) *LaunchError {
	e.Cause = cause
	return e
}

// WithDetails adds detailed information
func (e *LaunchError) WithDetails(details string) *LaunchError {
	e.Details = details
	return e
}

// New creates a new LaunchError
func New(code ErrorCode, message string) *LaunchError {
	err := &LaunchError{
		Code:    code,
		Message: message,
		Context: make(map[string]string),
	}
	err.captureStack()
	err.Suggestion = getDefaultSuggestion(code)
	return err
}

// Wrap wraps a standard error with LaunchError
func Wrap(err error, code ErrorCode, message string) *LaunchError {
	if err == nil {
		return nil
	}
	if launchErr, ok := err.(*LaunchError); ok {
		// Prepend message context
		if message != "" {
			launchErr.Message = message + ": " + launchErr.Message
		}
		return launchErr
	}
	return New(code, message).WithCause(err)
}

// captureStack captures the current stack trace
func (e *LaunchError) captureStack() {
	const maxFrames = 10
	pc := make([]uintptr, maxFrames)
	n := runtime.Callers(3, pc) // Skip runtime.Callers, captureStack, New/Wrap
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			if !more {
				break
			}
			continue
		}
		e.Stack = append(e.Stack, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
}

// getDefaultSuggestion provides default fix suggestions
func getDefaultSuggestion(code ErrorCode) string {
	suggestions := map[ErrorCode]string{
		ErrEmulatorNotFound: "Check the platform's launch template and your PATH: romrun doctor",
		ErrLaunchPermission: "Make the emulator executable: chmod +x <program>",
		ErrStartTimeout:     "The program took too long to start; try launching it directly",
		ErrInvalidConfig:    "Fix the config file and re-run: romrun doctor",
		ErrMissingPlatform:  "Add a [[platform]] entry with matching extensions to ~/.romrun.toml",
		ErrFileNotFound:     "Check the ROM path for typos",
		ErrPermissionDenied: "Check file permissions",
	}
	if s, ok := suggestions[code]; ok {
		return s
	}
	return "Run 'romrun doctor' for diagnostics"
}
