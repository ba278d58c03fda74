// Package cli: Central error handling for CLI
// Provides consistent error presentation and suggestions
package cli

import (
	"fmt"
	"os"

	e "romrun/pkg/errors"
	"romrun/pkg/terminal"
)

// ErrorHandler handles errors consistently across the CLI
type ErrorHandler struct {
	verbose bool
	debug   bool
}

// NewErrorHandler creates an error handler
func NewErrorHandler(verbose, debug bool) *ErrorHandler {
	return &ErrorHandler{verbose: verbose, debug: debug}
}

// Handle processes an error and displays it to the user
func (h *ErrorHandler) Handle(err error) {
	if err == nil {
		return
	}

	if launchErr, ok := err.(*e.LaunchError); ok {
		h.displayLaunchError(launchErr)
	} else {
		h.displayLaunchError(e.Wrap(err, e.ErrUnknown, "An unexpected error occurred"))
	}
	os.Exit(1)
}

func (h *ErrorHandler) displayLaunchError(err *e.LaunchError) {
	fmt.Println()
	icon := h.getErrorIcon(err.Code)
	fmt.Printf("%s %s%s%s\n", icon, terminal.Bold, err.Message, terminal.Reset)

	if err.Details != "" && h.verbose {
		fmt.Printf("\n%s%s%s\n", terminal.Dim, err.Details, terminal.Reset)
	}

	if len(err.Context) > 0 && h.verbose {
		fmt.Println("\nContext:")
		for k, v := range err.Context {
			fmt.Printf("  %s: %s\n", k, v)
		}
	}

	if err.Suggestion != "" {
		fmt.Printf("\n💡 %s%s%s\n", terminal.Yellow, err.Suggestion, terminal.Reset)
	}

	if err.Cause != nil && h.verbose {
		fmt.Printf("\n%sCaused by:%s %v\n", terminal.Dim, terminal.Reset, err.Cause)
	}

	if h.debug && len(err.Stack) > 0 {
		fmt.Printf("\n%sStack trace:%s\n", terminal.Dim, terminal.Reset)
		for _, f := range err.Stack {
			fmt.Printf("  %s\n    %s:%d\n", f.Function, f.File, f.Line)
		}
	}
}

func (h *ErrorHandler) getErrorIcon(code e.ErrorCode) string {
	switch code {
	case e.ErrEmulatorNotFound, e.ErrMissingPlatform, e.ErrFileNotFound:
		return terminal.IconSearch
	case e.ErrLaunchPermission, e.ErrPermissionDenied:
		return "🔒"
	case e.ErrInvalidConfig:
		return "📝"
	default:
		return terminal.IconError
	}
}
