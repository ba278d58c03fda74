// Package launcher runs one external program at a time and reports its
// lifecycle. Launch blocks the calling goroutine from process creation to
// exit; the caller is told that the launch finished, never that it failed.
// Failures are logged and delivered as events instead.
package launcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"romrun/internal/command"
	"romrun/pkg/logger"
)

// State tracks the single process slot a Launcher owns.
type State int

const (
	StateIdle State = iota
	StateStarting
	StateRunning
	StateTerminated
)

const separator = "----------------------------------------"

// testable exec command wrapper
var execCommand = exec.Command

// Launcher owns at most one child process at a time. It is not safe for
// concurrent Launch calls and does not try to be: overlapping launches are
// a broken caller contract and panic instead of queueing.
type Launcher struct {
	notify func(Event)
	state  State
	cmd    *exec.Cmd
}

// New creates a Launcher delivering lifecycle events to notify.
// A nil notify drops events; the log output remains.
func New(notify func(Event)) *Launcher {
	return &Launcher{notify: notify}
}

// Launch parses cmdline into argv, starts the process, and blocks until it
// exits or fails to start. Events are emitted in order — Started, then
// Finished or FailedToStart — followed by exactly one LaunchDone after the
// launcher has returned to Idle. In an event-driven host, run Launch on a
// worker goroutine so the blocking wait does not stall unrelated work.
func (l *Launcher) Launch(cmdline string) {
	if l.state != StateIdle {
		panic("launcher: Launch called while a process is already active")
	}
	l.state = StateStarting
	defer func() {
		l.cmd = nil
		l.state = StateIdle
		l.emit(Event{Kind: EventLaunchDone})
	}()

	logger.Info(separator)
	logger.Infof("Executing command: `%s`", cmdline)

	argv := command.SplitArgs(cmdline)
	if len(argv) == 0 {
		logger.Warnf("Running the command `%s` failed due to an unknown error", cmdline)
		l.emit(Event{Kind: EventFailedToStart, Reason: FailureUnknown, Program: cmdline})
		return
	}

	// No stdin/stdout/stderr is attached to the child, so read/write
	// channel errors cannot occur on this path; classifyStartError treats
	// one as a defect.
	l.cmd = execCommand(argv[0], argv[1:]...)
	if err := l.cmd.Start(); err != nil {
		reason := classifyStartError(err)
		l.warnStartFailure(reason, argv[0])
		l.emit(Event{Kind: EventFailedToStart, Reason: reason, Program: argv[0]})
		return
	}

	l.state = StateRunning
	pid := l.cmd.Process.Pid
	logger.Infof("Process %d started", pid)
	l.emit(Event{Kind: EventStarted, Pid: pid})

	// The OS wait is inherently asynchronous; funnel it through a
	// single-slot completion channel and block on that, keeping the
	// synchronous contract explicit.
	done := make(chan error, 1)
	go func() { done <- l.cmd.Wait() }()
	waitErr := <-done

	exitCode, clean := exitStatus(l.cmd.ProcessState, waitErr)
	if clean {
		logger.Infof("The external program has finished cleanly, with exit code %d", exitCode)
	} else {
		logger.Warnf("The external program has crashed on exit, with exit code %d", exitCode)
	}

	// TODO: this post-exit terminate mirrors the defensive cleanup of the
	// previous implementation; signalling an exited process is a no-op and
	// the call can likely go.
	_ = l.cmd.Process.Signal(syscall.SIGTERM)

	l.state = StateTerminated
	l.emit(Event{Kind: EventFinished, ExitCode: exitCode, Clean: clean})
}

func (l *Launcher) emit(ev Event) {
	if l.notify != nil {
		l.notify(ev)
	}
}

func (l *Launcher) warnStartFailure(reason FailureReason, program string) {
	switch reason {
	case FailureNotFoundOrPermission:
		logger.Warnf("Could not run the command `%s`; either the invoked program is missing,"+
			" or you don't have the permission to run it", program)
	case FailureCrashedOnStart:
		logger.Warnf("The external program `%s` has crashed on startup", program)
	case FailureStartTimeout:
		logger.Warnf("The command `%s` has not started in a reasonable amount of time", program)
	default:
		logger.Warnf("Running the command `%s` failed due to an unknown error", program)
	}
}

// classifyStartError maps a process-creation error to a FailureReason.
func classifyStartError(err error) FailureReason {
	if isPipeError(err) {
		// No pipes are ever attached to the child; a pipe error here means
		// the launcher itself is broken, not the external world.
		panic("launcher: pipe error reported for a child with no attached pipes: " + err.Error())
	}
	switch {
	case errors.Is(err, exec.ErrNotFound),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission):
		return FailureNotFoundOrPermission
	case errors.Is(err, context.DeadlineExceeded):
		return FailureStartTimeout
	case errors.Is(err, syscall.ENOEXEC):
		return FailureCrashedOnStart
	default:
		return FailureUnknown
	}
}

func isPipeError(err error) bool {
	if errors.Is(err, syscall.EPIPE) {
		return true
	}
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) && strings.Contains(pathErr.Op, "pipe")
}

// exitStatus reports the child's exit code and whether it exited cleanly.
// A process killed by a signal is a crash; its wait error carries no
// meaningful exit code, so the ProcessState value (-1) is reported as-is.
func exitStatus(ps *os.ProcessState, waitErr error) (code int, clean bool) {
	if ps == nil {
		// Wait failed before reaping; should not happen once Start succeeded.
		return -1, false
	}
	code = ps.ExitCode()
	clean = ps.Exited()
	if waitErr != nil && clean && code == 0 {
		// Exited cleanly by status yet Wait errored: not reachable without
		// stdio copying, which this launcher never sets up.
		clean = false
	}
	return code, clean
}
