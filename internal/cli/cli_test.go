package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

// mockCommand is a test command implementation
type mockCommand struct {
	name        string
	description string
	runFunc     func(args []string) error
	runArgs     []string
}

func (m *mockCommand) Name() string        { return m.name }
func (m *mockCommand) Description() string { return m.description }

func (m *mockCommand) Run(args []string) error {
	m.runArgs = args
	if m.runFunc != nil {
		return m.runFunc(args)
	}
	return nil
}

// captureOutput captures stdout during test execution
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestNew_RegistersCommands(t *testing.T) {
	c := New()
	for _, name := range []string{"launch", "platforms", "scan", "identify", "watch", "doctor"} {
		if _, ok := c.commands[name]; !ok {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestRun_RoutesToCommand(t *testing.T) {
	c := New()
	mock := &mockCommand{name: "mock", description: "test command"}
	c.register(mock)

	if err := c.Run([]string{"romrun", "mock", "a", "b"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(mock.runArgs) != 2 || mock.runArgs[0] != "a" {
		t.Errorf("command received args %v", mock.runArgs)
	}
}

func TestRun_CommandErrorPropagates(t *testing.T) {
	c := New()
	boom := errors.New("boom")
	c.register(&mockCommand{name: "bad", runFunc: func([]string) error { return boom }})

	if err := c.Run([]string{"romrun", "bad"}); !errors.Is(err, boom) {
		t.Errorf("Run returned %v, want the command's error", err)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	c := New()
	var err error
	out := captureOutput(func() { err = c.Run([]string{"romrun", "nonsense"}) })
	if err == nil {
		t.Error("expected error for unknown command")
	}
	if !strings.Contains(out, "Usage:") {
		t.Error("expected usage output")
	}
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	c := New()
	var err error
	out := captureOutput(func() { err = c.Run([]string{"romrun"}) })
	if err != nil {
		t.Errorf("Run: %v", err)
	}
	if !strings.Contains(out, "launch") || !strings.Contains(out, "doctor") {
		t.Errorf("usage should list commands, got: %s", out)
	}
}

func TestRun_Version(t *testing.T) {
	c := New()
	out := captureOutput(func() { _ = c.Run([]string{"romrun", "version"}) })
	if !strings.Contains(out, "romrun") {
		t.Errorf("version output = %q", out)
	}
}
