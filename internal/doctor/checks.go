package doctor

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"

	"romrun/internal/command"
	"romrun/internal/config"
)

// execLookPath enables test stubbing.
var execLookPath = exec.LookPath

// ConfigCheck verifies the config file parses and platforms are launchable
type ConfigCheck struct {
	cfg *config.Config
	err error
}

func (c *ConfigCheck) Name() string        { return "Configuration" }
func (c *ConfigCheck) Description() string { return "Checking platform definitions" }

func (c *ConfigCheck) Run() CheckResult {
	if c.err != nil {
		return CheckResult{
			Status:     StatusError,
			Message:    "Config file does not parse",
			Details:    c.err.Error(),
			FixCommand: "edit " + config.Path(),
		}
	}
	if len(c.cfg.Platforms) == 0 {
		return CheckResult{
			Status:     StatusWarning,
			Message:    "No platforms configured",
			Details:    "romrun launch needs at least one [[platform]] entry",
			FixCommand: "edit " + config.Path(),
		}
	}
	var bad []string
	for i := range c.cfg.Platforms {
		if err := c.cfg.Platforms[i].Validate(); err != nil {
			bad = append(bad, err.Error())
		}
	}
	if len(bad) > 0 {
		return CheckResult{
			Status:     StatusError,
			Message:    fmt.Sprintf("%d invalid platform definition(s)", len(bad)),
			Details:    strings.Join(bad, "; "),
			FixCommand: "edit " + config.Path(),
		}
	}
	return CheckResult{Status: StatusOK, Message: fmt.Sprintf("%d platform(s) configured", len(c.cfg.Platforms))}
}

// EmulatorCheck verifies each platform's launch program resolves on PATH
type EmulatorCheck struct {
	cfg *config.Config
}

func (c *EmulatorCheck) Name() string        { return "Emulators" }
func (c *EmulatorCheck) Description() string { return "Checking launch programs are installed" }

func (c *EmulatorCheck) Run() CheckResult {
	if len(c.cfg.Platforms) == 0 {
		return CheckResult{Status: StatusWarning, Message: "No emulators to check"}
	}
	var missing []string
	for _, p := range c.cfg.Platforms {
		// The program is the first argv token of the template; placeholder
		// values do not affect it.
		argv := command.SplitArgs(command.Build(p.Launch, "probe.rom"))
		if len(argv) == 0 {
			missing = append(missing, p.Name+" (empty template)")
			continue
		}
		if _, err := execLookPath(argv[0]); err != nil {
			missing = append(missing, fmt.Sprintf("%s (%s)", p.Name, argv[0]))
		}
	}
	if len(missing) > 0 {
		return CheckResult{
			Status:     StatusWarning,
			Message:    fmt.Sprintf("%d emulator(s) not found", len(missing)),
			Details:    strings.Join(missing, ", "),
			FixCommand: "install the missing emulators or fix the launch templates",
		}
	}
	return CheckResult{Status: StatusOK, Message: "All emulators resolve"}
}

// CPUCheck reports host CPU capability; demanding emulators want modern SIMD
type CPUCheck struct{}

func (c *CPUCheck) Name() string        { return "CPU" }
func (c *CPUCheck) Description() string { return "Checking host CPU features" }

func (c *CPUCheck) Run() CheckResult {
	brand := cpuid.CPU.BrandName
	if brand == "" {
		brand = "unknown CPU"
	}
	details := fmt.Sprintf("%s, %d logical cores", brand, cpuid.CPU.LogicalCores)

	if runtime.GOARCH != "amd64" && runtime.GOARCH != "386" {
		// SIMD feature gates below are x86-only.
		return CheckResult{Status: StatusOK, Message: "CPU features sufficient", Details: details}
	}

	var lacking []string
	if !cpuid.CPU.Supports(cpuid.SSE4) {
		lacking = append(lacking, "SSE4.1")
	}
	if !cpuid.CPU.Supports(cpuid.AVX2) {
		lacking = append(lacking, "AVX2")
	}
	if len(lacking) > 0 {
		return CheckResult{
			Status:  StatusWarning,
			Message: fmt.Sprintf("CPU lacks %s", strings.Join(lacking, ", ")),
			Details: details + "; some emulators require these features",
		}
	}
	return CheckResult{Status: StatusOK, Message: "CPU features sufficient", Details: details}
}
