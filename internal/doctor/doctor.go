// Package doctor provides launch-environment health checks for romrun.
package doctor

import (
	"fmt"
	"strings"
	"time"

	"romrun/internal/config"
)

// Doctor runs diagnostic checks against the loaded configuration
type Doctor struct {
	cfg     *config.Config
	cfgErr  error
	checks  []HealthCheck
	verbose bool
}

// HealthCheck represents a single diagnostic check
type HealthCheck interface {
	Name() string
	Description() string
	Run() CheckResult
}

// CheckResult contains the outcome of a health check
type CheckResult struct {
	Status     Status
	Message    string
	Details    string
	FixCommand string
}

// Status represents check status
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusError
)

// HealthReport summarizes checks
type HealthReport struct {
	TotalChecks int
	Passed      int
	Warnings    int
	Errors      int
	StartTime   time.Time
	EndTime     time.Time
}

// New creates a Doctor for the given config load outcome.
func New(cfg *config.Config, cfgErr error, verbose bool) *Doctor {
	return &Doctor{cfg: cfg, cfgErr: cfgErr, verbose: verbose}
}

// Run executes all checks and prints a concise report
func (d *Doctor) Run() HealthReport {
	d.checks = []HealthCheck{
		&ConfigCheck{cfg: d.cfg, err: d.cfgErr},
		&EmulatorCheck{cfg: d.cfg},
		&CPUCheck{},
	}
	rpt := HealthReport{StartTime: time.Now()}
	fmt.Println("\n🎮 romrun doctor - Launch Environment Check")
	fmt.Println(strings.Repeat("=", 52))
	for _, c := range d.checks {
		res := c.Run()
		d.printResult(res)
		rpt.TotalChecks++
		switch res.Status {
		case StatusOK:
			rpt.Passed++
		case StatusWarning:
			rpt.Warnings++
		case StatusError:
			rpt.Errors++
		}
	}
	rpt.EndTime = time.Now()
	fmt.Printf("\n⏱  Completed in %.2fs: %d passed, %d warnings, %d errors\n",
		rpt.EndTime.Sub(rpt.StartTime).Seconds(), rpt.Passed, rpt.Warnings, rpt.Errors)
	return rpt
}

func (d *Doctor) printResult(r CheckResult) {
	icon := "✅"
	switch r.Status {
	case StatusOK:
		// keep default icon
	case StatusWarning:
		icon = "⚠️ "
	case StatusError:
		icon = "❌"
	}
	fmt.Printf("%s %s\n", icon, r.Message)
	if r.Details != "" && d.verbose {
		fmt.Printf("   %s\n", r.Details)
	}
	if r.FixCommand != "" && r.Status != StatusOK {
		fmt.Printf("   💡 Fix: %s\n", r.FixCommand)
	}
}
