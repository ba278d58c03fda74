package cli

import (
	"romrun/internal/cli/commands"
)

type launchCmd struct{}

func (launchCmd) Name() string        { return "launch" }
func (launchCmd) Description() string { return "Launch a ROM through its platform's emulator" }
func (launchCmd) Run(args []string) error {
	return commands.Launch(args)
}

type platformsCmd struct{}

func (platformsCmd) Name() string        { return "platforms" }
func (platformsCmd) Description() string { return "List configured platforms" }
func (platformsCmd) Run(args []string) error {
	return commands.Platforms(args)
}

type scanCmd struct{}

func (scanCmd) Name() string        { return "scan" }
func (scanCmd) Description() string { return "Find ROM files in a collection directory" }
func (scanCmd) Run(args []string) error {
	return commands.Scan(args)
}

type identifyCmd struct{}

func (identifyCmd) Name() string        { return "identify" }
func (identifyCmd) Description() string { return "Print content digests for ROM files" }
func (identifyCmd) Run(args []string) error {
	return commands.Identify(args)
}

type watchCmd struct{}

func (watchCmd) Name() string        { return "watch" }
func (watchCmd) Description() string { return "Watch a collection directory for changes" }
func (watchCmd) Run(args []string) error {
	return commands.Watch(args)
}

type doctorCmd struct{}

func (doctorCmd) Name() string        { return "doctor" }
func (doctorCmd) Description() string { return "Check the launch environment" }
func (doctorCmd) Run(args []string) error {
	return commands.Doctor(args)
}
