// Package cli provides the command-line interface for the romrun tool.
// It implements a modular command system with support for subcommands,
// help text, and version information. The CLI uses a registry pattern
// to register available commands and route execution based on user input.
//
// Commands are implemented in the commands subpackage and registered
// during CLI initialization for clean separation of concerns.
package cli

import (
	"fmt"

	"romrun/pkg/version"
)

// Command represents a CLI command
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// CLI represents the command-line interface
type CLI struct {
	commands map[string]Command
	order    []string
}

// New creates a new CLI instance
func New() *CLI {
	c := &CLI{commands: make(map[string]Command)}
	c.registerCommands()
	return c
}

func (c *CLI) register(cmd Command) {
	c.commands[cmd.Name()] = cmd
	c.order = append(c.order, cmd.Name())
}

// registerCommands registers all available commands
func (c *CLI) registerCommands() {
	c.register(launchCmd{})
	c.register(platformsCmd{})
	c.register(scanCmd{})
	c.register(identifyCmd{})
	c.register(watchCmd{})
	c.register(doctorCmd{})
}

// Run executes the CLI with given arguments
func (c *CLI) Run(args []string) error {
	if len(args) < 2 {
		c.printUsage()
		return nil
	}
	switch args[1] {
	case "help", "--help", "-h":
		c.printUsage()
		return nil
	case "version", "--version":
		fmt.Printf("romrun %s\n", version.Version)
		return nil
	default:
		if cmd, ok := c.commands[args[1]]; ok {
			return cmd.Run(args[2:])
		}
		c.printUsage()
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func (c *CLI) printUsage() {
	fmt.Println("Usage: romrun <command> [args]")
	fmt.Println("Commands:")
	for _, name := range c.order {
		fmt.Printf("  %-10s %s\n", name, c.commands[name].Description())
	}
	fmt.Println("  version    Show version")
	fmt.Println("  help       Show this help")
}
