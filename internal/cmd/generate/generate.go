// Package generate provides code generation subcommands.
package generate

import (
	"fmt"
	"os"

	"github.com/yacchi/anaume/internal/cmd/generate/defaults"
)

// Run executes the generate subcommand.
func Run(args []string) error {
	if len(args) < 1 {
		PrintHelp()
		return fmt.Errorf("missing subcommand")
	}

	subcmd := args[0]
	subargs := args[1:]

	switch subcmd {
	case "defaults":
		return defaults.Run(subargs)
	case "help", "-h", "--help":
		PrintHelp()
		return nil
	default:
		PrintHelp()
		return fmt.Errorf("unknown subcommand: %s", subcmd)
	}
}

// PrintHelp prints help for the generate command.
func PrintHelp() {
	fmt.Fprintln(os.Stderr, `anaume generate - Code generation commands

Usage:
  go tool anaume generate <subcommand> [arguments]

Subcommands:
  defaults    Generate EnumerateFields methods for default struct types

Use "go tool anaume generate <subcommand> -h" for more information.`)
}
