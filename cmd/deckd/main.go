// Deckd is a page-based key daemon for Elgato Stream Deck devices.
//
// It loads a declarative page tree from config.json, renders icon+label
// composites onto the device's keys, and dispatches per-key callbacks
// on every press and release. Folder keys navigate between pages; an
// automatic "up" key leads back to the parent page.
//
// Usage:
//
//	deckd [command] [flags]
//
// Running without arguments starts the daemon against the attached
// device. See 'deckd --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Y4shin/streamdeck-manager/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "deckd",
	Short: "Stream Deck page/key daemon",
	Long: `A daemon that drives an Elgato Stream Deck from a declarative page tree.

Pages of keys are loaded from config.json, icons and labels are rendered
onto the physical buttons, and each press fires the key's configured
action: navigating into a folder page, running a named function, or
nothing at all.

If no command is specified, the daemon starts against the attached device.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the daemon when no subcommand provided
		return runRun(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
