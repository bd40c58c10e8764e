package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Y4shin/streamdeck-manager/internal/actions"
	"github.com/Y4shin/streamdeck-manager/internal/config"
	"github.com/Y4shin/streamdeck-manager/internal/deck"
	"github.com/Y4shin/streamdeck-manager/internal/deckconfig"
	"github.com/Y4shin/streamdeck-manager/internal/device"
	"github.com/Y4shin/streamdeck-manager/internal/logging"
	"github.com/Y4shin/streamdeck-manager/internal/render"
	"github.com/Y4shin/streamdeck-manager/internal/simdeck"
)

// Command flags
var (
	configDir  string
	logLevel   string
	brightness int
	useSim     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory where config is stored (defaults to the platform config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level: debug, info, warn or error")
	rootCmd.PersistentFlags().IntVar(&brightness, "brightness", 0, "Backlight brightness 1-100 (overrides settings.yaml)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(checkCmd)
}

// runCmd starts the daemon
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the deck daemon",
	Long: `Load the page tree, connect to the attached Stream Deck, and serve
key events until interrupted.

Exactly one device must be attached. With --sim a terminal simulator
stands in for the hardware: the button grid is drawn as colored cells
and keys are pressed from the keyboard.`,
	Example: `  # Run against the attached device
  deckd run

  # Run against the terminal simulator
  deckd run --sim

  # Verbose run with an alternate config directory
  deckd run --sim --config-dir ./example --log-level debug`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&useSim, "sim", false, "Use the terminal deck simulator instead of hardware")
}

func runRun(cmd *cobra.Command, args []string) error {
	dir, settings, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer logging.Sync()

	registry := actions.New()
	if err := actions.RegisterBuiltins(registry); err != nil {
		return err
	}

	var sim *simdeck.Deck
	if useSim {
		sim = simdeck.New(settings.SimRows, settings.SimCols)
		simdeck.RegisterEnumerator(sim)
	}

	dev, err := device.Single()
	if err != nil {
		return err
	}

	doc, err := deckconfig.LoadDocument(filepath.Join(dir, config.DeckFile))
	if err != nil {
		return err
	}

	rows, cols := dev.KeyLayout()
	store, err := deckconfig.NewBuilder(doc, rows, cols, registry).Build()
	if err != nil {
		return err
	}

	assetDir := settings.AssetDir
	if assetDir == "" {
		assetDir = dir
	}
	width, height := dev.ImageSize()
	pipeline, err := render.New(assetDir, width, height, settings.FontPath, settings.FontSize)
	if err != nil {
		return err
	}

	level := brightness
	if level == 0 {
		level = settings.Brightness
	}
	manager, err := deck.NewManager(store, dev, pipeline, level)
	if err != nil {
		return err
	}
	defer manager.Close()

	if sim != nil {
		return simdeck.Run(sim)
	}

	// Hardware session: block until interrupted.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	return nil
}

// simCmd is shorthand for run --sim
var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the daemon against the terminal simulator",
	Long: `Run the daemon with the terminal deck simulator instead of hardware.

Equivalent to 'deckd run --sim': the button grid is drawn as colored
cells and keys are pressed from the keyboard.`,
	Example: `  # Simulate the example configuration
  deckd sim --config-dir ./example`,
	RunE: func(cmd *cobra.Command, args []string) error {
		useSim = true
		return runRun(cmd, args)
	},
}

// checkCmd validates the configuration without a device
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the page tree and its assets",
	Long: `Load and validate config.json without touching any device.

The page tree is materialized against the configured simulator layout,
the folder graph is checked for dangling targets and cycles, and every
referenced icon file is verified to exist.`,
	Example: `  # Validate the default config directory
  deckd check

  # Validate a project-local config
  deckd check --config-dir ./example`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir, settings, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer logging.Sync()

	doc, err := deckconfig.LoadDocument(filepath.Join(dir, config.DeckFile))
	if err != nil {
		return err
	}

	registry := actions.New()
	if err := actions.RegisterBuiltins(registry); err != nil {
		return err
	}

	store, err := deckconfig.NewBuilder(doc, settings.SimRows, settings.SimCols, registry).Build()
	if err != nil {
		return err
	}

	assetDir := settings.AssetDir
	if assetDir == "" {
		assetDir = dir
	}

	keys := 0
	var missing []string
	for _, name := range store.Names() {
		page, _ := store.Page(name)
		for i := 0; i < page.Len(); i++ {
			k := page.Key(i)
			if k == nil {
				continue
			}
			keys++
			for _, icon := range []string{k.IconPressed, k.IconReleased} {
				if icon == "" {
					continue
				}
				path := filepath.Join(assetDir, icon)
				if _, err := os.Stat(path); err != nil {
					missing = append(missing, fmt.Sprintf("%s (page %q, key %q)", icon, name, k.Name))
				}
			}
		}
	}

	fmt.Printf("Pages: %d\n", store.Len())
	fmt.Printf("Keys:  %d\n", keys)
	fmt.Printf("Root:  %s\n", store.Root())

	if len(missing) > 0 {
		fmt.Println("\nMissing icons:")
		for _, m := range missing {
			fmt.Printf("  - %s\n", m)
		}
		return fmt.Errorf("%d icon(s) missing under %s", len(missing), assetDir)
	}

	fmt.Println("\nConfiguration OK")
	return nil
}

// loadEnvironment resolves the config directory, loads settings.yaml,
// and initializes logging from flag, settings, or environment.
func loadEnvironment() (string, *config.Settings, error) {
	dir := configDir
	if dir == "" {
		var err error
		dir, err = config.GetConfigDir()
		if err != nil {
			return "", nil, err
		}
	}

	settings, err := config.LoadSettingsFrom(filepath.Join(dir, "settings.yaml"))
	if err != nil {
		return "", nil, err
	}

	level := logLevel
	if level == "" {
		level = settings.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		return "", nil, err
	}

	return dir, settings, nil
}
