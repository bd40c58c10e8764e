// Package config provides the daemon's configuration directory layout
// and the settings file.
//
// Two files live in the config directory:
//   - settings.yaml: deck-wide preferences (brightness, font, log level,
//     asset root, simulator layout), managed by this package
//   - config.json: the declarative page tree, parsed by package deckconfig
//
// # Configuration File Location
//
// Files are stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/deckd or $HOME/.config/deckd
//   - macOS: $HOME/.config/deckd
//   - Windows: %LOCALAPPDATA%\deckd
//
// # Usage Example
//
//	settings, err := config.LoadSettings()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	settings.Brightness = 80
//	if err := settings.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global settings use sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
