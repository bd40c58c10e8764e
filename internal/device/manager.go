package device

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Y4shin/streamdeck-manager/internal/deck"
	"github.com/Y4shin/streamdeck-manager/internal/logging"
)

// Enumerator finds attached decks for one backend (hardware driver,
// simulator, ...). Backends register themselves at startup.
type Enumerator interface {
	// Name identifies the backend in logs and error messages.
	Name() string
	// Enumerate returns the decks this backend can currently reach.
	Enumerate() ([]deck.Device, error)
}

var (
	mu          sync.Mutex
	enumerators []Enumerator
)

// Register adds a backend to the enumeration list.
func Register(e Enumerator) {
	mu.Lock()
	defer mu.Unlock()
	enumerators = append(enumerators, e)
}

// Enumerate collects the devices of all registered backends.
func Enumerate() ([]deck.Device, error) {
	mu.Lock()
	backends := make([]Enumerator, len(enumerators))
	copy(backends, enumerators)
	mu.Unlock()

	var devices []deck.Device
	for _, e := range backends {
		found, err := e.Enumerate()
		if err != nil {
			return nil, fmt.Errorf("backend %s: %w", e.Name(), err)
		}
		logging.Debug("Enumerated backend",
			zap.String("backend", e.Name()),
			zap.Int("devices", len(found)),
		)
		devices = append(devices, found...)
	}
	return devices, nil
}

// Single returns the one attached deck. The daemon drives exactly one
// device per session: none attached and more than one are both errors.
func Single() (deck.Device, error) {
	devices, err := Enumerate()
	if err != nil {
		return nil, err
	}
	switch len(devices) {
	case 0:
		return nil, fmt.Errorf("no stream deck found")
	case 1:
		return devices[0], nil
	default:
		return nil, fmt.Errorf("found %d stream decks, only one is supported at once", len(devices))
	}
}
