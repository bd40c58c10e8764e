package deck

import (
	"fmt"
	"image"
	"sync"

	"go.uber.org/zap"

	"github.com/Y4shin/streamdeck-manager/internal/logging"
)

// DefaultBrightness is the backlight level used when the configuration
// does not set one.
const DefaultBrightness = 50

// Renderer composes the image shown on one key. An empty icon or label
// means the corresponding part is omitted; a missing icon file is a
// fatal error, never a placeholder.
type Renderer interface {
	Render(icon string, label string) (image.Image, error)
}

// Manager owns the page store, the device handle, and the current-page
// cursor. It is the single authority that mutates the cursor and the
// keys' pressed flags, and it re-renders the whole current page after
// every handled event.
//
// The device collaborator delivers key events from its own goroutine;
// an internal mutex guarantees at most one event is handled at a time.
// Event handling, callback invocation and rendering are all synchronous
// and run to completion before the next event is processed.
type Manager struct {
	mu sync.Mutex

	store      *Store
	dev        Device
	renderer   Renderer
	current    string
	brightness int
}

// NewManager wires store, device and renderer into a running session:
// it opens and resets the device, applies the brightness, renders the
// root page, and registers the key callback. The store's root page must
// exist and every page's slot count must match the device layout.
func NewManager(store *Store, dev Device, renderer Renderer, brightness int) (*Manager, error) {
	if brightness <= 0 {
		brightness = DefaultBrightness
	}

	rows, cols := dev.KeyLayout()
	want := rows * cols
	for _, name := range store.Names() {
		p, _ := store.Page(name)
		if p.Len() != want {
			return nil, NewConfigError(
				fmt.Sprintf("page %q has %d slots, device has %d keys", name, p.Len(), want), nil)
		}
	}
	if _, ok := store.Page(store.Root()); !ok {
		return nil, NewUnknownPageError(store.Root())
	}

	m := &Manager{
		store:      store,
		dev:        dev,
		renderer:   renderer,
		current:    store.Root(),
		brightness: brightness,
	}

	if err := dev.Open(); err != nil {
		return nil, NewDeviceError("failed to open device", err)
	}
	if err := dev.Reset(); err != nil {
		return nil, NewDeviceError("failed to reset device", err)
	}
	if err := dev.SetBrightness(m.brightness); err != nil {
		return nil, NewDeviceError("failed to set brightness", err)
	}
	if err := m.renderAll(); err != nil {
		return nil, err
	}

	// The single callback registered for the session. Callback errors
	// surface here, at the device-event boundary, and are logged; the
	// operator re-pressing the key is the retry mechanism.
	dev.SetKeyCallback(func(index int, pressed bool) {
		if err := m.HandleEvent(index, pressed); err != nil {
			logging.Error("Key event failed",
				zap.Int("index", index),
				zap.Bool("pressed", pressed),
				zap.Error(err),
			)
		}
	})

	return m, nil
}

// CurrentPage returns the name of the active page.
func (m *Manager) CurrentPage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Brightness returns the configured backlight level.
func (m *Manager) Brightness() int {
	return m.brightness
}

// SetPage moves the current-page cursor. An unknown name is a callback
// bug and fails loudly rather than silently staying on the old page.
// SetPage is meant to be called from within a key callback, where event
// handling already holds the manager lock.
func (m *Manager) SetPage(name string) error {
	if _, ok := m.store.Page(name); !ok {
		return NewUnknownPageError(name)
	}
	logging.LogPageSwitch(m.current, name)
	m.current = name
	return nil
}

// HandleEvent is the single entry point driven by the device: it flips
// the key's pressed flag, dispatches the key's callback, and then
// unconditionally re-renders every slot of whatever page is current
// once the callback has returned. The callback may have switched pages,
// added or removed keys, or changed icons; the full re-render keeps the
// display truthful in all of those cases.
func (m *Manager) HandleEvent(index int, pressed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	page, ok := m.store.Page(m.current)
	if !ok {
		return NewUnknownPageError(m.current)
	}
	if index < 0 || index >= page.Len() {
		return NewBoundsError(page.Name, index, page.Len())
	}

	logging.LogKeyEvent(page.Name, index, pressed)

	if k := page.Key(index); k != nil {
		k.Pressed = pressed
	}
	if err := page.Dispatch(index, m); err != nil {
		return err
	}

	return m.renderAll()
}

// RenderAll re-renders every slot of the current page.
func (m *Manager) RenderAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.renderAll()
}

// renderAll is the unsynchronized render pass. Any failure for one slot
// aborts the whole pass: a stale or wrong icon on a physical button is
// worse than a visible failure.
func (m *Manager) renderAll() error {
	page, ok := m.store.Page(m.current)
	if !ok {
		return NewUnknownPageError(m.current)
	}
	logging.LogRender(page.Name, page.Len())

	for i := 0; i < page.Len(); i++ {
		style := page.StyleOf(i)
		img, err := m.renderer.Render(style.Icon, style.Label)
		if err != nil {
			return NewRenderError(page.Name, i, err)
		}
		if err := m.dev.SetKeyImage(i, img); err != nil {
			return NewDeviceError(fmt.Sprintf("failed to set image on key %d", i), err)
		}
	}
	return nil
}

// Close releases the device handle. The manager must not be used after.
func (m *Manager) Close() error {
	return m.dev.Close()
}
