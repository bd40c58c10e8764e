package deck

import (
	"go.uber.org/zap"

	"github.com/Y4shin/streamdeck-manager/internal/logging"
)

// KeyFunc is the callback contract for a key press or release.
// It receives the key itself, the page that owns the key, and the manager,
// so a callback can flip key state, inspect neighbours, or navigate pages.
// Errors are not handled here; they propagate to the device-event boundary.
type KeyFunc func(k *Key, p *Page, m *Manager) error

// Key is one button's two-state visual and behavioral configuration.
// An empty icon or label string means "not set"; the render pipeline
// leaves the corresponding area of the key blank.
type Key struct {
	// Name identifies the key. It only needs to be unique within its slot,
	// not across the whole deck.
	Name string

	// IconPressed and IconReleased are icon references, resolved to image
	// files by the render pipeline relative to the asset directory.
	IconPressed  string
	IconReleased string

	// LabelPressed and LabelReleased are the texts drawn under the icon.
	LabelPressed  string
	LabelReleased string

	// Pressed reflects the most recent transition reported by the device
	// for this key's slot. Written only by the Manager.
	Pressed bool

	// State is an opaque payload interpreted only by this key's callback,
	// e.g. a navigation target page name or a function descriptor.
	State any

	// OnPress is invoked synchronously on every press and release.
	OnPress KeyFunc
}

// KeyStyle is the resolved appearance of one slot. The zero value is the
// null style of an empty slot.
type KeyStyle struct {
	Name  string
	Icon  string
	Label string
}

// NewKey creates a key with the no-op callback. Callers fill in icons,
// labels, state and callback directly.
func NewKey(name string) *Key {
	return &Key{Name: name, OnPress: Nop}
}

// Style returns the icon reference and label selected by the key's
// current pressed state. Pure, no side effects.
func (k *Key) Style() (icon string, label string) {
	if k.Pressed {
		return k.IconPressed, k.LabelPressed
	}
	return k.IconReleased, k.LabelReleased
}

// Fire logs the transition and invokes the key's callback. Whatever the
// callback does (switch pages, mutate state, perform I/O) happens before
// Fire returns. Callback errors are returned unmodified.
func (k *Key) Fire(p *Page, m *Manager) error {
	logging.Info("Key fired",
		zap.String("key", k.Name),
		zap.String("page", p.Name),
		zap.Bool("pressed", k.Pressed),
	)
	return k.OnPress(k, p, m)
}

// Nop is the default callback for keys without configured behavior.
// It records the event at debug level and never fails.
func Nop(k *Key, p *Page, m *Manager) error {
	event := "released"
	if k.Pressed {
		event = "pressed"
	}
	logging.Debug("Key has no callback assigned",
		zap.String("key", k.Name),
		zap.String("event", event),
	)
	return nil
}

// Navigate is the built-in folder callback. The navigation target is the
// page name stored in the key's State. Nothing happens on press; the page
// switch fires on release, mirroring tactile-button UX and avoiding
// accidental switches from touches released elsewhere.
func Navigate(k *Key, p *Page, m *Manager) error {
	if k.Pressed {
		return nil
	}
	target, ok := k.State.(string)
	if !ok {
		return NewActionError("folder key state does not name a page", nil)
	}
	return m.SetPage(target)
}
