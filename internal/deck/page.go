package deck

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Y4shin/streamdeck-manager/internal/logging"
)

// Page is one screen of the device: a fixed-length ordered sequence of
// optional keys, one slot per physical key position. Slot i maps to
// physical row i/cols, column i%cols. A nil slot is a valid, permanent
// "no key here" state, distinct from a key with no callback.
type Page struct {
	// Name is the page's unique key in the store.
	Name string

	slots []*Key
	cols  int
}

// NewPage creates a page sized for a rows x cols device layout.
// The slot count is fixed for the lifetime of the page.
func NewPage(name string, rows, cols int) *Page {
	return &Page{
		Name:  name,
		slots: make([]*Key, rows*cols),
		cols:  cols,
	}
}

// Len returns the fixed slot count.
func (p *Page) Len() int {
	return len(p.slots)
}

// Key returns the key at slot i, or nil for an empty slot.
// An out-of-range index is a programmer error and panics.
func (p *Page) Key(i int) *Key {
	return p.slots[i]
}

// SetKey assigns a key to slot i. Assigning nil clears the slot.
func (p *Page) SetKey(i int, k *Key) error {
	if i < 0 || i >= len(p.slots) {
		return NewBoundsError(p.Name, i, len(p.slots))
	}
	p.slots[i] = k
	return nil
}

// StyleOf returns the resolved style of slot i: the key's pressed or
// released variant plus its name, or the zero style for an empty slot.
// An out-of-range index is a programmer error and panics.
func (p *Page) StyleOf(i int) KeyStyle {
	k := p.slots[i]
	if k == nil {
		return KeyStyle{}
	}
	icon, label := k.Style()
	return KeyStyle{Name: k.Name, Icon: icon, Label: label}
}

// Dispatch fires the callback of the key at slot i. A press on an empty
// slot is expected during normal use, so it is only logged as a warning
// and otherwise a no-op.
func (p *Page) Dispatch(i int, m *Manager) error {
	k := p.slots[i]
	if k == nil {
		logging.Warn("Key you try to access is not defined",
			zap.String("page", p.Name),
			zap.String("position", fmt.Sprintf("%d:%d", i/p.cols, i%p.cols)),
		)
		return nil
	}
	return k.Fire(p, m)
}
