package simdeck

import (
	"fmt"
	"image"
	"sync"

	"github.com/Y4shin/streamdeck-manager/internal/deck"
	"github.com/Y4shin/streamdeck-manager/internal/device"
)

// Key display size in pixels, matching the classic hardware.
const (
	keyWidth  = 72
	keyHeight = 72
)

// Deck is an in-memory deck.Device: it keeps the composed key images
// and replays key presses fed to it by the terminal UI (or by tests).
type Deck struct {
	mu         sync.Mutex
	rows, cols int
	brightness int
	open       bool
	images     []image.Image
	pressed    []bool
	callback   func(index int, pressed bool)
}

// New creates a simulated deck with the given button grid.
func New(rows, cols int) *Deck {
	return &Deck{
		rows:    rows,
		cols:    cols,
		images:  make([]image.Image, rows*cols),
		pressed: make([]bool, rows*cols),
	}
}

// Open implements deck.Device.
func (d *Deck) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = true
	return nil
}

// Close implements deck.Device.
func (d *Deck) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = false
	return nil
}

// Reset clears all key images.
func (d *Deck) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.images {
		d.images[i] = nil
	}
	return nil
}

// SetBrightness implements deck.Device.
func (d *Deck) SetBrightness(percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("brightness %d out of range 0-100", percent)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.brightness = percent
	return nil
}

// Brightness returns the last applied backlight level.
func (d *Deck) Brightness() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.brightness
}

// KeyLayout implements deck.Device.
func (d *Deck) KeyLayout() (rows, cols int) {
	return d.rows, d.cols
}

// ImageSize implements deck.Device.
func (d *Deck) ImageSize() (width, height int) {
	return keyWidth, keyHeight
}

// SetKeyImage implements deck.Device.
func (d *Deck) SetKeyImage(index int, img image.Image) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.images) {
		return fmt.Errorf("key index %d out of range 0-%d", index, len(d.images)-1)
	}
	d.images[index] = img
	return nil
}

// SetKeyCallback implements deck.Device.
func (d *Deck) SetKeyCallback(fn func(index int, pressed bool)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.callback = fn
}

// Press simulates a finger landing on key index.
func (d *Deck) Press(index int) {
	d.transition(index, true)
}

// Release simulates the finger lifting off key index.
func (d *Deck) Release(index int) {
	d.transition(index, false)
}

func (d *Deck) transition(index int, pressed bool) {
	d.mu.Lock()
	if index < 0 || index >= len(d.pressed) {
		d.mu.Unlock()
		return
	}
	d.pressed[index] = pressed
	cb := d.callback
	// The callback re-enters the deck through SetKeyImage during the
	// render pass, so it must run without the lock held.
	d.mu.Unlock()

	if cb != nil {
		cb(index, pressed)
	}
}

// IsPressed reports the simulated physical state of key index.
func (d *Deck) IsPressed(index int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.pressed) {
		return false
	}
	return d.pressed[index]
}

// Swatch returns the average color of the image on key index as a hex
// string for terminal display, or "" when the key shows nothing.
func (d *Deck) Swatch(index int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.images) || d.images[index] == nil {
		return ""
	}
	img := d.images[index]
	bounds := img.Bounds()

	var r, g, b, n uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 4 {
		for x := bounds.Min.X; x < bounds.Max.X; x += 4 {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			r += uint64(pr >> 8)
			g += uint64(pg >> 8)
			b += uint64(pb >> 8)
			n++
		}
	}
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", r/n, g/n, b/n)
}

// enumerator exposes a single simulated deck through the device registry.
type enumerator struct {
	d *Deck
}

func (e *enumerator) Name() string {
	return "simdeck"
}

func (e *enumerator) Enumerate() ([]deck.Device, error) {
	return []deck.Device{e.d}, nil
}

// RegisterEnumerator makes the simulated deck discoverable through
// device.Single.
func RegisterEnumerator(d *Deck) {
	device.Register(&enumerator{d: d})
}
