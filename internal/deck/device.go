package deck

import "image"

// Device is the contract the manager expects from a physical (or
// simulated) stream deck. The manager opens and resets the device once
// at construction, registers exactly one key callback for the lifetime
// of the session, and pushes a composed image per slot on every render
// pass. Conversion from image.Image to the device's wire pixel encoding
// is the implementation's job.
type Device interface {
	// Open prepares the device for input/output. Must be called before
	// any other communication.
	Open() error
	// Close releases the device connection.
	Close() error
	// Reset clears all key images and any in-flight state.
	Reset() error
	// SetBrightness sets the backlight brightness, 0-100 percent.
	SetBrightness(percent int) error
	// KeyLayout returns the physical button grid dimensions.
	KeyLayout() (rows, cols int)
	// ImageSize returns the pixel dimensions of one key's display.
	ImageSize() (width, height int)
	// SetKeyImage displays an image on the key at the given index,
	// counting row-major from the top-left button.
	SetKeyImage(index int, img image.Image) error
	// SetKeyCallback registers the function invoked on every key press
	// and release. The device delivers events from its own goroutine,
	// one at a time.
	SetKeyCallback(fn func(index int, pressed bool))
}
