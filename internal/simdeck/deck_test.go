package simdeck

import (
	"image"
	"image/color"
	"testing"

	"github.com/Y4shin/streamdeck-manager/internal/deck"
)

// The simulator must satisfy the device contract the manager runs on.
var _ deck.Device = (*Deck)(nil)

func solidImage(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 72, 72))
	for y := 0; y < 72; y++ {
		for x := 0; x < 72; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDeckLayout(t *testing.T) {
	d := New(3, 5)
	rows, cols := d.KeyLayout()
	if rows != 3 || cols != 5 {
		t.Errorf("KeyLayout() = %dx%d, want 3x5", rows, cols)
	}
	w, h := d.ImageSize()
	if w != 72 || h != 72 {
		t.Errorf("ImageSize() = %dx%d, want 72x72", w, h)
	}
}

func TestDeckPressReachesCallback(t *testing.T) {
	d := New(2, 2)

	var events []struct {
		index   int
		pressed bool
	}
	d.SetKeyCallback(func(index int, pressed bool) {
		events = append(events, struct {
			index   int
			pressed bool
		}{index, pressed})
	})

	d.Press(2)
	d.Release(2)

	if len(events) != 2 {
		t.Fatalf("callback saw %d events, want 2", len(events))
	}
	if events[0].index != 2 || !events[0].pressed {
		t.Errorf("first event = %+v, want press of key 2", events[0])
	}
	if events[1].index != 2 || events[1].pressed {
		t.Errorf("second event = %+v, want release of key 2", events[1])
	}
	if d.IsPressed(2) {
		t.Error("key 2 still pressed after release")
	}
}

func TestDeckPressOutOfRangeIgnored(t *testing.T) {
	d := New(1, 1)
	fired := false
	d.SetKeyCallback(func(int, bool) { fired = true })

	d.Press(9)
	if fired {
		t.Error("out-of-range press should not reach the callback")
	}
}

func TestDeckCallbackMayReenter(t *testing.T) {
	d := New(1, 2)
	d.SetKeyCallback(func(index int, pressed bool) {
		// The manager's render pass calls back into the deck while
		// handling the event; this must not deadlock.
		if err := d.SetKeyImage(index, solidImage(color.Black)); err != nil {
			t.Errorf("SetKeyImage() from callback: %v", err)
		}
	})
	d.Press(0)
}

func TestDeckSwatch(t *testing.T) {
	d := New(1, 2)
	if got := d.Swatch(0); got != "" {
		t.Errorf("Swatch(empty) = %q, want empty string", got)
	}

	if err := d.SetKeyImage(0, solidImage(color.RGBA{R: 255, A: 255})); err != nil {
		t.Fatalf("SetKeyImage() error = %v", err)
	}
	if got := d.Swatch(0); got != "#ff0000" {
		t.Errorf("Swatch(red) = %q, want #ff0000", got)
	}
}

func TestDeckReset(t *testing.T) {
	d := New(1, 1)
	if err := d.SetKeyImage(0, solidImage(color.White)); err != nil {
		t.Fatal(err)
	}
	if err := d.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if d.Swatch(0) != "" {
		t.Error("Reset() did not clear key images")
	}
}

func TestDeckBrightnessBounds(t *testing.T) {
	d := New(1, 1)
	if err := d.SetBrightness(101); err == nil {
		t.Error("SetBrightness(101) should fail")
	}
	if err := d.SetBrightness(-1); err == nil {
		t.Error("SetBrightness(-1) should fail")
	}
	if err := d.SetBrightness(75); err != nil {
		t.Errorf("SetBrightness(75) error = %v", err)
	}
	if d.Brightness() != 75 {
		t.Errorf("Brightness() = %d, want 75", d.Brightness())
	}
}

func TestDeckSetKeyImageOutOfRange(t *testing.T) {
	d := New(1, 1)
	if err := d.SetKeyImage(5, solidImage(color.Black)); err == nil {
		t.Error("SetKeyImage(5) on a 1-key deck should fail")
	}
}

func TestSlotForKey(t *testing.T) {
	d := New(2, 3)
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"1", 0, true},
		{"6", 5, true},
		{"7", 0, false}, // beyond the 6-key layout
		{"enter", 0, false},
	}
	for _, tt := range tests {
		got, ok := slotForKey(tt.input, d)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("slotForKey(%q) = %d, %v; want %d, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
