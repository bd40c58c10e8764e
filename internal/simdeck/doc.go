// Package simdeck provides a terminal-based stand-in for the physical
// deck so the daemon can be exercised with no hardware attached.
//
// The Deck type implements deck.Device: it stores the composed key
// images in memory and forwards simulated presses to the registered key
// callback. The Bubble Tea model renders the button grid as colored
// cells (average color of the slot's image) and maps keyboard
// characters to key presses; each press is followed by an automatic
// release after a short hold, since terminals do not report key-up
// events.
//
// Run with:
//
//	deckd run --sim
package simdeck
