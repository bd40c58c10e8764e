// Package deck implements the page/key navigation state machine at the
// heart of the deckd daemon.
//
// A Key is one button's two-state (pressed/released) configuration: icon
// and label per state, an opaque State payload, and a callback. A Page is
// a fixed-length sequence of optional keys matching the device's button
// grid. The Store maps page names to pages; folder keys whose State names
// another page form the navigation tree by convention. The Manager owns
// the store, the device handle and the current-page cursor.
//
// # Event Flow
//
// The device reports raw (index, pressed) transitions. The manager looks
// up the key in the current page, flips its pressed flag, fires its
// callback synchronously, and then re-renders every slot of whatever page
// is current afterwards. Re-rendering everything instead of diffing is a
// deliberate choice: a page switch invalidates the whole screen, and the
// device updates at human-interaction speed.
//
//	dev events -> Manager.HandleEvent -> Page.Dispatch -> Key.Fire
//	            -> callback (may call Manager.SetPage) -> render pass
//
// # Collaborators
//
// The physical device and the image composition are behind the Device and
// Renderer interfaces; package simdeck provides a terminal Device and
// package render the gg-based Renderer.
//
// # Concurrency
//
// The manager serializes event handling with an internal mutex, so at
// most one HandleEvent executes at a time even if the device collaborator
// calls back from its own goroutine. A slow callback blocks the deck
// until it returns; there is no cancellation or timeout.
package deck
