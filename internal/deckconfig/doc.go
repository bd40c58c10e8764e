// Package deckconfig loads the JSON page tree (config.json) and builds
// the page store the manager runs on.
//
// # Document Format
//
// The document carries the root page tree plus deck-wide defaults:
//
//	{
//	  "folder_up_img": "up.png",
//	  "folder_img": "folder.png",
//	  "default_img": "blank.png",
//	  "default_label": "key",
//	  "page": {
//	    "name": "main",
//	    "keys": [
//	      {"name": "spotify", "type": "function", "function": "launch",
//	       "img": "spotify.png", "function_config": {"cmd": "spotify"}},
//	      {"name": "media", "type": "folder", "img": "folder.png",
//	       "folder": {"name": "media", "keys": [...]}},
//	      {"name": "spacer", "type": "empty"}
//	    ]
//	  }
//	}
//
// Icon and label values default in three tiers: the per-state value
// (img_on/img_off, label_on/label_off), then the single value applied
// to both states (img, label), then the component default (folder_img
// for folder keys, default_img/default_label otherwise). Each state
// falls back through its tiers independently.
//
// # Materialization
//
// Nested folder nodes become their own pages; every page with a parent
// gets an automatic "up" navigation key at slot 0 pointing back to it.
// Keys beyond the device's slot count are logged and dropped, but every
// structural problem (malformed JSON, unknown key types, nameless or
// duplicate pages, folder keys without a nested page) is fatal at load
// time. After materialization the folder graph is checked for dangling
// targets and cycles.
package deckconfig
