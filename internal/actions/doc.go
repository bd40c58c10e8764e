// Package actions provides the named callback registry for
// function-typed keys.
//
// The deck core depends only on the registry interface: a mapping from
// string name to a callback matching the key contract. How entries are
// produced is the caller's business; deckd registers a static built-in
// table at startup, and embedders can register their own Go functions
// before handing the registry to the config builder.
//
// Resolution is late-bound: a function key stores only the action name,
// and the name is looked up when the key fires. A name that is missing
// at fire time fails that single key press and nothing else.
package actions
