package actions

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/Y4shin/streamdeck-manager/internal/deck"
)

// Func is a named key action: the same contract as a key callback.
type Func = deck.KeyFunc

// Payload is the State value attached to function-typed keys: the
// action name plus its raw configuration. The deck core never
// interprets it; only the bound action does.
type Payload struct {
	Name   string
	Config json.RawMessage
}

// Registry maps action names to callbacks. Function-typed keys in the
// configuration resolve their action lazily, by name, at fire time, so
// actions may be registered after the page store is built. An unknown
// name at fire time fails that single key press only.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register adds a named action. Registering the same name twice is an
// error; actions are identities, not handlers to be stacked.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return fmt.Errorf("action name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("action %q: function cannot be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.funcs[name]; exists {
		return fmt.Errorf("action %q is already registered", name)
	}
	r.funcs[name] = fn
	return nil
}

// Lookup resolves an action by name.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns all registered action names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bind returns a key callback that resolves name in the registry at
// fire time and invokes it. This is the late-binding hook used by the
// config builder for function-typed keys.
func (r *Registry) Bind(name string) Func {
	return func(k *deck.Key, p *deck.Page, m *deck.Manager) error {
		fn, ok := r.Lookup(name)
		if !ok {
			return deck.NewActionError(
				fmt.Sprintf("no action named %q is registered", name), nil)
		}
		return fn(k, p, m)
	}
}
