package actions

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Y4shin/streamdeck-manager/internal/deck"
	"github.com/Y4shin/streamdeck-manager/internal/logging"
)

// RegisterBuiltins adds the stock actions every deployment gets:
//
//   - "nop":  does nothing (same behavior as a key without a callback)
//   - "log":  writes the key's name, state and transition at info level
//   - "page": navigates to the page named by the key's config on release
func RegisterBuiltins(r *Registry) error {
	builtins := map[string]Func{
		"nop":  deck.Nop,
		"log":  logAction,
		"page": pageAction,
	}
	for name, fn := range builtins {
		if err := r.Register(name, fn); err != nil {
			return err
		}
	}
	return nil
}

func logAction(k *deck.Key, p *deck.Page, m *deck.Manager) error {
	event := "released"
	if k.Pressed {
		event = "pressed"
	}
	logging.Info("Key action",
		zap.String("key", k.Name),
		zap.String("page", p.Name),
		zap.String("event", event),
		zap.Any("state", k.State),
	)
	return nil
}

// pageAction jumps to an arbitrary page, not just along folder edges.
// The target is the function config, a JSON string naming the page.
// Like folder navigation it fires on release only.
func pageAction(k *deck.Key, p *deck.Page, m *deck.Manager) error {
	if k.Pressed {
		return nil
	}
	payload, ok := k.State.(Payload)
	if !ok {
		return deck.NewActionError("page action key carries no function payload", nil)
	}
	var target string
	if err := json.Unmarshal(payload.Config, &target); err != nil {
		return deck.NewActionError("page action config does not name a page", err)
	}
	return m.SetPage(target)
}
