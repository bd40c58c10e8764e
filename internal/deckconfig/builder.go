package deckconfig

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Y4shin/streamdeck-manager/internal/actions"
	"github.com/Y4shin/streamdeck-manager/internal/deck"
	"github.com/Y4shin/streamdeck-manager/internal/logging"
)

// UpKeyName is the name of the auto-inserted navigation key at slot 0
// of every page that has a parent.
const UpKeyName = "up"

// LoadDocument reads and parses config.json. Malformed JSON or missing
// required top-level fields are fatal.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Builder is the one-shot translator from a declarative page tree into
// a populated page store with navigation callbacks wired. It is not
// part of the steady-state event path; it only produces the initial
// data the manager runs on.
type Builder struct {
	doc  *Document
	rows int
	cols int
	reg  *actions.Registry

	// folder edges recorded during materialization, for graph checks;
	// auto "up" edges are tracked separately since the back-reference
	// to the parent is not a cycle in the folder tree.
	edges []folderEdge
}

type folderEdge struct {
	from string
	to   string
}

// NewBuilder creates a builder for a device with the given key layout.
// Function keys bind against reg at fire time.
func NewBuilder(doc *Document, rows, cols int, reg *actions.Registry) *Builder {
	return &Builder{doc: doc, rows: rows, cols: cols, reg: reg}
}

// Build materializes the page tree. The root page's name designates the
// store root. Every structural problem (duplicate page names, missing
// nested pages, unknown key types) is fatal; only slot overflow is
// tolerated per key, logged and dropped.
func (b *Builder) Build() (*deck.Store, error) {
	store := deck.NewStore(b.doc.Page.Name)
	if err := b.buildPage(store, b.doc.Page, ""); err != nil {
		return nil, err
	}
	if err := b.validateGraph(store); err != nil {
		return nil, err
	}
	return store, nil
}

// buildPage materializes one page node and recurses into nested folder
// pages. parent is empty for the root page.
func (b *Builder) buildPage(store *deck.Store, node *PageNode, parent string) error {
	page := deck.NewPage(node.Name, b.rows, b.cols)
	if err := store.Add(page); err != nil {
		return err
	}

	slot := 0
	if parent != "" {
		if err := page.SetKey(0, b.upKey(parent)); err != nil {
			return err
		}
		slot = 1
	}

	for i := range node.Keys {
		kn := &node.Keys[i]
		if slot >= page.Len() {
			// Page population is best-effort per slot; the excess key is
			// dropped, not the page.
			logging.Warn("Page has more keys than the device has slots, dropping key",
				zap.String("page", node.Name),
				zap.String("key", kn.Name),
			)
			continue
		}

		key, child, err := b.buildKey(kn, node.Name)
		if err != nil {
			return err
		}
		if err := page.SetKey(slot, key); err != nil {
			return err
		}
		slot++

		if child != nil {
			if err := b.buildPage(store, child, node.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildKey materializes one key node. For folder keys it also returns
// the nested page node to recurse into.
func (b *Builder) buildKey(kn *KeyNode, owner string) (*deck.Key, *PageNode, error) {
	key := deck.NewKey(kn.Name)

	var child *PageNode
	var defaultIcon string

	switch kn.Type {
	case KeyTypeFolder:
		if kn.Folder == nil {
			return nil, nil, NewValidationError(owner,
				"folder key %q has no nested page", kn.Name)
		}
		if kn.Folder.Name == "" {
			return nil, nil, NewValidationError(owner,
				"folder key %q has a nested page without a name", kn.Name)
		}
		key.State = kn.Folder.Name
		key.OnPress = deck.Navigate
		child = kn.Folder
		defaultIcon = b.doc.FolderImg
		b.edges = append(b.edges, folderEdge{from: owner, to: kn.Folder.Name})

	case KeyTypeEmpty:
		// Nop callback from NewKey stays.
		defaultIcon = b.doc.DefaultImg

	case KeyTypeFunction:
		if kn.Function == "" {
			return nil, nil, NewValidationError(owner,
				"function key %q does not name a function", kn.Name)
		}
		key.State = actions.Payload{Name: kn.Function, Config: kn.FunctionConfig}
		// Late-bound: the action is resolved by name when the key fires,
		// so actions registered after Build still work and a missing one
		// fails a single press, not startup.
		key.OnPress = b.reg.Bind(kn.Function)
		defaultIcon = b.doc.DefaultImg

	default:
		return nil, nil, NewValidationError(owner,
			"key %q has unknown type %q", kn.Name, kn.Type)
	}

	key.IconPressed = firstIcon(kn.ImgOn, kn.Img, defaultIcon)
	key.IconReleased = firstIcon(kn.ImgOff, kn.Img, defaultIcon)
	// Each label state falls back independently through its tiers, the
	// same rule as icons.
	key.LabelPressed = firstLabel(kn.LabelOn, kn.Label, b.doc.DefaultLabel)
	key.LabelReleased = firstLabel(kn.LabelOff, kn.Label, b.doc.DefaultLabel)

	return key, child, nil
}

// upKey creates the automatic parent-navigation key.
func (b *Builder) upKey(parent string) *deck.Key {
	key := deck.NewKey(UpKeyName)
	key.IconPressed = b.doc.FolderUpImg
	key.IconReleased = b.doc.FolderUpImg
	key.LabelPressed = UpKeyName
	key.LabelReleased = UpKeyName
	key.State = parent
	key.OnPress = deck.Navigate
	return key
}

// firstIcon returns the first non-empty value of the defaulting tiers.
func firstIcon(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// firstLabel returns the first set value of the defaulting tiers. A set
// but empty label is honored, suppressing later tiers.
func firstLabel(values ...*string) string {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return ""
}
