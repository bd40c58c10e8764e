package deckconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Y4shin/streamdeck-manager/internal/actions"
	"github.com/Y4shin/streamdeck-manager/internal/deck"
	"github.com/Y4shin/streamdeck-manager/internal/logging"
)

func strptr(s string) *string { return &s }

// testDocument is a 2x3 deck: a root page of 6 keys, one of them a
// folder into "sub" and one a function key.
func testDocument() *Document {
	return &Document{
		FolderUpImg:  "up.png",
		FolderImg:    "folder.png",
		DefaultImg:   "blank.png",
		DefaultLabel: strptr("key"),
		Page: &PageNode{
			Name: "main",
			Keys: []KeyNode{
				{Name: "a", Type: KeyTypeEmpty},
				{Name: "b", Type: KeyTypeEmpty},
				{Name: "c", Type: KeyTypeEmpty},
				{Name: "d", Type: KeyTypeEmpty},
				{Name: "sub", Type: KeyTypeFolder, Folder: &PageNode{Name: "sub"}},
				{Name: "hello", Type: KeyTypeFunction, Function: "hello",
					FunctionConfig: json.RawMessage(`{"greeting":"hi"}`)},
			},
		},
	}
}

func buildStore(t *testing.T, doc *Document, rows, cols int) *deck.Store {
	t.Helper()
	store, err := NewBuilder(doc, rows, cols, actions.New()).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return store
}

func TestBuildRoundTrip(t *testing.T) {
	store := buildStore(t, testDocument(), 2, 3)

	if store.Len() != 2 {
		t.Errorf("store has %d pages, want 2", store.Len())
	}
	if store.Root() != "main" {
		t.Errorf("Root() = %q, want main", store.Root())
	}

	main, ok := store.Page("main")
	if !ok {
		t.Fatal("main page missing")
	}
	if main.Len() != 6 {
		t.Errorf("main page has %d slots, want the device's 6", main.Len())
	}

	sub, ok := store.Page("sub")
	if !ok {
		t.Fatal("sub page missing")
	}
	up := sub.Key(0)
	if up == nil {
		t.Fatal("sub page slot 0 should carry the auto up key")
	}
	if up.Name != UpKeyName {
		t.Errorf("up key name = %q, want %q", up.Name, UpKeyName)
	}
	if up.State != "main" {
		t.Errorf("up key state = %v, want the parent page name", up.State)
	}
	if up.IconReleased != "up.png" {
		t.Errorf("up key icon = %q, want folder_up_img", up.IconReleased)
	}
}

func TestBuildRootHasNoUpKey(t *testing.T) {
	store := buildStore(t, testDocument(), 2, 3)

	main, _ := store.Page("main")
	if got := main.Key(0).Name; got != "a" {
		t.Errorf("root slot 0 = %q, want the first declared key", got)
	}
}

func TestBuildFolderKeyWiring(t *testing.T) {
	store := buildStore(t, testDocument(), 2, 3)

	main, _ := store.Page("main")
	folder := main.Key(4)
	if folder.State != "sub" {
		t.Errorf("folder key state = %v, want sub", folder.State)
	}
	if folder.IconReleased != "folder.png" {
		t.Errorf("folder key icon = %q, want folder_img default", folder.IconReleased)
	}
}

func TestBuildFunctionKeyState(t *testing.T) {
	store := buildStore(t, testDocument(), 2, 3)

	main, _ := store.Page("main")
	fn := main.Key(5)
	state, ok := fn.State.(actions.Payload)
	if !ok {
		t.Fatalf("function key state = %T, want actions.Payload", fn.State)
	}
	if state.Name != "hello" {
		t.Errorf("function name = %q, want hello", state.Name)
	}
	if string(state.Config) != `{"greeting":"hi"}` {
		t.Errorf("function config = %s, want the raw payload", state.Config)
	}
}

func TestBuildFunctionKeyIsLateBound(t *testing.T) {
	reg := actions.New()
	store, err := NewBuilder(testDocument(), 2, 3, reg).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	main, _ := store.Page("main")
	fn := main.Key(5)

	// Unregistered at fire time fails this press only.
	if err := fn.OnPress(fn, main, nil); !deck.IsType(err, deck.ErrTypeAction) {
		t.Errorf("unregistered function fired: error = %v, want action error", err)
	}

	fired := false
	reg.Register("hello", func(k *deck.Key, p *deck.Page, m *deck.Manager) error {
		fired = true
		return nil
	})
	if err := fn.OnPress(fn, main, nil); err != nil {
		t.Fatalf("registered function fired: error = %v", err)
	}
	if !fired {
		t.Error("function key did not reach the registered action")
	}
}

func TestBuildIconDefaulting(t *testing.T) {
	tests := []struct {
		name         string
		key          KeyNode
		wantPressed  string
		wantReleased string
	}{
		{
			name:        "single img applies to both states",
			key:         KeyNode{Name: "k", Type: KeyTypeEmpty, Img: "one.png"},
			wantPressed: "one.png", wantReleased: "one.png",
		},
		{
			name:        "per-state img wins over single img",
			key:         KeyNode{Name: "k", Type: KeyTypeEmpty, Img: "one.png", ImgOn: "lit.png"},
			wantPressed: "lit.png", wantReleased: "one.png",
		},
		{
			name:        "nothing set falls back to default_img",
			key:         KeyNode{Name: "k", Type: KeyTypeEmpty},
			wantPressed: "blank.png", wantReleased: "blank.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDocument()
			doc.Page.Keys = []KeyNode{tt.key}
			store := buildStore(t, doc, 2, 3)

			main, _ := store.Page("main")
			k := main.Key(0)
			if k.IconPressed != tt.wantPressed {
				t.Errorf("IconPressed = %q, want %q", k.IconPressed, tt.wantPressed)
			}
			if k.IconReleased != tt.wantReleased {
				t.Errorf("IconReleased = %q, want %q", k.IconReleased, tt.wantReleased)
			}
		})
	}
}

func TestBuildLabelDefaulting(t *testing.T) {
	tests := []struct {
		name         string
		key          KeyNode
		wantPressed  string
		wantReleased string
	}{
		{
			name:        "single label applies to both states",
			key:         KeyNode{Name: "k", Type: KeyTypeEmpty, Label: strptr("Solo")},
			wantPressed: "Solo", wantReleased: "Solo",
		},
		{
			name: "each state falls back independently",
			key:  KeyNode{Name: "k", Type: KeyTypeEmpty, LabelOn: strptr("Held")},
			// label_on set, label_off unset: the released state falls
			// through its own tiers down to default_label.
			wantPressed: "Held", wantReleased: "key",
		},
		{
			name:        "nothing set falls back to default_label",
			key:         KeyNode{Name: "k", Type: KeyTypeEmpty},
			wantPressed: "key", wantReleased: "key",
		},
		{
			name:        "explicit empty label suppresses the default",
			key:         KeyNode{Name: "k", Type: KeyTypeEmpty, Label: strptr("")},
			wantPressed: "", wantReleased: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDocument()
			doc.Page.Keys = []KeyNode{tt.key}
			store := buildStore(t, doc, 2, 3)

			main, _ := store.Page("main")
			k := main.Key(0)
			if k.LabelPressed != tt.wantPressed {
				t.Errorf("LabelPressed = %q, want %q", k.LabelPressed, tt.wantPressed)
			}
			if k.LabelReleased != tt.wantReleased {
				t.Errorf("LabelReleased = %q, want %q", k.LabelReleased, tt.wantReleased)
			}
		})
	}
}

func TestBuildDropsOverflowKeys(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logging.SetLogger(zap.New(core))
	t.Cleanup(func() { logging.SetLogger(zap.NewNop()) })

	doc := testDocument()
	doc.Page.Keys = append(doc.Page.Keys, KeyNode{Name: "overflow", Type: KeyTypeEmpty})

	store := buildStore(t, doc, 2, 3)
	main, _ := store.Page("main")
	if main.Len() != 6 {
		t.Errorf("page grew beyond the device: %d slots", main.Len())
	}

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warnings) != 1 {
		t.Fatalf("dropping a key produced %d warnings, want 1", len(warnings))
	}
	if got := warnings[0].ContextMap()["key"]; got != "overflow" {
		t.Errorf("warning names key %v, want overflow", got)
	}
}

func TestBuildStructuralErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc *Document)
	}{
		{
			name: "unknown key type",
			mutate: func(doc *Document) {
				doc.Page.Keys[0].Type = "rotary"
			},
		},
		{
			name: "folder key without nested page",
			mutate: func(doc *Document) {
				doc.Page.Keys[0] = KeyNode{Name: "f", Type: KeyTypeFolder}
			},
		},
		{
			name: "folder key with nameless nested page",
			mutate: func(doc *Document) {
				doc.Page.Keys[0] = KeyNode{Name: "f", Type: KeyTypeFolder, Folder: &PageNode{}}
			},
		},
		{
			name: "function key without function name",
			mutate: func(doc *Document) {
				doc.Page.Keys[0] = KeyNode{Name: "f", Type: KeyTypeFunction}
			},
		},
		{
			name: "duplicate page name",
			mutate: func(doc *Document) {
				doc.Page.Keys[0] = KeyNode{Name: "dup", Type: KeyTypeFolder,
					Folder: &PageNode{Name: "main"}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDocument()
			tt.mutate(doc)
			if _, err := NewBuilder(doc, 2, 3, actions.New()).Build(); err == nil {
				t.Error("Build() should fail")
			}
		})
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"folder_up_img": "up.png",
		"folder_img": "folder.png",
		"default_label": "key",
		"page": {
			"name": "main",
			"keys": [
				{"name": "a", "type": "empty"},
				{"name": "tools", "type": "folder",
				 "folder": {"name": "tools", "keys": []}}
			]
		}
	}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if doc.Page.Name != "main" {
		t.Errorf("root page = %q, want main", doc.Page.Name)
	}
	if len(doc.Page.Keys) != 2 {
		t.Errorf("root page has %d keys, want 2", len(doc.Page.Keys))
	}
	if doc.DefaultLabel == nil || *doc.DefaultLabel != "key" {
		t.Errorf("default label = %v, want key", doc.DefaultLabel)
	}
}

func TestLoadDocumentErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	incomplete := filepath.Join(dir, "incomplete.json")
	if err := os.WriteFile(incomplete, []byte(`{"page": {"name": "main"}}`), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "ghost.json")},
		{"malformed json", bad},
		{"missing required fields", incomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadDocument(tt.path); err == nil {
				t.Error("LoadDocument() should fail")
			}
		})
	}
}
