package deckconfig

import "encoding/json"

// Key node types accepted in the configuration document.
const (
	// KeyTypeFolder navigates into a nested page on release.
	KeyTypeFolder = "folder"
	// KeyTypeEmpty is a visible key with no behavior.
	KeyTypeEmpty = "empty"
	// KeyTypeFunction fires a named action from the registry.
	KeyTypeFunction = "function"
)

// Document is the top-level structure of config.json: the root page
// tree plus the deck-wide icon and label defaults.
type Document struct {
	Page *PageNode `json:"page"`

	// FolderUpImg is the icon of the auto-inserted "up" key on every
	// page that has a parent.
	FolderUpImg string `json:"folder_up_img"`

	// FolderImg is the default icon for folder keys.
	FolderImg string `json:"folder_img"`

	// DefaultImg is the default icon for empty and function keys.
	// Optional; unset means those keys render without an icon.
	DefaultImg string `json:"default_img,omitempty"`

	// DefaultLabel is the default label for keys that set none.
	// Optional; nil means no label.
	DefaultLabel *string `json:"default_label,omitempty"`
}

// PageNode declares one page: a name and an ordered key list. Keys are
// assigned to slots in order, after the auto "up" key when the page has
// a parent.
type PageNode struct {
	Name string    `json:"name"`
	Keys []KeyNode `json:"keys"`
}

// KeyNode declares one key. Icon and label values use three-tier
// defaulting: the explicit per-state value wins, then the single value
// applied to both states, then the component-level default. Labels use
// pointers so an explicit empty string suppresses the default.
type KeyNode struct {
	Name string `json:"name"`
	Type string `json:"type"`

	Img    string `json:"img,omitempty"`
	ImgOn  string `json:"img_on,omitempty"`
	ImgOff string `json:"img_off,omitempty"`

	Label    *string `json:"label,omitempty"`
	LabelOn  *string `json:"label_on,omitempty"`
	LabelOff *string `json:"label_off,omitempty"`

	// Folder carries the nested page of a folder key.
	Folder *PageNode `json:"folder,omitempty"`

	// Function names the registry action of a function key, and
	// FunctionConfig is the opaque payload handed to it as key state.
	Function       string          `json:"function,omitempty"`
	FunctionConfig json.RawMessage `json:"function_config,omitempty"`
}
