package deckconfig

import "github.com/Y4shin/streamdeck-manager/internal/deck"

// ValidateDocument checks the structural requirements of a parsed
// configuration document before any pages are materialized.
func ValidateDocument(doc *Document) error {
	if doc.Page == nil {
		return NewValidationError("", "missing required top-level field %q", "page")
	}
	if doc.Page.Name == "" {
		return NewValidationError("page", "root page has no name")
	}
	if doc.FolderUpImg == "" {
		return NewValidationError("", "missing required top-level field %q", "folder_up_img")
	}
	if doc.FolderImg == "" {
		return NewValidationError("", "missing required top-level field %q", "folder_img")
	}
	return nil
}

// validateGraph checks the materialized folder graph: every folder
// target must exist in the store, and the downward folder edges must be
// acyclic. A nested JSON document cannot express a cycle directly, but
// validating here keeps the guarantee even if page trees are ever
// merged or generated, since a silent infinite navigation loop would
// otherwise only surface as a UX problem.
func (b *Builder) validateGraph(store *deck.Store) error {
	adjacency := make(map[string][]string)
	for _, e := range b.edges {
		if _, ok := store.Page(e.to); !ok {
			return NewValidationError(e.from,
				"folder key references unknown page %q", e.to)
		}
		adjacency[e.from] = append(adjacency[e.from], e.to)
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int)

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			return NewValidationError(name, "folder graph contains a cycle through %q", name)
		case done:
			return nil
		}
		state[name] = visiting
		for _, next := range adjacency[name] {
			if err := visit(next); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}

	return visit(store.Root())
}
