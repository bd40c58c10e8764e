package deck

import (
	"fmt"
	"sort"
)

// DefaultRootPage is the page that is current after startup when the
// configuration does not designate another one.
const DefaultRootPage = "main"

// Store holds the full navigable page graph, keyed by page name.
// Folder relationships are encoded only through keys whose State names
// another page; there is no separate edge entity.
type Store struct {
	pages map[string]*Page
	root  string
}

// NewStore creates an empty store with the given root page name.
// An empty root defaults to DefaultRootPage.
func NewStore(root string) *Store {
	if root == "" {
		root = DefaultRootPage
	}
	return &Store{
		pages: make(map[string]*Page),
		root:  root,
	}
}

// Add registers a page under its name. Duplicate names are a
// configuration error.
func (s *Store) Add(p *Page) error {
	if _, exists := s.pages[p.Name]; exists {
		return NewConfigError(fmt.Sprintf("duplicate page name %q", p.Name), nil)
	}
	s.pages[p.Name] = p
	return nil
}

// Page looks up a page by name.
func (s *Store) Page(name string) (*Page, bool) {
	p, ok := s.pages[name]
	return p, ok
}

// Root returns the designated root page name.
func (s *Store) Root() string {
	return s.root
}

// Len returns the number of pages in the store.
func (s *Store) Len() int {
	return len(s.pages)
}

// Names returns all page names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.pages))
	for name := range s.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
