package prefab

import "fmt"

// Catalog is a name-indexed view over Entries. Four names in the data
// collide (see DESIGN.md); lookup is first-match-wins, and New reports
// each collision as a warning string rather than silently picking one.
type Catalog struct {
	byName map[string]*Prefab
}

// New builds the catalog from Entries, in order. Warnings describe each
// duplicate name encountered; the first definition of that name is the
// one kept for Lookup.
func New() (*Catalog, []string) {
	c := &Catalog{byName: make(map[string]*Prefab, len(Entries))}
	var warnings []string
	for i := range Entries {
		e := &Entries[i]
		if _, dup := c.byName[e.Name]; dup {
			warnings = append(warnings, fmt.Sprintf("prefab: duplicate name %q, keeping first definition", e.Name))
			continue
		}
		c.byName[e.Name] = e
	}
	return c, warnings
}

// Lookup returns the named prefab, or (nil, false) if no such primitive
// exists in the catalog.
func (c *Catalog) Lookup(name string) (*Prefab, bool) {
	p, ok := c.byName[name]
	return p, ok
}
