// Package groups holds the read-only table of word groups.
package groups

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/trickywords/internal/model"
)

var (
	// ErrEmptyName is returned for a group without a name.
	ErrEmptyName = errors.New("group name is empty")
	// ErrDuplicateName is returned when two groups share a name.
	ErrDuplicateName = errors.New("duplicate group name")
)

// Catalog is an immutable, ordered set of word groups.
type Catalog struct {
	groups []model.WordGroup
	index  map[string]int
}

// NewCatalog validates and copies groups into a new Catalog.
func NewCatalog(groups ...model.WordGroup) (*Catalog, error) {
	c := &Catalog{
		groups: make([]model.WordGroup, 0, len(groups)),
		index:  make(map[string]int, len(groups)),
	}
	for _, g := range groups {
		if strings.TrimSpace(g.Name) == "" {
			return nil, ErrEmptyName
		}
		if _, ok := c.index[g.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, g.Name)
		}
		c.index[g.Name] = len(c.groups)
		c.groups = append(c.groups, g.Clone())
	}
	return c, nil
}

// Lookup returns a copy of the group with the exact name.
func (c *Catalog) Lookup(name string) (model.WordGroup, bool) {
	idx, ok := c.index[name]
	if !ok {
		return model.WordGroup{}, false
	}
	return c.groups[idx].Clone(), true
}

// Names returns group names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.groups))
	for i, g := range c.groups {
		names[i] = g.Name
	}
	return names
}

// All returns copies of every group in catalog order.
func (c *Catalog) All() []model.WordGroup {
	out := make([]model.WordGroup, len(c.groups))
	for i, g := range c.groups {
		out[i] = g.Clone()
	}
	return out
}

// Len returns the number of groups.
func (c *Catalog) Len() int {
	return len(c.groups)
}

// Merge appends custom groups after builtin ones. Custom groups that reuse a
// builtin name are dropped and reported in shadowed.
func Merge(builtin, custom []model.WordGroup) (merged []model.WordGroup, shadowed []string) {
	seen := make(map[string]struct{}, len(builtin))
	merged = make([]model.WordGroup, 0, len(builtin)+len(custom))
	for _, g := range builtin {
		seen[g.Name] = struct{}{}
		merged = append(merged, g)
	}
	for _, g := range custom {
		if _, ok := seen[g.Name]; ok {
			shadowed = append(shadowed, g.Name)
			continue
		}
		seen[g.Name] = struct{}{}
		merged = append(merged, g)
	}
	return merged, shadowed
}
