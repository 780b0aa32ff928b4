// Package anomaly holds the static anomaly catalog and the selector that
// draws one entry per loop without repeating the previous draw.
package anomaly

import (
	"errors"
	"fmt"
	"strings"
)

// Tier groups anomalies by severity.
type Tier int

const (
	TierLethal        Tier = 1 // instant death, spatial changes
	TierHorror        Tier = 2 // psychological horror
	TierEnvironmental Tier = 3 // subtle environment changes
	TierStory         Tier = 4 // story foreshadowing
)

func (t Tier) String() string {
	switch t {
	case TierLethal:
		return "lethal"
	case TierHorror:
		return "horror"
	case TierEnvironmental:
		return "environmental"
	case TierStory:
		return "story"
	default:
		return fmt.Sprintf("tier-%d", int(t))
	}
}

// Definition is one catalog entry. ID is the identity key.
type Definition struct {
	ID          string
	Tier        Tier
	Description string
}

var ErrInvalidCatalog = errors.New("invalid anomaly catalog")

// Catalog is a fixed ordered list of definitions. It is never mutated
// after construction.
type Catalog struct {
	entries []Definition
	index   map[string]int
}

// NewCatalog validates defs and builds a catalog. An empty catalog is
// accepted here; drawing from it fails with ErrCatalogEmpty.
func NewCatalog(defs ...Definition) (Catalog, error) {
	var errs []string
	index := make(map[string]int, len(defs))
	for i, d := range defs {
		if strings.TrimSpace(d.ID) == "" {
			errs = append(errs, fmt.Sprintf("entry %d: id is required", i))
			continue
		}
		if d.Tier < 1 {
			errs = append(errs, fmt.Sprintf("entry %s: tier must be >= 1", d.ID))
		}
		if prev, ok := index[d.ID]; ok {
			errs = append(errs, fmt.Sprintf("entry %s: duplicate id (first at %d)", d.ID, prev))
			continue
		}
		index[d.ID] = i
	}
	if len(errs) > 0 {
		return Catalog{}, fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(errs, "; "))
	}
	return Catalog{
		entries: append([]Definition(nil), defs...),
		index:   index,
	}, nil
}

func (c Catalog) Len() int { return len(c.entries) }

// Entries returns a copy of the catalog in its original order.
func (c Catalog) Entries() []Definition {
	return append([]Definition(nil), c.entries...)
}

func (c Catalog) Lookup(id string) (Definition, bool) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, false
	}
	return c.entries[i], true
}

// ByTier returns the entries of one tier, in catalog order.
func (c Catalog) ByTier(t Tier) []Definition {
	var out []Definition
	for _, d := range c.entries {
		if d.Tier == t {
			out = append(out, d)
		}
	}
	return out
}

// Tiers returns the distinct tiers present, in first-seen order.
func (c Catalog) Tiers() []Tier {
	seen := make(map[Tier]bool)
	var out []Tier
	for _, d := range c.entries {
		if !seen[d.Tier] {
			seen[d.Tier] = true
			out = append(out, d.Tier)
		}
	}
	return out
}
