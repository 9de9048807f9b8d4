package tiers

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is the ordered, read-only list of tiers.
type Catalog struct {
	tiers []Tier
	byID  map[int]int
}

func NewCatalog(list []Tier) (*Catalog, error) {
	c := &Catalog{
		tiers: append([]Tier(nil), list...),
		byID:  make(map[int]int, len(list)),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseCatalog decodes a YAML document with a top-level "tiers" list.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc struct {
		Tiers []Tier `yaml:"tiers"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return NewCatalog(doc.Tiers)
}

func (c *Catalog) validate() error {
	if len(c.tiers) == 0 {
		return fmt.Errorf("%w: no tiers", ErrInvalidCatalog)
	}

	gated := 0
	for i, t := range c.tiers {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("%w: tier %d has no name", ErrInvalidCatalog, t.ID)
		}
		if i > 0 && t.ID <= c.tiers[i-1].ID {
			return fmt.Errorf("%w: ids must be ascending (%d after %d)", ErrInvalidCatalog, t.ID, c.tiers[i-1].ID)
		}
		c.byID[t.ID] = i
	}

	for i, t := range c.tiers {
		if !t.Gated() {
			continue
		}
		gated++
		req := *t.RequiresTierID
		if _, ok := c.byID[req]; !ok || req >= t.ID {
			return fmt.Errorf("%w: tier %d requires %d, which is not a lower tier", ErrInvalidCatalog, t.ID, req)
		}
		if i != len(c.tiers)-1 {
			return fmt.Errorf("%w: only the highest tier may be gated (tier %d)", ErrInvalidCatalog, t.ID)
		}
	}
	if gated != 1 {
		return fmt.Errorf("%w: %d gated tiers, expected exactly one", ErrInvalidCatalog, gated)
	}
	return nil
}

func (c *Catalog) All() []Tier {
	return append([]Tier(nil), c.tiers...)
}

func (c *Catalog) Get(id int) (Tier, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Tier{}, false
	}
	return c.tiers[i], true
}

// FindByName matches case-insensitively on the tier name.
func (c *Catalog) FindByName(name string) (Tier, bool) {
	name = strings.TrimSpace(name)
	for _, t := range c.tiers {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Tier{}, false
}

// GatingTierID returns the tier whose selection unlocks the gated tier.
func (c *Catalog) GatingTierID() (int, bool) {
	for _, t := range c.tiers {
		if t.Gated() {
			return *t.RequiresTierID, true
		}
	}
	return 0, false
}
