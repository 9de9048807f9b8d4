package tiers

import "fmt"

// Session holds the per-visit selection state. It is not persisted and
// not safe for concurrent use.
type Session struct {
	catalog  *Catalog
	selected map[int]bool
	last     int
}

func NewSession(c *Catalog) *Session {
	return &Session{catalog: c, selected: map[int]bool{}}
}

// Select records a tier choice. Gated tiers can only be selected once
// the tier they require has been selected.
func (s *Session) Select(id int) error {
	t, ok := s.catalog.Get(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTier, id)
	}
	if !s.IsUnlocked(t.ID) {
		return fmt.Errorf("%w: %s", ErrTierLocked, t.Name)
	}
	s.selected[id] = true
	s.last = id
	return nil
}

// Selected returns the most recent selection, 0 when nothing was chosen.
func (s *Session) Selected() int {
	return s.last
}

func (s *Session) IsUnlocked(id int) bool {
	t, ok := s.catalog.Get(id)
	if !ok {
		return false
	}
	return !t.Gated() || s.selected[*t.RequiresTierID]
}

func (s *Session) Tiers() []View {
	all := s.catalog.All()
	out := make([]View, 0, len(all))
	for _, t := range all {
		out = append(out, t.view(s.IsUnlocked(t.ID)))
	}
	return out
}
