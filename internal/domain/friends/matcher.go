package friends

import "strings"

// Threshold is the similarity a fuzzy match has to exceed.
const Threshold = 0.7

type Match struct {
	Category    string `json:"category"`
	Tier        string `json:"tier"`
	TierLevel   int    `json:"tierLevel"`
	DisplayName string `json:"displayName"`
	Message     string `json:"message,omitempty"`
}

type alias struct {
	normalized string
	category   int
	entry      int
}

// Matcher recognizes known friends. It is immutable and safe for
// concurrent use.
type Matcher struct {
	roster  Roster
	aliases []alias
}

func NewMatcher(r Roster) *Matcher {
	m := &Matcher{roster: r}
	for ci, c := range r.Categories {
		for ei, e := range c.Entries {
			for _, n := range e.Names {
				norm := Normalize(n)
				if norm == "" {
					continue
				}
				m.aliases = append(m.aliases, alias{normalized: norm, category: ci, entry: ei})
			}
		}
	}
	return m
}

// Match returns the first known friend, in roster order, whose alias
// equals the normalized name, contains it or is contained by it, or is
// more than Threshold similar to it.
func (m *Matcher) Match(name string) (Match, bool) {
	input := Normalize(name)
	if input == "" {
		return Match{}, false
	}

	for _, a := range m.aliases {
		if !matches(input, a.normalized) {
			continue
		}
		c := m.roster.Categories[a.category]
		e := c.Entries[a.entry]
		return Match{
			Category:    c.Key,
			Tier:        c.Tier,
			TierLevel:   c.Level,
			DisplayName: e.DisplayName,
			Message:     e.Message,
		}, true
	}
	return Match{}, false
}

func (m *Matcher) Roster() Roster {
	return m.roster
}

func matches(input, known string) bool {
	return input == known ||
		strings.Contains(input, known) ||
		strings.Contains(known, input) ||
		Similarity(input, known) > Threshold
}
