package friends

// Entry is one known person and the aliases they may type.
type Entry struct {
	Names       []string `yaml:"names" json:"names"`
	DisplayName string   `yaml:"displayName" json:"displayName"`
	Message     string   `yaml:"message,omitempty" json:"message,omitempty"`
}

// Category groups entries under a tier label.
type Category struct {
	Key     string  `yaml:"key" json:"key"`
	Tier    string  `yaml:"tier" json:"tier"`
	Level   int     `yaml:"level" json:"level"`
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Roster is ordered: earlier categories take precedence when a name
// matches more than one.
type Roster struct {
	Categories []Category `yaml:"categories" json:"categories"`
}

func (r Roster) EntryCount() int {
	n := 0
	for _, c := range r.Categories {
		n += len(c.Entries)
	}
	return n
}
