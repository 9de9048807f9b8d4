package tiers

// Tier ids with behaviour attached to them.
const (
	TierAnonymous = 1
	TierGF        = 7
	TierSoulmate  = 8
)

type Tier struct {
	ID          int      `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Price       string   `yaml:"price" json:"price"`
	Emoji       string   `yaml:"emoji" json:"emoji"`
	Icon        string   `yaml:"icon" json:"icon"`
	CursorEmoji string   `yaml:"cursorEmoji" json:"cursorEmoji"`
	Gradient    string   `yaml:"gradient" json:"gradient"`
	Badge       string   `yaml:"badge" json:"badge,omitempty"`
	MainPerks   []string `yaml:"mainPerks" json:"mainPerks"`
	AllPerks    []string `yaml:"allPerks" json:"allPerks"`

	ButtonText       string `yaml:"buttonText" json:"buttonText"`
	LockedButtonText string `yaml:"lockedButtonText" json:"-"`

	// RequiresTierID gates this tier behind a selection of another one.
	RequiresTierID *int `yaml:"requiresTierId" json:"requiresTierId,omitempty"`
}

func (t Tier) Gated() bool {
	return t.RequiresTierID != nil
}

// View is a tier as rendered for one session.
type View struct {
	Tier
	Disabled bool `json:"disabled"`
}

func (t Tier) view(unlocked bool) View {
	v := View{Tier: t, Disabled: t.Gated() && !unlocked}
	if v.Disabled && t.LockedButtonText != "" {
		v.ButtonText = t.LockedButtonText
	}
	return v
}
