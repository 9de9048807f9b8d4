// Package roster loads the known-friend roster from the embedded asset,
// a YAML file, or the database.
package roster

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"friendship-offers/internal/assets"
	"friendship-offers/internal/domain/friends"
)

var ErrInvalidRoster = errors.New("invalid roster")

// Default is the roster shipped with the binary.
func Default() (friends.Roster, error) {
	return Parse(assets.Roster)
}

func Parse(data []byte) (friends.Roster, error) {
	var r friends.Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return friends.Roster{}, fmt.Errorf("%w: %v", ErrInvalidRoster, err)
	}
	if err := Validate(r); err != nil {
		return friends.Roster{}, err
	}
	return r, nil
}

func LoadFile(path string) (friends.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return friends.Roster{}, fmt.Errorf("read roster %s: %w", path, err)
	}
	return Parse(data)
}

func Validate(r friends.Roster) error {
	if len(r.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidRoster)
	}

	keys := make(map[string]bool, len(r.Categories))
	for _, c := range r.Categories {
		if strings.TrimSpace(c.Key) == "" || strings.TrimSpace(c.Tier) == "" {
			return fmt.Errorf("%w: category needs a key and a tier label", ErrInvalidRoster)
		}
		if keys[c.Key] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidRoster, c.Key)
		}
		keys[c.Key] = true

		for i, e := range c.Entries {
			if strings.TrimSpace(e.DisplayName) == "" {
				return fmt.Errorf("%w: %s entry %d has no display name", ErrInvalidRoster, c.Key, i)
			}
			if len(e.Names) == 0 {
				return fmt.Errorf("%w: %s/%s has no names", ErrInvalidRoster, c.Key, e.DisplayName)
			}
		}
	}
	return nil
}
