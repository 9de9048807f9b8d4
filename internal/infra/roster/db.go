package roster

import (
	"fmt"

	"gorm.io/gorm"

	"friendship-offers/internal/domain/friends"
)

// LoadFromDB reads the roster tables in position order.
func LoadFromDB(db *gorm.DB) (friends.Roster, error) {
	var cats []friends.KnownFriendCategory
	err := db.
		Preload("Friends", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Friends.Aliases", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("position ASC").
		Find(&cats).Error
	if err != nil {
		return friends.Roster{}, fmt.Errorf("load roster: %w", err)
	}

	r := FromModels(cats)
	if err := Validate(r); err != nil {
		return friends.Roster{}, err
	}
	return r, nil
}

// Seed replaces the roster tables with r.
func Seed(db *gorm.DB, r friends.Roster) error {
	if err := Validate(r); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&friends.KnownFriendAlias{}, &friends.KnownFriend{}, &friends.KnownFriendCategory{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return fmt.Errorf("clear roster: %w", err)
			}
		}

		cats := ToModels(r)
		if err := tx.Create(&cats).Error; err != nil {
			return fmt.Errorf("seed roster: %w", err)
		}
		return nil
	})
}

func ToModels(r friends.Roster) []friends.KnownFriendCategory {
	out := make([]friends.KnownFriendCategory, 0, len(r.Categories))
	for ci, c := range r.Categories {
		cat := friends.KnownFriendCategory{
			Key:      c.Key,
			Tier:     c.Tier,
			Level:    c.Level,
			Position: ci,
			Friends:  make([]friends.KnownFriend, 0, len(c.Entries)),
		}
		for ei, e := range c.Entries {
			f := friends.KnownFriend{
				Position:    ei,
				DisplayName: e.DisplayName,
				Aliases:     make([]friends.KnownFriendAlias, 0, len(e.Names)),
			}
			if e.Message != "" {
				msg := e.Message
				f.Message = &msg
			}
			for ni, n := range e.Names {
				f.Aliases = append(f.Aliases, friends.KnownFriendAlias{Position: ni, Name: n})
			}
			cat.Friends = append(cat.Friends, f)
		}
		out = append(out, cat)
	}
	return out
}

// FromModels expects rows already sorted by position.
func FromModels(cats []friends.KnownFriendCategory) friends.Roster {
	r := friends.Roster{Categories: make([]friends.Category, 0, len(cats))}
	for _, c := range cats {
		cat := friends.Category{Key: c.Key, Tier: c.Tier, Level: c.Level}
		for _, f := range c.Friends {
			e := friends.Entry{DisplayName: f.DisplayName}
			if f.Message != nil {
				e.Message = *f.Message
			}
			for _, a := range f.Aliases {
				e.Names = append(e.Names, a.Name)
			}
			cat.Entries = append(cat.Entries, e)
		}
		r.Categories = append(r.Categories, cat)
	}
	return r
}
