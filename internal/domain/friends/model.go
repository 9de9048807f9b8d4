package friends

// Tables backing an optional database roster. Rows are read at startup
// only; the site never writes to them while serving.

type KnownFriendCategory struct {
	ID       uint   `gorm:"primaryKey"`
	Key      string `gorm:"not null;uniqueIndex"`
	Tier     string `gorm:"not null"`
	Level    int    `gorm:"not null;default:0"`
	Position int    `gorm:"not null;index"`

	Friends []KnownFriend `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;"`
}

type KnownFriend struct {
	ID          uint    `gorm:"primaryKey"`
	CategoryID  uint    `gorm:"not null;index"`
	Position    int     `gorm:"not null;index"`
	DisplayName string  `gorm:"not null"`
	Message     *string `gorm:"type:text"`

	Aliases []KnownFriendAlias `gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE;"`
}

type KnownFriendAlias struct {
	ID       uint   `gorm:"primaryKey"`
	FriendID uint   `gorm:"not null;index"`
	Position int    `gorm:"not null"`
	Name     string `gorm:"not null"`
}
