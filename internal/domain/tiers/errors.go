package tiers

import "errors"

var (
	ErrUnknownTier    = errors.New("unknown tier")
	ErrTierLocked     = errors.New("tier is locked")
	ErrInvalidCatalog = errors.New("invalid tier catalog")
)
