package tiers

import "friendship-offers/internal/domain/tiers"

type ListResponse struct {
	Tiers    []tiers.View `json:"tiers"`
	Unlocked []int        `json:"unlocked"`
	Selected int          `json:"selected,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
