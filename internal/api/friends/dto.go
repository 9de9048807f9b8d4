package friends

import "friendship-offers/internal/domain/friends"

type MatchRequest struct {
	Name string `json:"name"`
}

type MatchResponse struct {
	Matched bool           `json:"matched"`
	Friend  *friends.Match `json:"friend,omitempty"`
}
