package engagement

type ShowMoreRequest struct {
	UserName string `json:"userName"`
	TierName string `json:"tierName"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
