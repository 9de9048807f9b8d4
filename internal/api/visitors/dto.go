package visitors

type NotifyRequest struct {
	Name string `json:"name"`
	// Timestamp is RFC 3339, as produced by Date.prototype.toISOString.
	Timestamp string `json:"timestamp"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
