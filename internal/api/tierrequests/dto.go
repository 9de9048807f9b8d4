package tierrequests

type SubmitRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Mobile  string `json:"mobile"`
	Tier    string `json:"tier"`
	Price   string `json:"price"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
