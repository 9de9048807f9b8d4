package notify

// Policy decides what a route tells the client when the email could not
// be sent.
type Policy int

const (
	// DispatchStrict reports the failure to the client (500).
	DispatchStrict Policy = iota
	// DispatchBestEffort logs the failure and still reports success.
	DispatchBestEffort
)

func (p Policy) String() string {
	switch p {
	case DispatchStrict:
		return "strict"
	case DispatchBestEffort:
		return "best-effort"
	}
	return "unknown"
}
