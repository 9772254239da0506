package types

// ------------------------------
// Request Types
// ------------------------------

// Default pagination used by ListPolls.
const (
	DefaultSkip  = 0
	DefaultLimit = 10
)

// Credentials holds parameters for a new user
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PageRequest governs poll listing pagination
type PageRequest struct {
	Skip  int
	Limit int
}

// VoteRequest holds parameters for casting a vote. Token is sent as a bearer
// credential and never serialised into the body.
type VoteRequest struct {
	PollID   int
	OptionID int
	Token    string
}

// VoteBody is the wire body of POST /polls/{id}/vote.
type VoteBody struct {
	OptionID int `json:"option_id"`
}
