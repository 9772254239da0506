package types

import "github.com/go-openapi/strfmt"

// ------------------------------
// Typed schema views
// ------------------------------
//
// The SDK returns payloads as Object. These structs mirror the Polly-API
// OpenAPI schemas for callers that want typed access via Object.Decode.
// Timestamps use strfmt.DateTime, which also accepts the timezone-less
// ISO 8601 form some servers emit.

// UserOut mirrors the UserOut schema
type UserOut struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// OptionOut mirrors the OptionOut schema
type OptionOut struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	PollID int    `json:"poll_id"`
}

// PollOut mirrors the PollOut schema
type PollOut struct {
	ID        int             `json:"id"`
	Question  string          `json:"question"`
	CreatedAt strfmt.DateTime `json:"created_at"`
	OwnerID   int             `json:"owner_id"`
	Options   []OptionOut     `json:"options"`
}

// VoteOut mirrors the VoteOut schema
type VoteOut struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	OptionID  int             `json:"option_id"`
	CreatedAt strfmt.DateTime `json:"created_at"`
}

// OptionResult is one row of PollResults
type OptionResult struct {
	OptionID  int    `json:"option_id"`
	Text      string `json:"text"`
	VoteCount int    `json:"vote_count"`
}

// PollResultsOut mirrors the PollResults schema
type PollResultsOut struct {
	PollID   int            `json:"poll_id"`
	Question string         `json:"question"`
	Results  []OptionResult `json:"results"`
}
