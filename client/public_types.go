package client

import "github.com/MauriceNgicho/Polly-API/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Payloads, returned exactly as the server sent them
	Object      = types.Object
	User        = types.User
	Poll        = types.Poll
	VoteResult  = types.VoteResult
	PollResults = types.PollResults

	// Typed views for Object.Decode and Decode
	UserOut        = types.UserOut
	OptionOut      = types.OptionOut
	PollOut        = types.PollOut
	VoteOut        = types.VoteOut
	OptionResult   = types.OptionResult
	PollResultsOut = types.PollResultsOut

	// Transport plumbing
	Transport = types.Transport
	Response  = types.Response
)

// Decode converts any payload value, such as a Poll, into one of the typed
// views. A shape mismatch is an ErrProtocol error.
func Decode(value, out any) error { return types.DecodeValue(value, out) }

// Errors re-exported in errors.go
