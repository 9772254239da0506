package types

import apierrors "github.com/MauriceNgicho/Polly-API/client/internal/errors"

// Validate checks that both credentials are present.
func (c Credentials) Validate(op string) error {
	if c.Username == "" {
		return apierrors.NewInvalidArgument(op, "username must be a non-empty string")
	}
	if c.Password == "" {
		return apierrors.NewInvalidArgument(op, "password must be a non-empty string")
	}
	return nil
}

// Validate checks pagination bounds.
func (p PageRequest) Validate(op string) error {
	if p.Skip < 0 {
		return apierrors.NewInvalidArgument(op, "skip must be a non-negative integer, got %d", p.Skip)
	}
	if p.Limit <= 0 {
		return apierrors.NewInvalidArgument(op, "limit must be a positive integer, got %d", p.Limit)
	}
	return nil
}

// Validate checks identifiers and token.
func (v VoteRequest) Validate(op string) error {
	if err := ValidatePollID(op, v.PollID); err != nil {
		return err
	}
	if v.OptionID <= 0 {
		return apierrors.NewInvalidArgument(op, "option id must be a positive integer, got %d", v.OptionID)
	}
	if v.Token == "" {
		return apierrors.NewInvalidArgument(op, "token must be a non-empty string")
	}
	return nil
}

// ValidatePollID rejects non-positive poll identifiers.
func ValidatePollID(op string, pollID int) error {
	if pollID <= 0 {
		return apierrors.NewInvalidArgument(op, "poll id must be a positive integer, got %d", pollID)
	}
	return nil
}
