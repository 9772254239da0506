package api

import (
	"context"
	"fmt"
	"net/http"

	apierrors "github.com/MauriceNgicho/Polly-API/client/internal/errors"
	"github.com/MauriceNgicho/Polly-API/client/internal/types"
)

// OpRegister names the registration operation in errors, logs and metrics.
const OpRegister = "register"

// Register creates a new user via POST /register.
func Register(ctx context.Context, e Endpoint, creds types.Credentials) (types.User, error) {
	if err := creds.Validate(OpRegister); err != nil {
		return nil, err
	}

	resp, err := e.postJSON(ctx, OpRegister, "/register", creds, e.headers())
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeObject(OpRegister, resp, "user")
	case http.StatusBadRequest:
		msg := errorDetail(resp.Body)
		if msg == "" {
			msg = string(resp.Body)
		}
		return nil, apierrors.NewStatusError(OpRegister, resp.StatusCode, resp.Body,
			fmt.Sprintf("registration failed (400): %s", msg))
	default:
		return nil, apierrors.NewHTTPError(OpRegister, resp.StatusCode, resp.Body)
	}
}
