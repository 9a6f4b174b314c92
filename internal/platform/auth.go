package platform

import (
	"context"
	"net/http"

	"github.com/portaldevagas/vagas-cli/internal/errors"
)

// LoginRequest carries the credentials for a token exchange.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Senha      string `json:"senha"`
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for an access token. The token is NOT stored
// on the client; callers decide where it goes.
func (c *Client) Login(ctx context.Context, identifier, senha string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", LoginRequest{
		Identifier: identifier,
		Senha:      senha,
	})
	if err != nil {
		return "", err
	}

	var loginResp LoginResponse
	if err := parseResponse(resp, &loginResp); err != nil {
		if statusErr, ok := err.(*StatusError); ok {
			if statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden {
				return "", errors.NewInvalidCredentialsError()
			}
			return "", errors.Wrap(errors.ErrCodeAPIStatus, "login failed", statusErr)
		}
		return "", err
	}

	return loginResp.Token, nil
}
