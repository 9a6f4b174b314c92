package platform

import (
	"context"
	"fmt"
	"net/http"

	"github.com/portaldevagas/vagas-cli/internal/auth"
	"github.com/portaldevagas/vagas-cli/internal/errors"
)

// FetchProfile retrieves the profile for a user from the role-specific
// collection endpoint.
func (c *Client) FetchProfile(ctx context.Context, role auth.Role, userID string) (*auth.Profile, error) {
	base, err := role.ProfilePath()
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s/%s", base, userID), nil)
	if err != nil {
		return nil, err
	}

	var profile auth.Profile
	if err := parseResponse(resp, &profile); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAuthProfileFetch, "failed to fetch profile", err)
	}

	return &profile, nil
}

// UpdateProfile sends a partial profile update and returns the updated
// profile as the backend sees it.
func (c *Client) UpdateProfile(ctx context.Context, role auth.Role, userID string, patch auth.ProfilePatch) (*auth.Profile, error) {
	base, err := role.ProfilePath()
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("%s/%s", base, userID), patch)
	if err != nil {
		return nil, err
	}

	var profile auth.Profile
	if err := parseResponse(resp, &profile); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAuthProfileFetch, "failed to update profile", err)
	}

	return &profile, nil
}
