package session

import "github.com/portaldevagas/vagas-cli/internal/auth"

// State is a snapshot of the session.
//
// Loading is true only while the initial hydration pass has not finished;
// it never becomes true again for the lifetime of the process.
type State struct {
	// Token is the bearer token, empty when anonymous.
	Token string

	// Profile is the role-shaped user record, nil when anonymous.
	Profile *auth.Profile

	// Loading reports whether hydration is still pending.
	Loading bool
}

// Authenticated reports whether the session holds both a token and a
// profile. Either one alone is not a session.
func (s State) Authenticated() bool {
	return s.Token != "" && s.Profile != nil
}

// Role returns the role of the current profile, or the empty role when
// anonymous.
func (s State) Role() auth.Role {
	if s.Profile == nil {
		return ""
	}
	return s.Profile.Role
}
