// Package session owns the client's authentication state: who is logged in,
// with which token and profile, and in which storage tier the credentials
// live. It is constructed once at application root and passed to whatever
// needs it; there is no ambient global session.
//
// State changes are pushed to subscribers synchronously, which is how route
// guards re-evaluate access whenever the session changes.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/portaldevagas/vagas-cli/internal/auth"
	"github.com/portaldevagas/vagas-cli/internal/credential"
	"github.com/portaldevagas/vagas-cli/internal/log"
)

// ProfileAPI is the profile-fetch collaborator, implemented by the platform
// client.
type ProfileAPI interface {
	// FetchProfile retrieves the role-shaped profile for a user.
	FetchProfile(ctx context.Context, role auth.Role, userID string) (*auth.Profile, error)
}

// Controller is the session controller.
//
// Lifecycle: construction leaves the state loading; Hydrate runs exactly
// once per process and resolves it to authenticated or anonymous from the
// credential store. After that, Login and Logout are the only transitions.
type Controller struct {
	store  *credential.Store
	api    ProfileAPI
	nav    auth.Navigator
	logger *log.Logger
	now    func() time.Time

	hydrateOnce sync.Once

	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
}

// NewController creates a controller in the loading state.
func NewController(store *credential.Store, api ProfileAPI, nav auth.Navigator, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Controller{
		store:  store,
		api:    api,
		nav:    nav,
		logger: logger,
		now:    time.Now,
		state:  State{Loading: true},
		subs:   make(map[int]func(State)),
	}
}

// State returns a snapshot of the session.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Authenticated reports whether the session is live.
func (c *Controller) Authenticated() bool {
	return c.State().Authenticated()
}

// Subscribe registers fn to be called synchronously on every state change.
// The returned function removes the subscription.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// setState replaces the state and notifies subscribers outside the lock.
func (c *Controller) setState(state State) {
	c.mu.Lock()
	c.state = state
	subs := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// Hydrate resolves the initial loading state from the credential store.
// It runs exactly once per process; later calls are no-ops.
//
// Both token and profile must be present for the session to come back
// authenticated. A partial or unreadable pair is treated as no session:
// both stores are cleared and the state resolves anonymous.
func (c *Controller) Hydrate() {
	c.hydrateOnce.Do(func() {
		token, tokenOK := c.store.LoadToken()
		profile, profileOK := c.store.LoadProfile()

		if tokenOK && profileOK {
			c.logger.Debug("session hydrated", "role", string(profile.Role), "user_id", profile.ID)
			c.setState(State{Token: token, Profile: profile})
			return
		}

		if tokenOK || profileOK {
			// Half a session is corruption; wipe it rather than limp along.
			c.logger.Warn("partial session in storage, clearing", "token", tokenOK, "profile", profileOK)
			if err := c.store.Clear(); err != nil {
				c.logger.WithError(err).Warn("clearing partial session failed")
			}
		}
		c.setState(State{})
	})
}

// Login establishes a session from an exchanged token.
//
// The token is persisted before the profile fetch so the fetch can
// authenticate itself; the state transition happens only after the fetch
// resolves. On any failure the login fully unwinds: in-memory state and
// both storage tiers end up empty, exactly as after a logout.
func (c *Controller) Login(ctx context.Context, claims *auth.TokenClaims, token string, remember bool) error {
	if !claims.Role.Known() {
		c.unwind()
		return auth.NewError(auth.ErrRoleUnknown, "login rejected: unknown role", map[string]interface{}{
			"role": string(claims.Role),
		})
	}

	if err := c.store.SaveToken(token, remember); err != nil {
		c.unwind()
		return auth.WrapError(auth.ErrStorageUnavailable, "failed to persist token", err, nil)
	}

	profile, err := c.api.FetchProfile(ctx, claims.Role, claims.UserID)
	if err != nil {
		c.logger.WithError(err).Warn("profile fetch failed, unwinding login", "role", string(claims.Role))
		c.unwind()
		return auth.WrapError(auth.ErrProfileFetchFailed, "failed to fetch profile", err, map[string]interface{}{
			"role":    string(claims.Role),
			"user_id": claims.UserID,
		})
	}

	if err := c.store.SaveProfile(*profile, remember); err != nil {
		c.unwind()
		return auth.WrapError(auth.ErrStorageUnavailable, "failed to persist profile", err, nil)
	}
	if remember {
		if err := c.store.SetLoginTime(c.now()); err != nil {
			// Auxiliary display data; a failed write is not a failed login.
			c.logger.WithError(err).Warn("failed to record login time")
		}
	}

	c.logger.Info("login", "role", string(claims.Role), "user_id", profile.ID, "remember", remember)
	c.setState(State{Token: token, Profile: profile})
	c.nav.Navigate(claims.Role.Landing())
	return nil
}

// Logout clears the session and navigates to the login route. Idempotent:
// logging out an anonymous session only performs the navigation.
func (c *Controller) Logout() {
	c.unwind()
	c.nav.Navigate(auth.RouteLogin)
}

// unwind clears in-memory state and both storage tiers, without navigating.
func (c *Controller) unwind() {
	if err := c.store.Clear(); err != nil {
		c.logger.WithError(err).Warn("clearing credential store failed")
	}
	c.setState(State{})
}

// UpdateProfile merges a partial record into the current profile and
// re-persists it under the tier the profile already lives in. Anonymous
// sessions ignore the call.
//
// This is a display-state convenience: it never talks to the network, and
// callers persist to the backend separately.
func (c *Controller) UpdateProfile(patch auth.ProfilePatch) {
	c.mu.Lock()
	current := c.state
	c.mu.Unlock()

	if current.Profile == nil {
		return
	}

	merged := current.Profile.Apply(patch)

	// The tier is read back from the store, never re-derived from a
	// remember input, so an update can't silently migrate the session.
	tier := c.store.ActiveTier()
	remember := tier == credential.TierPersistent
	if tier == credential.TierNone {
		remember = c.store.RememberPreference()
	}
	if err := c.store.SaveProfile(merged, remember); err != nil {
		c.logger.WithError(err).Warn("failed to re-persist updated profile")
	}

	c.setState(State{Token: current.Token, Profile: &merged})
}
