// Package credential persists the client's auth token and user profile
// across two storage tiers: a session tier that lives for the process and a
// persistent tier on disk retained for 30 days.
//
// Callers never touch the tiers directly. The store enforces that token and
// profile always live in exactly one tier, chosen at login time from the
// remember-me preference; writing to one tier clears the other. A corrupt
// stored value reads as absent and is logged, never returned as an error.
package credential

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/portaldevagas/vagas-cli/internal/auth"
	"github.com/portaldevagas/vagas-cli/internal/log"
)

// Tier identifies which storage backend holds a value.
type Tier int

const (
	// TierNone means neither tier holds the value.
	TierNone Tier = iota
	// TierSession is the process-lifetime tier.
	TierSession
	// TierPersistent is the on-disk tier with the 30-day horizon.
	TierPersistent
)

// String returns the wire form used for the user_storage_type key.
func (t Tier) String() string {
	switch t {
	case TierSession:
		return "session"
	case TierPersistent:
		return "persistent"
	default:
		return "none"
	}
}

// Logical keys. These match the web front end's storage layout so a user's
// expectations about what is kept where carry over.
const (
	keyToken       = "auth_token"
	keyRemember    = "remember_me"
	keyProfile     = "user_data"
	keyStorageType = "user_storage_type"
	keyLoginTime   = "login_time"
)

// Store is the credential store over both tiers.
type Store struct {
	session    Backend
	persistent Backend
	logger     *log.Logger
}

// New creates a store with an in-memory session tier and a file-backed
// persistent tier rooted at dir.
func New(dir string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Store{
		session:    NewMemoryBackend(),
		persistent: NewFileBackend(dir, logger),
		logger:     logger,
	}
}

// NewWithBackends creates a store over explicit tiers. Used by tests.
func NewWithBackends(session, persistent Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Store{session: session, persistent: persistent, logger: logger}
}

// tiers returns the target and the other tier for a remember preference.
func (s *Store) tiers(remember bool) (target, other Backend) {
	if remember {
		return s.persistent, s.session
	}
	return s.session, s.persistent
}

// SaveToken writes the token into the tier implied by remember and clears
// any copy in the other tier, together with the remember preference itself.
func (s *Store) SaveToken(token string, remember bool) error {
	target, other := s.tiers(remember)
	if err := target.Set(keyToken, token); err != nil {
		return err
	}
	if err := other.Delete(keyToken); err != nil {
		return err
	}
	return s.persistent.Set(keyRemember, strconv.FormatBool(remember))
}

// LoadToken reads the token from whichever tier holds one, persistent tier
// first.
func (s *Store) LoadToken() (string, bool) {
	if token, ok := s.persistent.Get(keyToken); ok {
		return token, true
	}
	return s.session.Get(keyToken)
}

// ClearToken removes the token from both tiers and drops the remember
// preference.
func (s *Store) ClearToken() error {
	if err := s.session.Delete(keyToken); err != nil {
		return err
	}
	if err := s.persistent.Delete(keyToken); err != nil {
		return err
	}
	return s.persistent.Delete(keyRemember)
}

// RememberPreference reads the persisted remember-me flag, false if absent.
func (s *Store) RememberPreference() bool {
	v, ok := s.persistent.Get(keyRemember)
	if !ok {
		return false
	}
	remember, err := strconv.ParseBool(v)
	if err != nil {
		s.logger.Warn("remember preference unparsable, defaulting to false", "value", v)
		return false
	}
	return remember
}

// SaveProfile serializes the profile into the tier implied by remember and
// deletes any copy in the other tier.
func (s *Store) SaveProfile(profile auth.Profile, remember bool) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	target, other := s.tiers(remember)
	if err := target.Set(keyProfile, string(data)); err != nil {
		return err
	}
	tier := TierSession
	if remember {
		tier = TierPersistent
	}
	if err := target.Set(keyStorageType, tier.String()); err != nil {
		return err
	}
	if err := other.Delete(keyProfile); err != nil {
		return err
	}
	return other.Delete(keyStorageType)
}

// LoadProfile reads the stored profile, persistent tier first. A stored
// value that fails to parse is logged and treated as absent.
func (s *Store) LoadProfile() (*auth.Profile, bool) {
	for _, backend := range []Backend{s.persistent, s.session} {
		raw, ok := backend.Get(keyProfile)
		if !ok {
			continue
		}
		var profile auth.Profile
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			s.logger.WithError(err).Warn("stored profile unparsable, treating as absent")
			continue
		}
		return &profile, true
	}
	return nil, false
}

// ActiveTier reports which tier currently holds profile data.
func (s *Store) ActiveTier() Tier {
	if _, ok := s.persistent.Get(keyProfile); ok {
		return TierPersistent
	}
	if _, ok := s.session.Get(keyProfile); ok {
		return TierSession
	}
	return TierNone
}

// ClearProfile removes the profile from both tiers.
func (s *Store) ClearProfile() error {
	for _, backend := range []Backend{s.session, s.persistent} {
		if err := backend.Delete(keyProfile); err != nil {
			return err
		}
		if err := backend.Delete(keyStorageType); err != nil {
			return err
		}
	}
	return nil
}

// SetLoginTime records the login timestamp in the persistent tier. This is
// auxiliary display data, only written for remembered sessions.
func (s *Store) SetLoginTime(t time.Time) error {
	return s.persistent.Set(keyLoginTime, strconv.FormatInt(t.UnixMilli(), 10))
}

// LoginTime reads the recorded login timestamp, if any.
func (s *Store) LoginTime() (time.Time, bool) {
	v, ok := s.persistent.Get(keyLoginTime)
	if !ok {
		return time.Time{}, false
	}
	millis, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		s.logger.Warn("stored login time unparsable, treating as absent", "value", v)
		return time.Time{}, false
	}
	return time.UnixMilli(millis), true
}

// Clear wipes everything in both tiers: token, profile, remember preference
// and login time. Safe to call when already empty.
func (s *Store) Clear() error {
	if err := s.ClearToken(); err != nil {
		return err
	}
	if err := s.ClearProfile(); err != nil {
		return err
	}
	return s.persistent.Delete(keyLoginTime)
}
