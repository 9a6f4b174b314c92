package credential

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/zeebo/blake3"

	"github.com/portaldevagas/vagas-cli/internal/log"
)

// retentionHorizon is how long persistent-tier entries are kept.
const retentionHorizon = 30 * 24 * time.Hour

const credentialsFile = "credentials.json"

// fileEntry is a single persisted value with its expiry stamp.
type fileEntry struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// filePayload is the on-disk layout. The checksum covers the serialized
// entries so a truncated or hand-edited file reads as empty instead of
// feeding garbage into the session.
type filePayload struct {
	Entries  map[string]fileEntry `json:"entries"`
	Checksum string               `json:"checksum"`
}

// FileBackend is the persistent tier: a checksummed JSON file under the
// user config dir, entries retained for 30 days.
type FileBackend struct {
	mu     sync.Mutex
	dir    string
	logger *log.Logger
	now    func() time.Time
}

// NewFileBackend creates a persistent tier rooted at dir. The directory is
// created on first write, not here.
func NewFileBackend(dir string, logger *log.Logger) *FileBackend {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &FileBackend{dir: dir, logger: logger, now: time.Now}
}

func (f *FileBackend) path() string {
	return filepath.Join(f.dir, credentialsFile)
}

func checksum(entries map[string]fileEntry) string {
	// Marshal of a map is key-sorted, so the digest is stable.
	data, err := json.Marshal(entries)
	if err != nil {
		return ""
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// load reads the file and drops expired entries. A missing, unparsable, or
// checksum-mismatched file reads as empty; corruption is logged and never
// propagated.
func (f *FileBackend) load() map[string]fileEntry {
	data, err := os.ReadFile(f.path())
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.WithError(err).Warn("credential file unreadable, treating as empty", "path", f.path())
		}
		return map[string]fileEntry{}
	}

	var payload filePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		f.logger.WithError(err).Warn("credential file corrupt, treating as empty", "path", f.path())
		return map[string]fileEntry{}
	}
	if payload.Entries == nil {
		payload.Entries = map[string]fileEntry{}
	}
	if payload.Checksum != checksum(payload.Entries) {
		f.logger.Warn("credential file checksum mismatch, treating as empty", "path", f.path())
		return map[string]fileEntry{}
	}

	now := f.now()
	for key, entry := range payload.Entries {
		if now.After(entry.ExpiresAt) {
			delete(payload.Entries, key)
		}
	}
	return payload.Entries
}

func (f *FileBackend) save(entries map[string]fileEntry) error {
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return err
	}

	payload := filePayload{Entries: entries, Checksum: checksum(entries)}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path(), data, 0o600)
}

// Get returns the value for key if present and not expired.
func (f *FileBackend) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.load()[key]
	if !ok {
		return "", false
	}
	return entry.Value, true
}

// Set stores the value under key with a fresh 30-day horizon.
func (f *FileBackend) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := f.load()
	entries[key] = fileEntry{Value: value, ExpiresAt: f.now().Add(retentionHorizon)}
	return f.save(entries)
}

// Delete removes the key.
func (f *FileBackend) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := f.load()
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return f.save(entries)
}
