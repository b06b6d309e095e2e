package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/mmcdole/dailyart/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketSlots = []byte("slots")
)

// Slot keys. Each slot holds exactly one value and is overwritten whole.
const (
	slotDaily       = "daily"
	slotFavorites   = "favorites"
	slotPreferences = "preferences"
)

// SlotStore implements domain.Store using BoltDB.
type SlotStore struct {
	db     *bolt.DB
	logger *slog.Logger
	mu     sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

var _ domain.Store = (*SlotStore)(nil)

// NewSlotStore opens (or creates) the slot database under baseDir. Data for
// different collection sources lives in separate subdirectories so favorites
// keyed by one source's IDs never mix with another's.
// An empty baseDir yields a memory-only store.
func NewSlotStore(baseDir, sourceURL string, logger *slog.Logger) (*SlotStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if baseDir == "" {
		// Memory-only mode (no persistence)
		return &SlotStore{logger: logger, cache: make(map[string][]byte)}, nil
	}

	dir := baseDir
	if sourceURL != "" {
		dir = filepath.Join(baseDir, hashSourceURL(sourceURL))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "dailyart.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSlots)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SlotStore{db: db, logger: logger, cache: make(map[string][]byte)}, nil
}

// NewMemoryStore returns a store that never touches disk
func NewMemoryStore() *SlotStore {
	s, _ := NewSlotStore("", "", nil)
	return s
}

func hashSourceURL(sourceURL string) string {
	normalized := strings.TrimRight(strings.ToLower(sourceURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

func (s *SlotStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

// get decodes a slot into dest. A slot that fails to decode is reported as
// absent so callers fall back to their defaults.
func (s *SlotStore) get(key string, dest interface{}) bool {
	data, ok := s.raw(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn("discarding unreadable slot",
			"slot", key,
			"error", fmt.Errorf("%w: %v", domain.ErrMalformedStorage, err),
		)
		return false
	}
	return true
}

func (s *SlotStore) raw(key string) ([]byte, bool) {
	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return data, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil, false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSlots)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return nil, false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return data, true
}

func (s *SlotStore) set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.setRaw(key, data)
}

func (s *SlotStore) setRaw(key string, data []byte) error {
	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketSlots)
			return b.Put([]byte(key), data)
		})
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()
	return nil
}

func (s *SlotStore) delete(key string) {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSlots)
		if b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

// === Daily cache ===

func (s *SlotStore) GetDailyEntry() (domain.DailyEntry, bool) {
	var entry domain.DailyEntry
	ok := s.get(slotDaily, &entry)
	return entry, ok
}

func (s *SlotStore) SaveDailyEntry(entry domain.DailyEntry) error {
	return s.set(slotDaily, entry)
}

func (s *SlotStore) InvalidateDaily() {
	s.delete(slotDaily)
}

// === Favorites ===

func (s *SlotStore) GetFavorites() ([]domain.Artwork, bool) {
	var favs []domain.Artwork
	ok := s.get(slotFavorites, &favs)
	return favs, ok
}

func (s *SlotStore) SaveFavorites(favorites []domain.Artwork) error {
	if favorites == nil {
		favorites = []domain.Artwork{}
	}
	return s.set(slotFavorites, favorites)
}

// === Preferences ===

func (s *SlotStore) GetPreferences() (domain.Preferences, bool) {
	var prefs domain.Preferences
	ok := s.get(slotPreferences, &prefs)
	return prefs, ok
}

func (s *SlotStore) SavePreferences(prefs domain.Preferences) error {
	return s.set(slotPreferences, prefs)
}

// === Invalidation ===

func (s *SlotStore) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSlots)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.First() {
			if err := c.Delete(); err != nil {
				return err
			}
		}
		return nil
	})
}
