package domain

// Store handles the local persisted slots (BoltDB + memory).
// Every write is an atomic overwrite of one named slot.
// Reads return false when the slot is absent or cannot be decoded.
type Store interface {
	// === Daily cache ===
	GetDailyEntry() (DailyEntry, bool)
	SaveDailyEntry(entry DailyEntry) error

	// === Favorites ===
	GetFavorites() ([]Artwork, bool)
	SaveFavorites(favorites []Artwork) error

	// === Preferences ===
	GetPreferences() (Preferences, bool)
	SavePreferences(prefs Preferences) error

	// === Invalidation ===
	InvalidateDaily()
	InvalidateAll()

	Close() error
}
