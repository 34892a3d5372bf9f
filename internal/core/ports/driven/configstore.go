package driven

// ConfigStore provides persistent key-value configuration.
// Keys use dotted notation, e.g. "catalog.url" or "map.fallback_lat".
type ConfigStore interface {
	// Get retrieves a raw value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" when absent.
	GetString(key string) string

	// GetFloat retrieves a float value, or 0 when absent.
	GetFloat(key string) float64

	// Set stores a value and persists it.
	Set(key string, value any) error

	// Save writes the current state to the backing store.
	Save() error

	// Load reads state from the backing store.
	Load() error
}
