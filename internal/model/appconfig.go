package model

// Project store backends.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// DefaultMaxRooms caps how many rooms a single budget may hold.
const DefaultMaxRooms = 30

// DefaultValidityDays is how long a budget is valid after it is shared.
const DefaultValidityDays = 10

// AppConfig holds application-wide preferences.
type AppConfig struct {
	MaxRooms       int      `json:"max_rooms"`
	ValidityDays   int      `json:"validity_days"`
	StoreBackend   string   `json:"store_backend"` // "json" or "sqlite"
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		MaxRooms:       DefaultMaxRooms,
		ValidityDays:   DefaultValidityDays,
		StoreBackend:   StoreJSON,
		RecentProjects: []string{},
	}
}

// Normalize replaces zero or unknown values with their defaults.
func (c AppConfig) Normalize() AppConfig {
	if c.MaxRooms <= 0 {
		c.MaxRooms = DefaultMaxRooms
	}
	if c.ValidityDays <= 0 {
		c.ValidityDays = DefaultValidityDays
	}
	if c.StoreBackend != StoreSQLite {
		c.StoreBackend = StoreJSON
	}
	if c.RecentProjects == nil {
		c.RecentProjects = []string{}
	}
	return c
}

// TouchRecent moves id to the front of the recent project list, keeping at most limit entries.
func (c *AppConfig) TouchRecent(id string, limit int) {
	out := []string{id}
	for _, existing := range c.RecentProjects {
		if existing != id {
			out = append(out, existing)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	c.RecentProjects = out
}
