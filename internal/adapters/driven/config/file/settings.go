package file

import (
	"time"

	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driven"
)

// Well-known configuration keys. All of them are optional; missing keys
// fall back to the defaults below.
const (
	KeyIndexEnabled       = "index.enabled"
	KeySearchMaxResults   = "search.max_results"
	KeySearchMinRelevance = "search.min_relevance"
	KeyMirrorEnabled      = "mirror.enabled"
	KeyMaintenanceEnabled = "maintenance.enabled"
	KeySweepMinutes       = "maintenance.sweep_interval_minutes"
	KeyStatsCheckMinutes  = "maintenance.stats_check_interval_minutes"
)

// Settings are the typed engine settings assembled from the config store.
type Settings struct {
	// IndexEnabled is the initial state of the indexing switch.
	IndexEnabled bool

	// MaxResults is the default result cap for searches that do not set one.
	MaxResults int

	// MinRelevance is the default relevance floor for searches.
	MinRelevance float64

	// MirrorEnabled controls whether writes are mirrored to the platform
	// search service.
	MirrorEnabled bool

	// Maintenance is the background maintenance schedule.
	Maintenance domain.MaintenanceConfig
}

// DefaultSettings returns the settings used when no configuration exists.
func DefaultSettings() Settings {
	return Settings{
		IndexEnabled:  true,
		MaxResults:    domain.DefaultMaxResults,
		MinRelevance:  0,
		MirrorEnabled: true,
		Maintenance:   domain.DefaultMaintenanceConfig(),
	}
}

// LoadSettings reads engine settings from the store, falling back to
// defaults for any key that is absent or mistyped.
func LoadSettings(store driven.ConfigStore) Settings {
	s := DefaultSettings()
	if store == nil {
		return s
	}

	s.IndexEnabled = boolOr(store, KeyIndexEnabled, s.IndexEnabled)
	s.MirrorEnabled = boolOr(store, KeyMirrorEnabled, s.MirrorEnabled)

	if max := store.GetInt(KeySearchMaxResults); max > 0 {
		s.MaxResults = max
	}
	if min := store.GetFloat64(KeySearchMinRelevance); min > 0 {
		s.MinRelevance = min
	}

	s.Maintenance.Enabled = boolOr(store, KeyMaintenanceEnabled, s.Maintenance.Enabled)
	if minutes := store.GetInt(KeySweepMinutes); minutes > 0 {
		s.Maintenance.TaskConfigs[domain.TaskIDExpirySweep] = domain.TaskConfig{
			Enabled:  true,
			Interval: time.Duration(minutes) * time.Minute,
		}
	}
	if minutes := store.GetInt(KeyStatsCheckMinutes); minutes > 0 {
		s.Maintenance.TaskConfigs[domain.TaskIDStatsCheck] = domain.TaskConfig{
			Enabled:  true,
			Interval: time.Duration(minutes) * time.Minute,
		}
	}

	return s
}

// boolOr distinguishes a missing key from an explicit false.
func boolOr(store driven.ConfigStore, key string, fallback bool) bool {
	if _, ok := store.Get(key); !ok {
		return fallback
	}
	return store.GetBool(key)
}
