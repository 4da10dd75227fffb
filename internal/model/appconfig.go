package model

// AppConfig holds application-wide preferences.
type AppConfig struct {
	// BusyFile overrides the default busy file location when non-empty.
	BusyFile string `json:"busy_file"`

	// MaxAttempts caps the placement sampler's retry loop. Zero or
	// negative disables the cap.
	MaxAttempts int `json:"max_attempts"`

	// DefaultVerbosity is the log verbosity used when the command line
	// does not set one (0 = errors only, 3 = debug).
	DefaultVerbosity int `json:"default_verbosity"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		BusyFile:         "",
		MaxAttempts:      100000,
		DefaultVerbosity: 0,
	}
}
