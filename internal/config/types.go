package config

// RawConfig is the YAML document as loaded. Pointer fields distinguish
// "unset" from zero so layers can be merged.
type RawConfig struct {
	Version string         `yaml:"version"`
	Shift   ShiftConfig    `yaml:"shift"`
	Catalog []AnomalyEntry `yaml:"catalog,omitempty"`
	Notes   string         `yaml:"notes,omitempty"`
}

type ShiftConfig struct {
	SpawnChance   *float64 `yaml:"spawn_chance"`
	TimeIncrement *string  `yaml:"time_increment"` // Go duration, e.g. "35m"
	WinThreshold  *string  `yaml:"win_threshold"`  // Go duration, e.g. "4h40m"
}

type AnomalyEntry struct {
	ID   string `yaml:"id"`
	Tier int    `yaml:"tier"`
	Desc string `yaml:"desc"`
}

// EnvOverrides are applied on top of the file. Empty means unset.
type EnvOverrides struct {
	SpawnChance   string `env:"ESSLEND_SPAWN_CHANCE"`
	TimeIncrement string `env:"ESSLEND_TIME_INCREMENT"`
	WinThreshold  string `env:"ESSLEND_WIN_THRESHOLD"`
}
