package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrValidation = errors.New("config validation failed")

// ValidateRaw checks semantic constraints of a RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	// shift.spawn_chance
	if cfg.Shift.SpawnChance == nil {
		errs = append(errs, "shift.spawn_chance is required")
	} else if p := *cfg.Shift.SpawnChance; !(p >= 0 && p <= 1) {
		errs = append(errs, "shift.spawn_chance must be in [0,1]")
	}

	// durations
	if _, err := parseDuration(cfg.Shift.TimeIncrement); err != nil {
		errs = append(errs, fmt.Sprintf("shift.time_increment: %v", err))
	}
	if _, err := parseDuration(cfg.Shift.WinThreshold); err != nil {
		errs = append(errs, fmt.Sprintf("shift.win_threshold: %v", err))
	}

	// catalog; empty is legal, every loop will then be clear
	seen := make(map[string]bool, len(cfg.Catalog))
	for i, e := range cfg.Catalog {
		if strings.TrimSpace(e.ID) == "" {
			errs = append(errs, fmt.Sprintf("catalog[%d].id is required", i))
			continue
		}
		if seen[e.ID] {
			errs = append(errs, fmt.Sprintf("catalog[%d].id %q is duplicated", i, e.ID))
		}
		seen[e.ID] = true
		if e.Tier < 1 {
			errs = append(errs, fmt.Sprintf("catalog[%d].tier must be >= 1", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, "; "))
	}
	return nil
}

func parseDuration(s *string) (time.Duration, error) {
	if s == nil {
		return 0, errMissing
	}
	d, err := time.ParseDuration(*s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be > 0, got %s", d)
	}
	return d, nil
}
