// Package config loads shift balance and the anomaly catalog:
// built-in defaults, then an optional YAML file, then the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/xtding233/esslend-store/internal/anomaly"
	"github.com/xtding233/esslend-store/internal/shift"
)

// Defaults mirrors shift.DefaultConfig and anomaly.DefaultCatalog.
func Defaults() RawConfig {
	d := shift.DefaultConfig()
	chance := d.SpawnChance
	inc := d.TimeIncrement.String()
	win := d.WinThreshold.String()

	entries := anomaly.DefaultCatalog().Entries()
	catalog := make([]AnomalyEntry, len(entries))
	for i, e := range entries {
		catalog[i] = AnomalyEntry{ID: e.ID, Tier: int(e.Tier), Desc: e.Description}
	}
	return RawConfig{
		Version: "1",
		Shift: ShiftConfig{
			SpawnChance:   &chance,
			TimeIncrement: &inc,
			WinThreshold:  &win,
		},
		Catalog: catalog,
	}
}

// Load merges defaults <- file <- env. An empty path skips the file; a
// path that does not exist is an error.
func Load(path string) (RawConfig, error) {
	merged := Defaults()
	if path != "" {
		fileCfg, err := readYAML(path)
		if err != nil {
			return RawConfig{}, fmt.Errorf("read %s: %w", path, err)
		}
		merged = mergeRaw(merged, fileCfg)
	}

	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return RawConfig{}, fmt.Errorf("parse env: %w", err)
	}
	merged, err := applyEnv(merged, o)
	if err != nil {
		return RawConfig{}, err
	}

	if err := ValidateRaw(merged); err != nil {
		return RawConfig{}, err
	}
	return merged, nil
}

func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// mergeRaw returns a with every field set in b overriding it.
// A non-empty catalog in b replaces a's catalog entirely.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}
	if b.Shift.SpawnChance != nil {
		out.Shift.SpawnChance = b.Shift.SpawnChance
	}
	if b.Shift.TimeIncrement != nil {
		out.Shift.TimeIncrement = b.Shift.TimeIncrement
	}
	if b.Shift.WinThreshold != nil {
		out.Shift.WinThreshold = b.Shift.WinThreshold
	}
	if len(b.Catalog) > 0 {
		out.Catalog = append([]AnomalyEntry(nil), b.Catalog...)
	}
	return out
}

func applyEnv(cfg RawConfig, o EnvOverrides) (RawConfig, error) {
	var layer ShiftConfig
	if o.SpawnChance != "" {
		p, err := strconv.ParseFloat(o.SpawnChance, 64)
		if err != nil {
			return RawConfig{}, fmt.Errorf("ESSLEND_SPAWN_CHANCE: %w", err)
		}
		layer.SpawnChance = &p
	}
	if o.TimeIncrement != "" {
		layer.TimeIncrement = &o.TimeIncrement
	}
	if o.WinThreshold != "" {
		layer.WinThreshold = &o.WinThreshold
	}
	return mergeRaw(cfg, RawConfig{Shift: layer}), nil
}

var errMissing = errors.New("missing value")

// Resolve turns a validated RawConfig into engine types.
func Resolve(cfg RawConfig) (shift.Config, anomaly.Catalog, error) {
	if err := ValidateRaw(cfg); err != nil {
		return shift.Config{}, anomaly.Catalog{}, err
	}
	inc, err := parseDuration(cfg.Shift.TimeIncrement)
	if err != nil {
		return shift.Config{}, anomaly.Catalog{}, fmt.Errorf("shift.time_increment: %w", err)
	}
	win, err := parseDuration(cfg.Shift.WinThreshold)
	if err != nil {
		return shift.Config{}, anomaly.Catalog{}, fmt.Errorf("shift.win_threshold: %w", err)
	}
	sc := shift.Config{
		SpawnChance:   *cfg.Shift.SpawnChance,
		TimeIncrement: inc,
		WinThreshold:  win,
	}

	defs := make([]anomaly.Definition, len(cfg.Catalog))
	for i, e := range cfg.Catalog {
		defs[i] = anomaly.Definition{ID: e.ID, Tier: anomaly.Tier(e.Tier), Description: e.Desc}
	}
	catalog, err := anomaly.NewCatalog(defs...)
	if err != nil {
		return shift.Config{}, anomaly.Catalog{}, err
	}
	return sc, catalog, nil
}
