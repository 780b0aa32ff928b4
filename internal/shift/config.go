package shift

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xtding233/esslend-store/internal/chance"
)

var ErrInvalidConfig = errors.New("invalid shift config")

// Config holds the balance settings of a shift.
type Config struct {
	SpawnChance   float64       // probability that a loop contains an anomaly
	TimeIncrement time.Duration // clock advance per correct decision
	WinThreshold  time.Duration // clock value that ends the shift
}

// DefaultConfig is the store's night shift: 8 correct calls of 35 minutes
// reach 04:40.
func DefaultConfig() Config {
	return Config{
		SpawnChance:   0.75,
		TimeIncrement: 35 * time.Minute,
		WinThreshold:  4*time.Hour + 40*time.Minute,
	}
}

func (c Config) Validate() error {
	var errs []string
	if err := chance.ValidateProb(c.SpawnChance); err != nil {
		errs = append(errs, "spawn_chance must be in [0,1]")
	}
	if c.TimeIncrement <= 0 {
		errs = append(errs, "time_increment must be > 0")
	}
	if c.WinThreshold <= 0 {
		errs = append(errs, "win_threshold must be > 0")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

// DecisionsToWin is the number of consecutive correct decisions a shift needs.
func (c Config) DecisionsToWin() int {
	if c.TimeIncrement <= 0 {
		return 0
	}
	n := int(c.WinThreshold / c.TimeIncrement)
	if time.Duration(n)*c.TimeIncrement < c.WinThreshold {
		n++
	}
	return n
}
