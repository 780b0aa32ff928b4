// Package shift drives a night shift: each loop may hide an anomaly, the
// player judges it, and the clock advances on correct calls or resets to
// 00:00 on a wrong one. The package does no I/O; every transition returns
// the effects the host has to apply.
package shift

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xtding233/esslend-store/internal/anomaly"
	"github.com/xtding233/esslend-store/internal/chance"
)

var (
	ErrShiftNotStarted = errors.New("shift has not started")
	ErrShiftComplete   = errors.New("shift is already complete")
)

// Status is the coarse machine state.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusActive   Status = "active"
	StatusComplete Status = "complete"
)

// State is the per-shift state. It is rebuilt from scratch on every
// shift start.
type State struct {
	Status        Status
	Elapsed       time.Duration
	CorrectCount  int
	AnomalyActive bool
	Anomaly       anomaly.Definition // zero unless AnomalyActive
	Loop          int                // loops prepared in this shift
}

// Machine is the shift state machine. It is not safe for concurrent use;
// the host drives it from a single loop.
type Machine struct {
	id       string
	cfg      Config
	selector *anomaly.Selector
	rng      chance.RandomSource
	log      *zap.Logger

	onComplete []func(State)

	state  State
	resets int
}

type Option func(*Machine)

// WithRNG sets the source used for the per-loop spawn roll.
func WithRNG(rng chance.RandomSource) Option {
	return func(m *Machine) { m.rng = rng }
}

func WithLogger(log *zap.Logger) Option {
	return func(m *Machine) { m.log = log }
}

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(m *Machine) { m.id = id }
}

// New builds an idle machine. A nil selector draws from the default catalog.
func New(cfg Config, selector *anomaly.Selector, opts ...Option) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Machine{cfg: cfg, selector: selector}
	for _, opt := range opts {
		opt(m)
	}
	if m.id == "" {
		m.id = uuid.NewString()
	}
	if m.rng == nil {
		m.rng = chance.DefaultRNG()
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	m.log = m.log.With(zap.String("shift_session", m.id))
	if m.selector == nil {
		m.selector = anomaly.NewSelector(anomaly.DefaultCatalog(), m.rng, m.log)
	}
	m.state = State{Status: StatusIdle}
	return m, nil
}

func (m *Machine) ID() string     { return m.id }
func (m *Machine) Config() Config { return m.cfg }

// OnComplete registers fn to run once the shift is won.
func (m *Machine) OnComplete(fn func(State)) {
	m.onComplete = append(m.onComplete, fn)
}

// StartNewShift resets the clock and the correct counter and prepares the
// first loop. It fails once the shift has been won.
func (m *Machine) StartNewShift() ([]Effect, error) {
	if m.state.Status == StatusComplete {
		return nil, ErrShiftComplete
	}
	return m.startShift(), nil
}

func (m *Machine) startShift() []Effect {
	m.state = State{Status: StatusActive}
	m.log.Info("new shift started", zap.String("time", m.TimeString()))
	effs := []Effect{{Kind: EffectShiftStarted, Time: m.TimeString()}}
	return append(effs, m.prepareNextLoop()...)
}

// PrepareNextLoop rolls whether the next loop hides an anomaly and draws
// one if so. It does nothing unless a shift is active.
func (m *Machine) PrepareNextLoop() []Effect {
	if m.state.Status != StatusActive {
		m.log.Warn("loop preparation ignored", zap.String("status", string(m.state.Status)))
		return nil
	}
	return m.prepareNextLoop()
}

func (m *Machine) prepareNextLoop() []Effect {
	m.state.Loop++
	m.state.AnomalyActive = false
	m.state.Anomaly = anomaly.Definition{}

	spawn, err := chance.Roll(m.cfg.SpawnChance, m.rng)
	if err != nil || !spawn {
		m.log.Debug("loop prepared without anomaly", zap.Int("loop", m.state.Loop))
		return []Effect{{Kind: EffectLoopClear, Time: m.TimeString()}}
	}

	def, err := m.selector.Draw()
	if err != nil {
		m.log.Warn("anomaly draw failed, loop treated as clear",
			zap.Int("loop", m.state.Loop), zap.Error(err))
		return []Effect{{Kind: EffectDrawFailed, Time: m.TimeString()}}
	}

	m.state.AnomalyActive = true
	m.state.Anomaly = def
	m.log.Debug("loop prepared with anomaly",
		zap.Int("loop", m.state.Loop), zap.String("anomaly", def.ID))
	return []Effect{{Kind: EffectAnomalySpawned, Anomaly: def, Time: m.TimeString()}}
}

// ProcessPlayerDecision judges the player's report against the current
// loop. A correct call advances the clock, possibly ending the shift; a
// wrong one restarts the shift from 00:00.
func (m *Machine) ProcessPlayerDecision(reported bool) ([]Effect, error) {
	switch m.state.Status {
	case StatusIdle:
		return nil, ErrShiftNotStarted
	case StatusComplete:
		return nil, ErrShiftComplete
	}

	correct := reported == m.state.AnomalyActive
	m.log.Info("player decision",
		zap.Bool("reported", reported),
		zap.Bool("anomaly_active", m.state.AnomalyActive),
		zap.Bool("correct", correct),
	)

	if !correct {
		m.resets++
		m.log.Info("incorrect decision, resetting shift", zap.String("from", m.TimeString()))
		effs := []Effect{{Kind: EffectShiftReset, Time: m.TimeString()}}
		return append(effs, m.startShift()...), nil
	}

	m.state.CorrectCount++
	m.state.Elapsed += m.cfg.TimeIncrement
	effs := []Effect{{Kind: EffectTimeAdvanced, Time: m.TimeString()}}
	m.log.Info("correct decision",
		zap.String("time", m.TimeString()), zap.Int("correct", m.state.CorrectCount))

	if m.state.Elapsed >= m.cfg.WinThreshold {
		return append(effs, m.complete()), nil
	}
	return append(effs, m.prepareNextLoop()...), nil
}

func (m *Machine) complete() Effect {
	m.state.Status = StatusComplete
	m.state.AnomalyActive = false
	m.state.Anomaly = anomaly.Definition{}
	m.log.Info("shift complete", zap.String("time", m.TimeString()), zap.Int("resets", m.resets))
	snap := m.state
	for _, fn := range m.onComplete {
		fn(snap)
	}
	return Effect{Kind: EffectShiftComplete, Time: m.TimeString()}
}

// TimeString is the HUD clock, e.g. "01:10".
func (m *Machine) TimeString() string { return FormatClock(m.state.Elapsed) }

// StatusLabel is the HUD anomaly status.
func (m *Machine) StatusLabel() string {
	if m.state.AnomalyActive {
		return "DETECTED"
	}
	return "CLEAR"
}

func (m *Machine) AnomalyActive() bool    { return m.state.AnomalyActive }
func (m *Machine) CorrectCount() int      { return m.state.CorrectCount }
func (m *Machine) Elapsed() time.Duration { return m.state.Elapsed }
func (m *Machine) Status() Status         { return m.state.Status }
func (m *Machine) Complete() bool         { return m.state.Status == StatusComplete }

// Resets counts penalty resets over the machine's lifetime.
func (m *Machine) Resets() int { return m.resets }

// CurrentAnomaly returns the anomaly hidden in the current loop.
func (m *Machine) CurrentAnomaly() (anomaly.Definition, bool) {
	return m.state.Anomaly, m.state.AnomalyActive
}

func (m *Machine) Snapshot() State { return m.state }
