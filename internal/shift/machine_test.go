package shift

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xtding233/esslend-store/internal/anomaly"
	"github.com/xtding233/esslend-store/internal/chance"
)

// scriptedRNG replays floats for the spawn roll and always picks index 0.
type scriptedRNG struct {
	floats []float64
	pos    int
}

func (r *scriptedRNG) Float64() float64 {
	v := r.floats[len(r.floats)-1]
	if r.pos < len(r.floats) {
		v = r.floats[r.pos]
		r.pos++
	}
	return v
}

func (r *scriptedRNG) IntN(int) int { return 0 }

func newMachine(t *testing.T, cfg Config, rng chance.RandomSource, catalog anomaly.Catalog) *Machine {
	t.Helper()
	sel := anomaly.NewSelector(catalog, chance.NewSeededRNG(5), nil)
	m, err := New(cfg, sel, WithRNG(rng), WithID("test"))
	require.NoError(t, err)
	return m
}

func alwaysAnomaly() Config {
	cfg := DefaultConfig()
	cfg.SpawnChance = 1
	return cfg
}

func neverAnomaly() Config {
	cfg := DefaultConfig()
	cfg.SpawnChance = 0
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{}, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewDefaults(t *testing.T) {
	m, err := New(DefaultConfig(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID())
	assert.Equal(t, StatusIdle, m.Status())
	assert.Equal(t, "00:00", m.TimeString())
}

func TestStartNewShift(t *testing.T) {
	m := newMachine(t, alwaysAnomaly(), chance.NewSeededRNG(1), anomaly.DefaultCatalog())
	effs, err := m.StartNewShift()
	require.NoError(t, err)

	require.Len(t, effs, 2)
	assert.Equal(t, EffectShiftStarted, effs[0].Kind)
	assert.Equal(t, "00:00", effs[0].Time)
	assert.Equal(t, EffectAnomalySpawned, effs[1].Kind)
	assert.NotEmpty(t, effs[1].Anomaly.ID)

	assert.Equal(t, StatusActive, m.Status())
	assert.True(t, m.AnomalyActive())
	assert.Equal(t, "DETECTED", m.StatusLabel())
	got, ok := m.CurrentAnomaly()
	assert.True(t, ok)
	assert.Equal(t, effs[1].Anomaly, got)
}

func TestPrepareNextLoopSpawnRoll(t *testing.T) {
	rng := &scriptedRNG{floats: []float64{0.75, 0.9, 0.1}}
	m := newMachine(t, DefaultConfig(), rng, anomaly.DefaultCatalog())

	effs, err := m.StartNewShift()
	require.NoError(t, err)
	// 0.75 <= 0.75 spawns
	assert.Equal(t, []EffectKind{EffectShiftStarted, EffectAnomalySpawned}, Kinds(effs))
	assert.True(t, m.AnomalyActive())

	effs = m.PrepareNextLoop()
	assert.Equal(t, []EffectKind{EffectLoopClear}, Kinds(effs))
	assert.False(t, m.AnomalyActive())
	_, ok := m.CurrentAnomaly()
	assert.False(t, ok)
	assert.Equal(t, "CLEAR", m.StatusLabel())

	effs = m.PrepareNextLoop()
	assert.Equal(t, []EffectKind{EffectAnomalySpawned}, Kinds(effs))
	assert.Equal(t, 3, m.Snapshot().Loop)
}

func TestPrepareNextLoopIgnoredWhenIdle(t *testing.T) {
	m := newMachine(t, alwaysAnomaly(), chance.NewSeededRNG(1), anomaly.DefaultCatalog())
	assert.Nil(t, m.PrepareNextLoop())
	assert.False(t, m.AnomalyActive())
}

func TestEmptyCatalogDegradesToClearLoop(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sel := anomaly.NewSelector(anomaly.Catalog{}, nil, nil)
	m, err := New(alwaysAnomaly(), sel, WithLogger(zap.New(core)))
	require.NoError(t, err)

	effs, err := m.StartNewShift()
	require.NoError(t, err)
	assert.Equal(t, []EffectKind{EffectShiftStarted, EffectDrawFailed}, Kinds(effs))
	assert.False(t, m.AnomalyActive())
	assert.Equal(t, 1, logs.FilterMessage("anomaly draw failed, loop treated as clear").Len())

	// the loop still progresses: reporting "no anomaly" is correct
	effs, err = m.ProcessPlayerDecision(false)
	require.NoError(t, err)
	assert.Equal(t, []EffectKind{EffectTimeAdvanced, EffectDrawFailed}, Kinds(effs))
	assert.Equal(t, 1, m.CorrectCount())
}

func TestDecisionScenario(t *testing.T) {
	m := newMachine(t, alwaysAnomaly(), chance.NewSeededRNG(1), anomaly.DefaultCatalog())
	_, err := m.StartNewShift()
	require.NoError(t, err)
	require.True(t, m.AnomalyActive())

	effs, err := m.ProcessPlayerDecision(true)
	require.NoError(t, err)
	assert.Equal(t, []EffectKind{EffectTimeAdvanced, EffectAnomalySpawned}, Kinds(effs))
	assert.Equal(t, 1, m.CorrectCount())
	assert.Equal(t, "00:35", m.TimeString())

	effs, err = m.ProcessPlayerDecision(false)
	require.NoError(t, err)
	assert.Equal(t, []EffectKind{EffectShiftReset, EffectShiftStarted, EffectAnomalySpawned}, Kinds(effs))
	assert.Equal(t, "00:35", effs[0].Time)
	assert.Equal(t, "00:00", m.TimeString())
	assert.Equal(t, 0, m.CorrectCount())
	assert.Equal(t, 1, m.Resets())
	assert.Equal(t, StatusActive, m.Status())
}

func TestWinOnEighthCorrectDecision(t *testing.T) {
	m := newMachine(t, neverAnomaly(), chance.NewSeededRNG(1), anomaly.DefaultCatalog())
	var completed []State
	m.OnComplete(func(s State) { completed = append(completed, s) })

	_, err := m.StartNewShift()
	require.NoError(t, err)

	for i := 1; i <= 7; i++ {
		effs, err := m.ProcessPlayerDecision(false)
		require.NoError(t, err)
		assert.Equal(t, []EffectKind{EffectTimeAdvanced, EffectLoopClear}, Kinds(effs), "decision %d", i)
		assert.False(t, m.Complete(), "decision %d", i)
		assert.Empty(t, completed)
	}
	assert.Equal(t, "04:05", m.TimeString())

	effs, err := m.ProcessPlayerDecision(false)
	require.NoError(t, err)
	want := []Effect{
		{Kind: EffectTimeAdvanced, Time: "04:40"},
		{Kind: EffectShiftComplete, Time: "04:40"},
	}
	if diff := cmp.Diff(want, effs); diff != "" {
		t.Fatalf("effects mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, m.Complete())
	assert.Equal(t, 8, m.CorrectCount())
	assert.Equal(t, 280*time.Minute, m.Elapsed())
	require.Len(t, completed, 1)
	assert.Equal(t, StatusComplete, completed[0].Status)
}

func TestCompleteIsTerminal(t *testing.T) {
	m := newMachine(t, neverAnomaly(), chance.NewSeededRNG(1), anomaly.DefaultCatalog())
	_, err := m.StartNewShift()
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		_, err := m.ProcessPlayerDecision(false)
		require.NoError(t, err)
	}
	require.True(t, m.Complete())
	before := m.Snapshot()

	_, err = m.ProcessPlayerDecision(true)
	assert.ErrorIs(t, err, ErrShiftComplete)
	_, err = m.StartNewShift()
	assert.ErrorIs(t, err, ErrShiftComplete)
	assert.Nil(t, m.PrepareNextLoop())
	assert.Equal(t, before, m.Snapshot())
}

func TestDecisionBeforeStart(t *testing.T) {
	m := newMachine(t, DefaultConfig(), chance.NewSeededRNG(1), anomaly.DefaultCatalog())
	_, err := m.ProcessPlayerDecision(false)
	assert.ErrorIs(t, err, ErrShiftNotStarted)
}

func TestResetCompleteness(t *testing.T) {
	rng := chance.NewSeededRNG(99)
	m := newMachine(t, DefaultConfig(), rng, anomaly.DefaultCatalog())
	_, err := m.StartNewShift()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := m.ProcessPlayerDecision(m.AnomalyActive())
		require.NoError(t, err)
	}
	require.Equal(t, 3, m.CorrectCount())
	loopsBefore := m.Snapshot().Loop

	effs, err := m.ProcessPlayerDecision(!m.AnomalyActive())
	require.NoError(t, err)
	s := m.Snapshot()
	assert.Equal(t, time.Duration(0), s.Elapsed)
	assert.Equal(t, 0, s.CorrectCount)
	assert.Equal(t, 1, s.Loop, "a fresh loop is prepared after reset")
	assert.Greater(t, loopsBefore, s.Loop)
	assert.Equal(t, s.AnomalyActive, effs[len(effs)-1].Kind == EffectAnomalySpawned)
}

func TestTimeMatchesCorrectCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WinThreshold = 1000 * time.Hour
	m := newMachine(t, cfg, chance.NewSeededRNG(2024), anomaly.DefaultCatalog())
	player := chance.NewSeededRNG(7)

	_, err := m.StartNewShift()
	require.NoError(t, err)
	for i := 0; i < 500; i++ {
		right, err := chance.Roll(0.8, player)
		require.NoError(t, err)
		reported := m.AnomalyActive()
		if !right {
			reported = !reported
		}
		_, err = m.ProcessPlayerDecision(reported)
		require.NoError(t, err)
		require.Equal(t, time.Duration(m.CorrectCount())*cfg.TimeIncrement, m.Elapsed())
	}
}

func TestSelectorMemorySpansResets(t *testing.T) {
	c, err := anomaly.NewCatalog(
		anomaly.Definition{ID: "A", Tier: 1},
		anomaly.Definition{ID: "B", Tier: 1},
	)
	require.NoError(t, err)
	sel := anomaly.NewSelector(c, chance.NewSeededRNG(3), nil)
	m, err := New(alwaysAnomaly(), sel)
	require.NoError(t, err)

	_, err = m.StartNewShift()
	require.NoError(t, err)
	prev, _ := m.CurrentAnomaly()
	for i := 0; i < 20; i++ {
		// wrong answer every time: full reset, yet no repeat across shifts
		_, err := m.ProcessPlayerDecision(false)
		require.NoError(t, err)
		cur, ok := m.CurrentAnomaly()
		require.True(t, ok)
		require.NotEqual(t, prev.ID, cur.ID)
		prev = cur
	}
	assert.Equal(t, 20, m.Resets())
}
