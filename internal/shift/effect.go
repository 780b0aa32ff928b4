package shift

import "github.com/xtding233/esslend-store/internal/anomaly"

// EffectKind names something the host has to react to.
type EffectKind string

const (
	EffectShiftStarted   EffectKind = "shift_started"
	EffectAnomalySpawned EffectKind = "anomaly_spawned" // host instantiates Effect.Anomaly
	EffectLoopClear      EffectKind = "loop_clear"
	EffectDrawFailed     EffectKind = "draw_failed" // catalog empty, loop treated as clear
	EffectTimeAdvanced   EffectKind = "time_advanced"
	EffectShiftReset     EffectKind = "shift_reset"
	EffectShiftComplete  EffectKind = "shift_complete"
)

// Effect is emitted by a transition. Time is the clock after the transition.
type Effect struct {
	Kind    EffectKind
	Anomaly anomaly.Definition // set for EffectAnomalySpawned only
	Time    string
}

// Kinds lists the kinds of effs in order.
func Kinds(effs []Effect) []EffectKind {
	out := make([]EffectKind, len(effs))
	for i, e := range effs {
		out[i] = e.Kind
	}
	return out
}
