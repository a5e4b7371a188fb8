// Package rng provides named, independently seedable random streams for a
// game runtime.
//
// Each logical [Channel] (loot rolls, AI decisions, VFX jitter, ...) owns an
// optional deterministic generator and an enabled flag. While a channel is
// disabled, or enabled but never seeded, draws fall through to the host
// engine's default random source, so gameplay code never has to care which
// mode it is running in. Seeding every channel and enabling them turns a
// whole session deterministic for replay capture without touching call
// sites.
//
// A Registry is confined to the engine's main thread. Nothing in this
// package synchronizes access.
package rng

import (
	"math/rand/v2"

	"github.com/playforgehq/gamekit-go/logger"
)

// EngineSource is the host engine's default, non-deterministic random
// source. Draws from it are not required to be reproducible.
type EngineSource interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// IntN returns a uniform value in [min,max).
	IntN(min, max int) int
}

// processSource backs registries constructed without an engine source.
type processSource struct{}

func (processSource) Float64() float64 {
	return rand.Float64()
}

func (processSource) IntN(min, max int) int {
	return min + rand.IntN(max-min)
}

type slot struct {
	gen     *rand.Rand
	enabled bool
	warned  bool
}

// Registry maps every Channel to an optional deterministic generator and an
// enabled flag. Construct one with New at startup and inject it where random
// values are drawn.
type Registry struct {
	engine EngineSource
	slots  [channelCount]slot
}

// New returns a Registry with every channel unseeded and disabled. A nil
// engine falls back to the process-wide math/rand source.
func New(engine EngineSource) *Registry {
	if engine == nil {
		engine = processSource{}
	}
	return &Registry{engine: engine}
}

// Distinct PCG stream selectors derived from the same seed keep a channel's
// two state words decorrelated.
const seedStream = 0x9e3779b97f4a7c15

// SetSeed creates or replaces the deterministic generator for ch. It does
// not change the enabled flag; enable the channel separately with
// SetEnabled.
func (r *Registry) SetSeed(ch Channel, seed uint64) {
	if !r.guard(ch, "SetSeed") {
		return
	}
	r.slots[ch].gen = rand.New(rand.NewPCG(seed, seed^seedStream))
	r.slots[ch].warned = false
}

// SetEnabled switches ch between deterministic draws and the engine source.
func (r *Registry) SetEnabled(ch Channel, on bool) {
	if !r.guard(ch, "SetEnabled") {
		return
	}
	r.slots[ch].enabled = on
}

// Enabled reports whether ch draws from its deterministic generator.
func (r *Registry) Enabled(ch Channel) bool {
	return ch.Valid() && r.slots[ch].enabled
}

// Float returns the next uniform value in [0,1) for ch: the deterministic
// generator when the channel is enabled and seeded, the engine source
// otherwise.
func (r *Registry) Float(ch Channel) float64 {
	if g := r.deterministic(ch, "Float"); g != nil {
		return g.Float64()
	}
	return r.engine.Float64()
}

// FloatRange lerps between min and max using Float as the factor. The result
// lands in [min,max), with rounding occasionally touching max.
func (r *Registry) FloatRange(ch Channel, min, max float64) float64 {
	return min + r.Float(ch)*(max-min)
}

// IntRange returns a uniform integer in [min,max). An empty range returns
// min and logs a warning.
func (r *Registry) IntRange(ch Channel, min, max int) int {
	if max <= min {
		logger.Warn().Stringer("channel", ch).Int("min", min).Int("max", max).
			Msg("rng: empty integer range")
		return min
	}
	if g := r.deterministic(ch, "IntRange"); g != nil {
		return min + g.IntN(max-min)
	}
	return r.engine.IntN(min, max)
}

// deterministic returns ch's generator when the channel should draw
// deterministically, nil when the caller must use the engine source. An
// enabled-but-unseeded channel warns once and falls back; a frame loop must
// not fault over a missing seed.
func (r *Registry) deterministic(ch Channel, op string) *rand.Rand {
	if !r.guard(ch, op) {
		return nil
	}
	s := &r.slots[ch]
	if !s.enabled {
		return nil
	}
	if s.gen == nil {
		if !s.warned {
			s.warned = true
			logger.Warn().Str("op", op).Stringer("channel", ch).
				Msg("rng: channel enabled but never seeded, using engine source")
		}
		return nil
	}
	return s.gen
}

func (r *Registry) guard(ch Channel, op string) bool {
	if ch.Valid() {
		return true
	}
	logger.Warn().Str("op", op).Uint8("channel", uint8(ch)).
		Msg("rng: unknown channel")
	return false
}
