// Package ease interpolates a value over time through a named curve shape.
//
// An Easing is a small state record owned by exactly one caller: configure
// it, call Begin once, then call Sample once per frame until it reports
// Finished. Looping modes restart or reverse the interpolation when elapsed
// time overflows the duration; ping-pong reversal swaps the endpoints in
// place, which is observable through the StartValue/EndValue accessors.
//
// Anomalies (no shape assigned, missing custom curve) never fault the
// caller's frame loop; they log through the kit logger and degrade to a
// passthrough value.
package ease

import (
	"math"

	"github.com/playforgehq/gamekit-go/clock"
	"github.com/playforgehq/gamekit-go/logger"
)

// LoopMode selects what happens when an easing's elapsed time exceeds its
// duration.
type LoopMode uint8

const (
	// NoLoop finishes the easing at the first overflow.
	NoLoop LoopMode = iota
	// LoopReset restarts the same direction every cycle.
	LoopReset
	// LoopPingPong reverses direction every cycle, indefinitely.
	LoopPingPong
	// LoopPingPongOnce reverses direction exactly once, then behaves as
	// NoLoop.
	LoopPingPongOnce
)

var loopNames = [...]string{"no-loop", "reset", "ping-pong", "ping-pong-once"}

func (m LoopMode) String() string {
	if int(m) < len(loopNames) {
		return loopNames[m]
	}
	return "loop-mode(?)"
}

// PlayState is the lifecycle stage of an easing.
type PlayState uint8

const (
	Unplayed PlayState = iota
	Playing
	Finished
)

var stateNames = [...]string{"unplayed", "playing", "finished"}

func (s PlayState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "play-state(?)"
}

// Easing is one interpolation in progress.
type Easing struct {
	clk           clock.Clock
	shape         Shape
	curve         Curve
	loop          LoopMode
	useScaledTime bool
	paused        bool

	state      PlayState
	startMark  float64
	duration   float64
	startValue float64
	endValue   float64
}

// New returns an idle Easing reading time from clk. The shape starts unset,
// the duration at one second, looping off, on the unscaled timeline.
func New(clk clock.Clock) *Easing {
	return &Easing{
		clk:       clk,
		startMark: math.Inf(-1),
		duration:  1,
	}
}

// SetShape assigns the curve shape.
func (e *Easing) SetShape(s Shape) { e.shape = s }

// Shape returns the assigned curve shape.
func (e *Easing) Shape() Shape { return e.shape }

// SetCurve assigns the externally authored curve consulted when the shape
// is CustomCurve.
func (e *Easing) SetCurve(c Curve) { e.curve = c }

// SetLoop assigns the loop mode.
func (e *Easing) SetLoop(m LoopMode) { e.loop = m }

// Loop returns the loop mode. Note that LoopPingPongOnce degrades to NoLoop
// after its single reversal.
func (e *Easing) Loop() LoopMode { return e.loop }

// SetDuration sets the seconds for one forward pass. Non-positive or
// non-finite values are rejected with a warning.
func (e *Easing) SetDuration(d float64) {
	if !(d > 0) || math.IsInf(d, 1) {
		logger.Warn().Float64("duration", d).Msg("ease: ignoring invalid duration")
		return
	}
	e.duration = d
}

// Duration returns the seconds for one forward pass.
func (e *Easing) Duration() float64 { return e.duration }

// SetUseScaledTime selects the scaled or unscaled timeline for elapsed-time
// queries.
func (e *Easing) SetUseScaledTime(scaled bool) { e.useScaledTime = scaled }

// SetPaused freezes or resumes measured progress. While paused, each Sample
// shifts the recorded start mark forward by the tick's delta, so effective
// elapsed time stands still.
func (e *Easing) SetPaused(paused bool) { e.paused = paused }

// Paused reports whether progress is frozen.
func (e *Easing) Paused() bool { return e.paused }

// State returns the lifecycle stage.
func (e *Easing) State() PlayState { return e.state }

// Finished reports whether the easing has run to completion.
func (e *Easing) Finished() bool { return e.state == Finished }

// StartValue returns the current start endpoint. Ping-pong looping swaps
// the endpoints in place, so this changes over an easing's lifetime.
func (e *Easing) StartValue() float64 { return e.startValue }

// EndValue returns the current end endpoint.
func (e *Easing) EndValue() float64 { return e.endValue }

// Begin starts interpolating from startValue to endValue over the current
// duration. An unassigned shape logs an error but the easing still plays
// (sampling passes raw time through).
func (e *Easing) Begin(startValue, endValue float64) {
	e.begin(startValue, endValue)
}

// BeginFor is Begin with a duration override. Non-positive or non-finite
// durations keep the current duration, with a warning.
func (e *Easing) BeginFor(startValue, endValue, duration float64) {
	e.SetDuration(duration)
	e.begin(startValue, endValue)
}

// BeginFactor starts a 0→1 interpolation over the current duration, for
// callers that apply the sampled factor themselves.
func (e *Easing) BeginFactor() {
	e.begin(0, 1)
}

// BeginFactorFor is BeginFactor with a duration override.
func (e *Easing) BeginFactorFor(duration float64) {
	e.BeginFor(0, 1, duration)
}

func (e *Easing) begin(startValue, endValue float64) {
	if e.shape == ShapeUnset {
		logger.Error().Msg("ease: Begin with no shape assigned")
	}
	e.startValue = startValue
	e.endValue = endValue
	e.startMark = e.clk.Now(e.useScaledTime)
	e.state = Playing
}

// Reset forces the easing back to Unplayed from any state. The next Sample
// returns the start value.
func (e *Easing) Reset() {
	e.state = Unplayed
	e.startMark = math.Inf(-1)
}

// Sample advances the interpolation and returns the current value. Call it
// at most once per logical tick; calling it twice in one tick while paused
// double-advances the pause offset.
func (e *Easing) Sample() float64 {
	if e.paused {
		e.startMark += e.clk.Delta(e.useScaledTime)
	}

	switch e.state {
	case Unplayed:
		return e.startValue
	case Finished:
		return e.endValue
	}

	now := e.clk.Now(e.useScaledTime)
	factor := (now - e.startMark) / e.duration
	if factor > 1 {
		if e.loop == NoLoop {
			e.state = Finished
			return e.endValue
		}
		for factor > 1 {
			if e.loop == NoLoop {
				// ping-pong-once fired on a previous unit of this
				// overflow; the remainder finishes the easing.
				e.state = Finished
				return e.endValue
			}
			e.startMark += e.duration
			factor = (now - e.startMark) / e.duration
			switch e.loop {
			case LoopReset:
			case LoopPingPong:
				e.startValue, e.endValue = e.endValue, e.startValue
			case LoopPingPongOnce:
				e.loop = NoLoop
				e.startValue, e.endValue = e.endValue, e.startValue
			}
		}
	}

	return e.startValue + e.progressAt(factor)*(e.endValue-e.startValue)
}

// progressAt resolves the raw progress for normalized time t, consulting
// the custom curve when the shape calls for one.
func (e *Easing) progressAt(t float64) float64 {
	if e.shape == CustomCurve {
		if e.curve == nil {
			logger.Error().Msg("ease: custom-curve easing has no curve assigned, passing time through")
			return t
		}
		return e.curve.Evaluate(t)
	}
	return Progress(e.shape, t)
}
