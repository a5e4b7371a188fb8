// Package clock abstracts the host engine's frame clock.
//
// Game engines keep two timelines: a scaled one that slows down or speeds up
// with the game's time scale, and an unscaled one that always runs at wall
// speed. Consumers such as the ease package ask for one or the other through
// the Clock interface instead of reading an engine global.
package clock

import "time"

// Clock reports the host's notion of time in seconds.
//
// Now is a monotonic reading; Delta is the span covered by the current tick.
// Both take a flag selecting the scaled or unscaled timeline.
type Clock interface {
	Now(scaled bool) float64
	Delta(scaled bool) float64
}

// StepClock is a manually advanced fixed-step clock. It never moves on its
// own; call Advance once per simulated tick. Used by tests and headless
// fixed-step simulations.
type StepClock struct {
	scaled        float64
	unscaled      float64
	scaledDelta   float64
	unscaledDelta float64
	timeScale     float64
}

// NewStepClock returns a StepClock at time zero with a time scale of 1.
func NewStepClock() *StepClock {
	return &StepClock{timeScale: 1}
}

// Advance moves the clock forward by dt unscaled seconds. The scaled
// timeline advances by dt times the current time scale.
func (c *StepClock) Advance(dt float64) {
	c.unscaledDelta = dt
	c.scaledDelta = dt * c.timeScale
	c.unscaled += c.unscaledDelta
	c.scaled += c.scaledDelta
}

// SetTimeScale changes the scaled-timeline rate for subsequent Advance calls.
func (c *StepClock) SetTimeScale(scale float64) {
	c.timeScale = scale
}

// TimeScale returns the current scaled-timeline rate.
func (c *StepClock) TimeScale() float64 {
	return c.timeScale
}

func (c *StepClock) Now(scaled bool) float64 {
	if scaled {
		return c.scaled
	}
	return c.unscaled
}

func (c *StepClock) Delta(scaled bool) float64 {
	if scaled {
		return c.scaledDelta
	}
	return c.unscaledDelta
}

// SystemClock adapts the wall clock to the Clock interface. Call Tick once
// per frame; Delta reports the span between the two most recent Tick calls
// and the scaled timeline integrates the time scale across ticks.
type SystemClock struct {
	start         time.Time
	last          time.Time
	scaled        float64
	scaledDelta   float64
	unscaledDelta float64
	timeScale     float64
}

// NewSystemClock returns a SystemClock whose timelines start at zero now.
func NewSystemClock() *SystemClock {
	now := time.Now()
	return &SystemClock{start: now, last: now, timeScale: 1}
}

// Tick samples the wall clock and closes out the current frame.
func (c *SystemClock) Tick() {
	now := time.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	c.unscaledDelta = dt
	c.scaledDelta = dt * c.timeScale
	c.scaled += c.scaledDelta
}

// SetTimeScale changes the scaled-timeline rate for subsequent ticks.
func (c *SystemClock) SetTimeScale(scale float64) {
	c.timeScale = scale
}

func (c *SystemClock) Now(scaled bool) float64 {
	if scaled {
		return c.scaled
	}
	return time.Since(c.start).Seconds()
}

func (c *SystemClock) Delta(scaled bool) float64 {
	if scaled {
		return c.scaledDelta
	}
	return c.unscaledDelta
}

// FuncClock adapts a pair of functions to the Clock interface, for engines
// that already expose their own time queries.
type FuncClock struct {
	NowFunc   func(scaled bool) float64
	DeltaFunc func(scaled bool) float64
}

func (c FuncClock) Now(scaled bool) float64 {
	return c.NowFunc(scaled)
}

func (c FuncClock) Delta(scaled bool) float64 {
	return c.DeltaFunc(scaled)
}
