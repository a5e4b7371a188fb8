package ease

import (
	"fmt"
	"sort"
)

// Curve is an externally authored progress curve, consulted by easings with
// the CustomCurve shape. Evaluate maps normalized time to progress; like the
// built-in shapes, outputs outside [0,1] are allowed.
type Curve interface {
	Evaluate(t float64) float64
}

// Keyframe is one control point of a PiecewiseCurve.
type Keyframe struct {
	T     float64
	Value float64
}

// PiecewiseCurve interpolates linearly between keyframes, holding the first
// and last values outside the keyed range.
type PiecewiseCurve struct {
	keys []Keyframe
}

var _ Curve = (*PiecewiseCurve)(nil)

// NewPiecewiseCurve builds a curve from at least two keyframes with strictly
// increasing times.
func NewPiecewiseCurve(keys ...Keyframe) (*PiecewiseCurve, error) {
	if len(keys) < 2 {
		return nil, fmt.Errorf("ease: piecewise curve needs at least 2 keyframes, got %d", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i].T <= keys[i-1].T {
			return nil, fmt.Errorf("ease: keyframe times must be strictly increasing (key %d: t=%v after t=%v)",
				i, keys[i].T, keys[i-1].T)
		}
	}
	c := &PiecewiseCurve{keys: make([]Keyframe, len(keys))}
	copy(c.keys, keys)
	return c, nil
}

func (c *PiecewiseCurve) Evaluate(t float64) float64 {
	keys := c.keys
	if t <= keys[0].T {
		return keys[0].Value
	}
	if last := keys[len(keys)-1]; t >= last.T {
		return last.Value
	}
	i := sort.Search(len(keys), func(i int) bool { return keys[i].T > t })
	a, b := keys[i-1], keys[i]
	f := (t - a.T) / (b.T - a.T)
	return a.Value + f*(b.Value-a.Value)
}
