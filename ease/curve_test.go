package ease

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestPiecewiseCurveValidation(t *testing.T) {
	_, err := NewPiecewiseCurve(Keyframe{T: 0, Value: 0})
	qt.Assert(t, qt.IsNotNil(err))

	_, err = NewPiecewiseCurve(
		Keyframe{T: 0, Value: 0},
		Keyframe{T: 0.5, Value: 1},
		Keyframe{T: 0.5, Value: 2},
	)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestPiecewiseCurveEvaluate(t *testing.T) {
	c, err := NewPiecewiseCurve(
		Keyframe{T: 0, Value: 0},
		Keyframe{T: 0.5, Value: 1},
		Keyframe{T: 1, Value: 0.5},
	)
	qt.Assert(t, qt.IsNil(err))

	// Exact key hits.
	qt.Assert(t, qt.Equals(c.Evaluate(0), 0.0))
	qt.Assert(t, qt.Equals(c.Evaluate(0.5), 1.0))
	qt.Assert(t, qt.Equals(c.Evaluate(1), 0.5))

	// Interpolation between keys.
	qt.Assert(t, qt.Equals(c.Evaluate(0.25), 0.5))
	qt.Assert(t, qt.Equals(c.Evaluate(0.75), 0.75))

	// Held flat outside the keyed range.
	qt.Assert(t, qt.Equals(c.Evaluate(-1), 0.0))
	qt.Assert(t, qt.Equals(c.Evaluate(2), 0.5))
}
