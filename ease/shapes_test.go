package ease

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestShapeEndpoints(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, s := range Shapes() {
		switch s {
		case StartValue, EndValue, CustomCurve:
			continue
		}
		t.Run(s.String(), func(t *testing.T) {
			qt.Assert(t, qt.CmpEquals(Progress(s, 0), 0.0, approx))
			qt.Assert(t, qt.CmpEquals(Progress(s, 1), 1.0, approx))
		})
	}
}

func TestConstantShapes(t *testing.T) {
	for _, x := range []float64{0, 0.25, 0.5, 1} {
		qt.Assert(t, qt.Equals(Progress(StartValue, x), 0.0))
		qt.Assert(t, qt.Equals(Progress(EndValue, x), 1.0))
		qt.Assert(t, qt.Equals(Progress(Linear, x), x))
	}
}

// Expo and Elastic substitute exact 0/1 at the boundaries instead of
// evaluating the closed form there.
func TestBoundarySubstitutions(t *testing.T) {
	cases := []struct {
		shape Shape
		t     float64
		want  float64
	}{
		{ExpoIn, 0, 0},
		{ExpoInOut, 0, 0},
		{ExpoOut, 1, 1},
		{ExpoInOut, 1, 1},
		{ElasticIn, 0, 0},
		{ElasticIn, 1, 1},
		{ElasticOut, 0, 0},
		{ElasticOut, 1, 1},
		{ElasticInOut, 0, 0},
		{ElasticInOut, 1, 1},
	}
	for _, c := range cases {
		qt.Assert(t, qt.Equals(Progress(c.shape, c.t), c.want), qt.Commentf("%s at t=%v", c.shape, c.t))
	}
}

func TestOvershootShapes(t *testing.T) {
	// Back eases dip below 0 going in and above 1 coming out.
	qt.Assert(t, qt.IsTrue(Progress(BackIn, 0.2) < 0))
	qt.Assert(t, qt.IsTrue(Progress(BackOut, 0.8) > 1))
	// Elastic oscillates past both endpoints.
	qt.Assert(t, qt.IsTrue(Progress(ElasticIn, 0.9) < 0))
	qt.Assert(t, qt.IsTrue(Progress(ElasticOut, 0.1) > 1))
}

func TestBounceKnownValues(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	// Second segment of the piecewise quadratic.
	qt.Assert(t, qt.CmpEquals(Progress(BounceOut, 0.5), 0.765625, approx))
	// BounceIn mirrors BounceOut.
	qt.Assert(t, qt.CmpEquals(Progress(BounceIn, 0.5), 1-0.765625, approx))
}

func TestInOutMidpoints(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	for _, s := range []Shape{QuadInOut, CubicInOut, TrigInOut, ExpoInOut, BounceInOut} {
		qt.Assert(t, qt.CmpEquals(Progress(s, 0.5), 0.5, approx), qt.Commentf("%s", s))
	}
}

func TestUnrecognizedShapePassesThrough(t *testing.T) {
	qt.Assert(t, qt.Equals(Progress(Shape(200), 0.37), 0.37))
	qt.Assert(t, qt.Equals(Progress(ShapeUnset, 0.37), 0.37))
	qt.Assert(t, qt.Equals(Progress(CustomCurve, 0.37), 0.37))
}

func TestParseShapeRoundTrip(t *testing.T) {
	for _, s := range Shapes() {
		got, err := ParseShape(s.String())
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, s))
	}

	_, err := ParseShape("unset")
	qt.Assert(t, qt.IsNotNil(err))
	_, err = ParseShape("nope")
	qt.Assert(t, qt.IsNotNil(err))
}
