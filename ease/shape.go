package ease

import "fmt"

// Shape names one interpolation curve. The zero value ShapeUnset is not a
// usable curve; an easing whose shape was never assigned degrades to a
// passthrough at sample time (see Progress).
type Shape uint8

const (
	ShapeUnset Shape = iota

	Linear
	StartValue
	EndValue
	CustomCurve

	QuadIn
	QuadOut
	QuadInOut
	CubicIn
	CubicOut
	CubicInOut
	TrigIn
	TrigOut
	TrigInOut
	ExpoIn
	ExpoOut
	ExpoInOut
	BounceIn
	BounceOut
	BounceInOut
	BackIn
	BackOut
	BackInOut
	ElasticIn
	ElasticOut
	ElasticInOut

	shapeCount
)

var shapeNames = [shapeCount]string{
	ShapeUnset:   "unset",
	Linear:       "linear",
	StartValue:   "start-value",
	EndValue:     "end-value",
	CustomCurve:  "custom-curve",
	QuadIn:       "quad-in",
	QuadOut:      "quad-out",
	QuadInOut:    "quad-in-out",
	CubicIn:      "cubic-in",
	CubicOut:     "cubic-out",
	CubicInOut:   "cubic-in-out",
	TrigIn:       "trig-in",
	TrigOut:      "trig-out",
	TrigInOut:    "trig-in-out",
	ExpoIn:       "expo-in",
	ExpoOut:      "expo-out",
	ExpoInOut:    "expo-in-out",
	BounceIn:     "bounce-in",
	BounceOut:    "bounce-out",
	BounceInOut:  "bounce-in-out",
	BackIn:       "back-in",
	BackOut:      "back-out",
	BackInOut:    "back-in-out",
	ElasticIn:    "elastic-in",
	ElasticOut:   "elastic-out",
	ElasticInOut: "elastic-in-out",
}

func (s Shape) String() string {
	if s < shapeCount {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

// ParseShape resolves a shape by its String name. "unset" is not accepted.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if n == name && Shape(i) != ShapeUnset {
			return Shape(i), nil
		}
	}
	return ShapeUnset, fmt.Errorf("ease: unknown shape %q", name)
}

// Shapes returns every usable shape in declaration order.
func Shapes() []Shape {
	out := make([]Shape, 0, shapeCount-1)
	for s := ShapeUnset + 1; s < shapeCount; s++ {
		out = append(out, s)
	}
	return out
}
