package ease

import (
	"math"

	"github.com/playforgehq/gamekit-go/logger"
)

// Curve constants are pinned literals: callers tune visuals against the
// exact overshoot magnitudes, so none of these may be derived or "fixed".
// backC2 in particular is 2.595, not the catalogue's backC1*1.525.
const (
	backC1 = 1.70158
	backC2 = 2.595
	backC3 = backC1 + 1

	bounceN1 = 7.5625
	bounceD1 = 2.75

	elasticC4 = (2 * math.Pi) / 3
	elasticC5 = (2 * math.Pi) / 4.5
)

// Progress maps normalized time t to the shape's raw progress value.
//
// t is nominally in [0,1] but is not clamped. Back and Elastic shapes
// legitimately leave [0,1] mid-range; that overshoot is the point of those
// shapes. Expo and Elastic substitute exact 0/1 at the boundaries to dodge
// the pow singularity.
//
// CustomCurve carries no curve handle at package level: it logs a warning
// and passes t through. Easing instances evaluate their own curve before
// delegating here. Unrecognized shapes (including ShapeUnset) behave the
// same way.
func Progress(s Shape, t float64) float64 {
	switch s {
	case Linear:
		return t
	case StartValue:
		return 0
	case EndValue:
		return 1
	case CustomCurve:
		logger.Warn().Msg("ease: custom-curve shape sampled without a curve, passing time through")
		return t

	case QuadIn:
		return t * t
	case QuadOut:
		return 1 - (1-t)*(1-t)
	case QuadInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2

	case CubicIn:
		return t * t * t
	case CubicOut:
		return 1 - math.Pow(1-t, 3)
	case CubicInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2

	case TrigIn:
		return 1 - math.Cos(t*math.Pi/2)
	case TrigOut:
		return math.Sin(t * math.Pi / 2)
	case TrigInOut:
		return -(math.Cos(math.Pi*t) - 1) / 2

	case ExpoIn:
		if t == 0 {
			return 0
		}
		return math.Pow(2, 10*t-10)
	case ExpoOut:
		if t == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	case ExpoInOut:
		if t == 0 {
			return 0
		}
		if t == 1 {
			return 1
		}
		if t < 0.5 {
			return math.Pow(2, 20*t-10) / 2
		}
		return (2 - math.Pow(2, -20*t+10)) / 2

	case BounceIn:
		return 1 - bounceOut(1-t)
	case BounceOut:
		return bounceOut(t)
	case BounceInOut:
		if t < 0.5 {
			return (1 - bounceOut(1-2*t)) / 2
		}
		return (1 + bounceOut(2*t-1)) / 2

	case BackIn:
		return backC3*t*t*t - backC1*t*t
	case BackOut:
		return 1 + backC3*math.Pow(t-1, 3) + backC1*math.Pow(t-1, 2)
	case BackInOut:
		if t < 0.5 {
			return (math.Pow(2*t, 2) * ((backC2+1)*2*t - backC2)) / 2
		}
		return (math.Pow(2*t-2, 2)*((backC2+1)*(t*2-2)+backC2) + 2) / 2

	case ElasticIn:
		if t == 0 {
			return 0
		}
		if t == 1 {
			return 1
		}
		return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*elasticC4)
	case ElasticOut:
		if t == 0 {
			return 0
		}
		if t == 1 {
			return 1
		}
		return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*elasticC4) + 1
	case ElasticInOut:
		if t == 0 {
			return 0
		}
		if t == 1 {
			return 1
		}
		if t < 0.5 {
			return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*elasticC5)) / 2
		}
		return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*elasticC5))/2 + 1
	}

	logger.Warn().Stringer("shape", s).Msg("ease: unrecognized shape, passing time through")
	return t
}

// bounceOut is the 4-segment piecewise quadratic the three Bounce shapes
// are built from.
func bounceOut(t float64) float64 {
	switch {
	case t < 1/bounceD1:
		return bounceN1 * t * t
	case t < 2/bounceD1:
		t -= 1.5 / bounceD1
		return bounceN1*t*t + 0.75
	case t < 2.5/bounceD1:
		t -= 2.25 / bounceD1
		return bounceN1*t*t + 0.9375
	default:
		t -= 2.625 / bounceD1
		return bounceN1*t*t + 0.984375
	}
}
