package rng

import "math/rand/v2"

type channelSource struct {
	r  *Registry
	ch Channel
}

// Assert that channelSource implements rand.Source.
var _ rand.Source = channelSource{}

func (s channelSource) Uint64() uint64 {
	if g := s.r.deterministic(s.ch, "Source"); g != nil {
		return g.Uint64()
	}
	return rand.Uint64()
}

// Source adapts ch to a [math/rand/v2.Source].
//
// Use this to run the full [math/rand/v2.Rand] API (shuffles, permutations,
// normal draws) over a channel while keeping its deterministic/engine-default
// switching behavior.
func (r *Registry) Source(ch Channel) rand.Source {
	return channelSource{r, ch}
}
