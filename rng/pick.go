package rng

// Pick returns a uniformly chosen element of items drawn from ch, or the
// zero value when items is empty.
func Pick[T any](r *Registry, ch Channel, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[r.IntRange(ch, 0, len(items))]
}
