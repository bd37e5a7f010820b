package lineup

// Pure index arithmetic for the ordered-list-plus-pointer value. Every
// mutation path computes its next value through these functions.

// ClampIndex bounds idx into [0, length-1]. Returns 0 for an empty list,
// the sentinel pointer value.
func ClampIndex(idx, length int) int {
	if length <= 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx > length-1 {
		return length - 1
	}
	return idx
}

// AdvanceIndex steps to the next slot with wraparound: a batting order
// repeats, so the element after the last is the first again.
func AdvanceIndex(idx, length int) int {
	if length <= 0 {
		return 0
	}
	next := (idx + 1) % length
	if next < 0 {
		next += length
	}
	return next
}

// MoveAndReindex removes the element at from and reinserts it at to,
// returning the new order and pointer. The pointer keeps identifying the
// same logical element it did before the move; if that element is the one
// being moved, the pointer follows it to its new slot.
func MoveAndReindex(order []string, from, to, pointer int) ([]string, int) {
	n := len(order)
	if n == 0 {
		return []string{}, 0
	}
	from = ClampIndex(from, n)
	to = ClampIndex(to, n)

	moved := order[from]
	rest := make([]string, 0, n)
	rest = append(rest, order[:from]...)
	rest = append(rest, order[from+1:]...)

	out := make([]string, 0, n)
	out = append(out, rest[:to]...)
	out = append(out, moved)
	out = append(out, rest[to:]...)

	switch {
	case pointer == from:
		pointer = to
	case from < to && pointer > from && pointer <= to:
		pointer--
	case from > to && pointer >= to && pointer < from:
		pointer++
	}

	return out, pointer
}

// PruneAgainstRoster drops ids that are not in the active set, preserving
// relative order, and reclamps the pointer when anything was removed. Unlike
// MoveAndReindex this does not chase the pointed-at element: removal driven
// by a roster change may shift which element is current.
func PruneAgainstRoster(order []string, pointer int, active map[string]struct{}) ([]string, int, bool) {
	filtered := make([]string, 0, len(order))
	for _, id := range order {
		if _, ok := active[id]; ok {
			filtered = append(filtered, id)
		}
	}

	if len(filtered) == len(order) {
		return filtered, pointer, false
	}
	return filtered, ClampIndex(pointer, len(filtered)), true
}
