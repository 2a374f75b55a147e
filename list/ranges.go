package list

// Slice returns the values at positions start through end, inclusive.
//
// The bounds must satisfy 0 <= start < end <= Len()-1, otherwise the method
// returns ErrInvalidRange.
func (list *List[V]) Slice(start, end int) ([]V, error) {
	const op = "list"
	if !list.validRange(start, end) {
		return nil, list.fail(op, errRange(op, start, end), "start", start, "end", end)
	}

	values := make([]V, end-start+1)

	if list.backward(start, end) {
		n := list.node(end)
		for i := len(values) - 1; i >= 0; i-- {
			values[i] = n.value
			n = n.prev
		}
	} else {
		n := list.node(start)
		for i := range values {
			values[i] = n.value
			n = n.next
		}
	}

	return values, nil
}

// RemoveMany removes the values at positions start through end, inclusive,
// and returns them in the order they had in the list.
//
// The bounds must satisfy 0 <= start < end <= Len()-1, otherwise the method
// returns ErrInvalidRange and the list is not modified.
func (list *List[V]) RemoveMany(start, end int) ([]V, error) {
	const op = "removeMany"
	if !list.validRange(start, end) {
		return nil, list.fail(op, errRange(op, start, end), "start", start, "end", end)
	}
	removed, _ := list.removeRange(start, end)
	return removed, nil
}

func (list *List[V]) validRange(start, end int) bool {
	return start >= 0 && start < end && end <= list.size-1
}

// backward reports whether walking a range from its end toward its start
// visits fewer nodes than walking it from its start.
func (list *List[V]) backward(start, end int) bool {
	return (list.size-1)-end <= start
}

// removeRange unlinks the nodes at positions start through end, which must be
// valid with start <= end. It returns the removed values in list order, and
// the node that followed the range (nil if the range ended at the tail).
func (list *List[V]) removeRange(start, end int) (removed []V, next *node[V]) {
	removed = make([]V, end-start+1)

	if list.backward(start, end) {
		n := list.node(end)
		next = n.next
		for i := len(removed) - 1; i >= 0; i-- {
			removed[i] = n.value
			n, _ = list.unlink(n)
		}
	} else {
		n := list.node(start)
		for i := range removed {
			removed[i] = n.value
			_, n = list.unlink(n)
		}
		next = n
	}

	return removed, next
}
