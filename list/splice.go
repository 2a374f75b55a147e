package list

import "github.com/pkg/errors"

// SpliceOption configures the behavior of List.Splice.
type SpliceOption func(*spliceConfig)

type spliceConfig struct {
	startAfter bool
	circulate  bool
}

// StartAfter shifts the anchor of a splice by one position away from the
// deleted range: deletions and insertions start right after the index instead
// of at the index.
func StartAfter() SpliceOption {
	return func(c *spliceConfig) { c.startAfter = true }
}

// Circulate makes deletion ranges which run past an end of the list wrap
// around and continue from the opposite end, instead of being clamped.
func Circulate() SpliceOption {
	return func(c *spliceConfig) { c.circulate = true }
}

type spliceMode int

const (
	// insert values before a position, nothing is deleted
	spliceInsert spliceMode = iota
	// delete one contiguous range, insert where it was
	spliceRange
	// delete a range at the back then one at the front, insert before what
	// follows the front range
	spliceWrapForward
	// delete a range at the front then one at the back, append
	spliceWrapBackward
	// the range covers the whole list, reset and append
	spliceWipe
)

// splicePlan is the resolved form of a call to Splice. Ranges are inclusive;
// the second range is expressed in positions of the list after the first
// range was removed.
type splicePlan struct {
	mode   spliceMode
	first  [2]int
	second [2]int
	index  int
}

// Splice removes values from the list and inserts items in their place, in a
// way similar to JavaScript's Array.prototype.splice.
//
// A negative idx is counted from the back of the list, -1 being the last
// value. A positive deleteCount removes values at idx and after it, a negative
// deleteCount removes values at idx and before it, and zero removes nothing.
// Items are inserted where the deleted values were, or before idx when nothing
// is deleted; a nil or empty items slice inserts nothing.
//
// When the range to delete runs past the back of the list, it is clamped to
// the last value, unless the Circulate option is set, in which case the
// remaining deletions continue from the front of the list. When it runs past
// the front of the list, the call fails unless Circulate is set, in which case
// deletions continue from the back and items are appended.
//
// On error, the list is not modified.
func (list *List[V]) Splice(idx, deleteCount int, items []V, options ...SpliceOption) error {
	const op = "splice"
	config := spliceConfig{}
	for _, opt := range options {
		opt(&config)
	}

	plan, err := list.planSplice(idx, deleteCount, config)
	if err != nil {
		return list.fail(op, err, "index", idx, "deleteCount", deleteCount)
	}

	items = list.accept(op, items)

	switch plan.mode {
	case spliceInsert:
		list.linkManyBefore(list.node(plan.index), items)

	case spliceRange:
		_, next := list.removeRange(plan.first[0], plan.first[1])
		list.linkManyBefore(next, items)

	case spliceWrapForward:
		list.removeRange(plan.first[0], plan.first[1])
		_, next := list.removeRange(plan.second[0], plan.second[1])
		list.linkManyBefore(next, items)

	case spliceWrapBackward:
		list.removeRange(plan.first[0], plan.first[1])
		list.removeRange(plan.second[0], plan.second[1])
		list.linkManyBefore(nil, items)

	case spliceWipe:
		list.reset()
		list.linkManyBefore(nil, items)
	}

	return nil
}

// planSplice resolves the arguments of Splice against the current length of
// the list. It does not modify the list.
func (list *List[V]) planSplice(idx, deleteCount int, config spliceConfig) (splicePlan, error) {
	const op = "splice"
	size := list.size
	last := size - 1

	id := idx
	if id < 0 {
		id += size
	}

	if deleteCount < 0 {
		if config.startAfter {
			id--
		}
		if id < 0 || id > last {
			return splicePlan{}, errIndex(op, id)
		}

		start := id + deleteCount + 1
		if start >= 0 {
			return splicePlan{mode: spliceRange, first: [2]int{start, id}}, nil
		}
		if !config.circulate {
			return splicePlan{}, errors.Wrapf(ErrInvalidRange, "%s: deleteCount %d from index %d runs past the front of the list", op, deleteCount, id)
		}

		endToBack := size + start
		if endToBack <= id {
			return splicePlan{mode: spliceWipe}, nil
		}
		// Removing [0, id] shifts the back of the list by id+1 positions.
		return splicePlan{
			mode:   spliceWrapBackward,
			first:  [2]int{0, id},
			second: [2]int{endToBack - id - 1, last - id - 1},
		}, nil
	}

	if config.startAfter {
		id++
	}
	if id < 0 || id > size {
		return splicePlan{}, errIndex(op, id)
	}

	if deleteCount == 0 {
		return splicePlan{mode: spliceInsert, index: id}, nil
	}

	if id == size {
		return splicePlan{}, errIndex(op, id)
	}

	// Counts beyond size+1 delete the same values as size+1.
	if deleteCount > size+1 {
		deleteCount = size + 1
	}

	end := id + deleteCount - 1
	if end <= last {
		return splicePlan{mode: spliceRange, first: [2]int{id, end}}, nil
	}
	if !config.circulate {
		return splicePlan{mode: spliceRange, first: [2]int{id, last}}, nil
	}

	wrapped := end - size
	if wrapped >= id {
		return splicePlan{mode: spliceWipe}, nil
	}
	// The front of the list is not shifted by removing [id, last].
	return splicePlan{
		mode:   spliceWrapForward,
		first:  [2]int{id, last},
		second: [2]int{0, wrapped},
	}, nil
}
