package list

// node is the unit of storage of a List. The next pointer is the forward
// chain walked from the head; prev is only followed to walk backward from the
// tail.
type node[V any] struct {
	value V
	prev  *node[V]
	next  *node[V]
}

// node returns the node at the given position, or nil if the position is out
// of range. The walk starts from whichever end of the list is closer, so it
// never takes more than ceil(size/2) hops.
func (list *List[V]) node(position int) *node[V] {
	if position < 0 || position >= list.size {
		return nil
	}

	last := list.size - 1

	if position >= (last+1)/2 {
		n := list.tail
		for i := last; i != position; i-- {
			n = n.prev
		}
		return n
	}

	n := list.head
	for i := 0; i != position; i++ {
		n = n.next
	}
	return n
}

func (list *List[V]) pushBack(value V) *node[V] {
	n := &node[V]{value: value}
	if list.tail == nil {
		list.head = n
	} else {
		n.prev = list.tail
		list.tail.next = n
	}
	list.tail = n
	list.size++
	return n
}

func (list *List[V]) linkBefore(anchor *node[V], value V) *node[V] {
	n := &node[V]{value: value, prev: anchor.prev, next: anchor}
	if anchor.prev != nil {
		anchor.prev.next = n
	} else {
		list.head = n
	}
	anchor.prev = n
	list.size++
	return n
}

// linkManyBefore inserts values right before anchor, preserving their order.
// When anchor is nil the values are appended at the back of the list.
func (list *List[V]) linkManyBefore(anchor *node[V], values []V) {
	if anchor == nil {
		for _, v := range values {
			list.pushBack(v)
		}
		return
	}
	for i := len(values) - 1; i >= 0; i-- {
		anchor = list.linkBefore(anchor, values[i])
	}
}

// unlink detaches n from the list and returns its former neighbors.
func (list *List[V]) unlink(n *node[V]) (prev, next *node[V]) {
	prev = n.prev
	next = n.next

	n.prev = nil
	n.next = nil

	if prev != nil {
		prev.next = next
	}

	if next != nil {
		next.prev = prev
	}

	if n == list.head {
		list.head = next
	}

	if n == list.tail {
		list.tail = prev
	}

	list.size--
	return prev, next
}

func (list *List[V]) reset() {
	list.head = nil
	list.tail = nil
	list.size = 0
}
