// Package list contains the implementation of a type-safe, doubly-linked list
// with positional access.
//
// The standard library's container/list, like most linked lists, hands out
// element references and expects programs to navigate from one element to the
// next. The List type in this package instead exposes an API indexed by
// position, similar to a slice: values are read, inserted and removed at an
// index, ranges of values are read or removed in bulk, and the Splice method
// combines a deletion and an insertion in a single call, with support for
// negative indexes and for ranges that wrap around the ends of the list.
//
// Positional lookups walk the list from whichever end is closer to the target,
// so reaching any index costs at most half the length of the list.
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list:
//
//	l := list.List[string]{}
//	l.Add("A").Add("B").Add("C")
//
//	if err := l.Splice(1, 1, []string{"X", "Y"}); err != nil {
//		...
//	}
//
//	fmt.Println(l.String()) // "A"<->"X"<->"Y"<->"C"
//
// Absent values (nil pointers, maps, slices, ...) and blank strings are never
// stored in a list. Operations given invalid arguments do not panic, they
// report a diagnostic on the list logger and return an error, leaving the list
// unchanged.
//
// Lists are not safe to use concurrently from multiple goroutines, programs
// that share a list must synchronize access to it.
package list

import (
	"log/slog"
	"reflect"
	"strings"

	"github.com/emirpasic/gods/containers"
)

// Formatter is the type of functions used to render values of a list as text.
type Formatter[V any] func(V) string

// Blanker may be implemented by value types which have a notion of blank
// values. Blank values are rejected by insertions, the same way blank strings
// are.
type Blanker interface {
	Blank() bool
}

// Option is used to configure lists created by New.
type Option[V any] func(*List[V])

// WithFormatter configures the function used to render values when the list
// is converted to text. See SetFormatter for the conditions under which the
// function is accepted.
func WithFormatter[V any](f Formatter[V]) Option[V] {
	return func(list *List[V]) { list.SetFormatter(f) }
}

// WithLogger configures the logger that diagnostics are reported to. By
// default, lists use slog.Default().
func WithLogger[V any](logger *slog.Logger) Option[V] {
	return func(list *List[V]) { list.log = logger }
}

// List values are ordered sequences of values supporting insertion, removal
// and lookups by position.
//
// The zero-value is a valid, empty list.
type List[V any] struct {
	head   *node[V]
	tail   *node[V]
	size   int
	format Formatter[V]
	log    *slog.Logger
}

var _ containers.Container = (*List[int])(nil)

// New constructs a new empty list configured with the given options.
func New[V any](options ...Option[V]) *List[V] {
	list := new(List[V])
	for _, opt := range options {
		opt(list)
	}
	return list
}

// SetFormatter sets the function used to render values of the list as text.
//
// When the zero-value of V may be stored in the list, the function is probed
// once with it; if it panics, it is discarded, the previous formatter is
// retained, and the method returns false. Formatters of types whose zero-value
// is rejected (pointers, blank strings, ...) are never called with it, and are
// accepted without probing.
//
// Passing nil restores the default JSON rendering.
func (list *List[V]) SetFormatter(f Formatter[V]) (ok bool) {
	if f == nil {
		list.format = nil
		return true
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	var zero V
	if !rejected(zero) {
		_ = f(zero)
	}
	list.format = f
	return true
}

// Len returns the number of values in the list.
func (list *List[V]) Len() int { return list.size }

// Front returns the first value of the list, and false if the list is empty.
func (list *List[V]) Front() (value V, ok bool) {
	if n := list.head; n != nil {
		return n.value, true
	}
	return value, false
}

// Back returns the last value of the list, and false if the list is empty.
func (list *List[V]) Back() (value V, ok bool) {
	if n := list.tail; n != nil {
		return n.value, true
	}
	return value, false
}

// Show returns the value at the given position. If there is no value at this
// position, the method returns the zero-value and false.
func (list *List[V]) Show(position int) (value V, ok bool) {
	if n := list.node(position); n != nil {
		return n.value, true
	}
	return value, false
}

// Add appends value at the back of the list and returns the list, which lets
// calls be chained.
//
// Absent and blank values are not added, the list only reports a diagnostic.
func (list *List[V]) Add(value V) *List[V] {
	if rejected(value) {
		list.fail("add", ErrInvalidValue)
		return list
	}
	list.pushBack(value)
	return list
}

// AddMany appends values at the back of the list, in order. Absent and blank
// values are skipped.
//
// The method returns ErrNoValues if values is empty.
func (list *List[V]) AddMany(values []V) error {
	const op = "addMany"
	values = list.accept(op, values)
	if len(values) == 0 {
		return list.fail(op, ErrNoValues)
	}
	list.linkManyBefore(nil, values)
	return nil
}

// InsertBefore inserts value before the value currently at the given position.
//
// The method returns ErrIndexOutOfRange if there is no value at this position,
// and ErrInvalidValue if value is absent or blank.
func (list *List[V]) InsertBefore(position int, value V) error {
	const op = "insertBefore"
	if rejected(value) {
		return list.fail(op, ErrInvalidValue, "index", position)
	}
	n := list.node(position)
	if n == nil {
		return list.fail(op, errIndex(op, position), "index", position)
	}
	list.linkBefore(n, value)
	return nil
}

// InsertManyBefore inserts values before the value currently at the given
// position. After the call, values appear in the list in the same order they
// had in the slice. Absent and blank values are skipped.
func (list *List[V]) InsertManyBefore(position int, values []V) error {
	const op = "insertManyBefore"
	values = list.accept(op, values)
	if len(values) == 0 {
		return list.fail(op, ErrNoValues, "index", position)
	}
	n := list.node(position)
	if n == nil {
		return list.fail(op, errIndex(op, position), "index", position)
	}
	list.linkManyBefore(n, values)
	return nil
}

// Remove removes the value at the given position and returns it.
//
// The method returns ErrIndexOutOfRange if there is no value at this position.
func (list *List[V]) Remove(position int) (value V, err error) {
	const op = "remove"
	n := list.node(position)
	if n == nil {
		return value, list.fail(op, errIndex(op, position), "index", position)
	}
	list.unlink(n)
	return n.value, nil
}

// All returns all the values of the list, from front to back.
func (list *List[V]) All() []V {
	values := make([]V, list.size)
	i := list.size
	for n := list.tail; n != nil; n = n.prev {
		i--
		values[i] = n.value
	}
	return values
}

// Reset removes all values from the list and returns it. The operation runs in
// constant time.
func (list *List[V]) Reset() *List[V] {
	list.reset()
	return list
}

// Clone returns a copy of the list, sharing its formatter and logger.
func (list *List[V]) Clone() *List[V] {
	c := &List[V]{format: list.format, log: list.log}
	for n := list.head; n != nil; n = n.next {
		c.pushBack(n.value)
	}
	return c
}

// Empty returns true if the list contains no values.
func (list *List[V]) Empty() bool { return list.size == 0 }

// Size is an alias of Len.
func (list *List[V]) Size() int { return list.size }

// Clear is an alias of Reset.
func (list *List[V]) Clear() { list.reset() }

// Values returns the values of the list, from front to back, as a slice of
// empty interfaces.
func (list *List[V]) Values() []interface{} {
	values := make([]interface{}, 0, list.size)
	for n := list.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// accept returns the subset of values that may be stored in the list. The
// input slice is not modified.
func (list *List[V]) accept(op string, values []V) []V {
	for i, v := range values {
		if rejected(v) {
			accepted := make([]V, i, len(values))
			copy(accepted, values[:i])
			for _, v := range values[i:] {
				if rejected(v) {
					list.fail(op, ErrInvalidValue)
				} else {
					accepted = append(accepted, v)
				}
			}
			return accepted
		}
	}
	return values
}

func rejected(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		if v.IsNil() {
			return true
		}
	case reflect.String:
		if strings.TrimSpace(v.String()) == "" {
			return true
		}
	}
	if b, ok := value.(Blanker); ok {
		return b.Blank()
	}
	return false
}
