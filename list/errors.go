package list

import (
	"log/slog"

	"github.com/pkg/errors"
)

var (
	// ErrIndexOutOfRange is returned when an operation is given a position
	// that does not designate a node of the list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidRange is returned by the range operations when the bounds do
	// not satisfy 0 <= start < end <= Len()-1, and by Splice when the range to
	// delete runs past the front of the list without wrapping.
	ErrInvalidRange = errors.New("invalid range")

	// ErrNoValues is returned by bulk insertions given an empty sequence, or a
	// sequence in which every value was rejected.
	ErrNoValues = errors.New("no values to insert")

	// ErrInvalidValue is returned when inserting an absent or blank value.
	ErrInvalidValue = errors.New("value cannot be empty")
)

func (list *List[V]) logger() *slog.Logger {
	if list.log != nil {
		return list.log
	}
	return slog.Default()
}

// fail reports err on the list logger and returns it, so that call sites can
// abort with a single statement.
func (list *List[V]) fail(op string, err error, args ...any) error {
	list.logger().Warn(err.Error(), append([]any{"op", op}, args...)...)
	return err
}

func errIndex(op string, position int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s: there is no node at index %d", op, position)
}

func errRange(op string, start, end int) error {
	return errors.Wrapf(ErrInvalidRange, "%s: start must be >= 0 and < end, end must be <= the last index (start=%d end=%d)", op, start, end)
}
