package list

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/utils"
)

const (
	// DefaultSeparator is the separator placed between values by String.
	DefaultSeparator = "<->"

	// EmptyText is the text representation of lists that contain no values.
	EmptyText = "[empty list]"
)

// String returns the values of the list, from front to back, joined by
// DefaultSeparator.
func (list *List[V]) String() string {
	return list.Join(DefaultSeparator)
}

// Join returns the values of the list, from front to back, joined by
// separator. Values are rendered by the list formatter if one was set, or as
// JSON otherwise.
func (list *List[V]) Join(separator string) string {
	if list.size == 0 {
		return EmptyText
	}

	b := new(strings.Builder)

	for n := list.head; n != nil; n = n.next {
		if n != list.head {
			b.WriteString(separator)
		}
		b.WriteString(list.render(n.value))
	}

	return b.String()
}

// ValueOf returns a tagged representation of the list, mapping the position of
// each value to its rendered text:
//
//	List {"0":"A","1":"B"}
func (list *List[V]) ValueOf() string {
	b := new(strings.Builder)
	b.WriteString("List {")

	i := 0
	for n := list.head; n != nil; n = n.next {
		if i != 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(strconv.Itoa(i)))
		b.WriteByte(':')
		b.WriteString(list.render(n.value))
		i++
	}

	b.WriteByte('}')
	return b.String()
}

func (list *List[V]) render(value V) string {
	if list.format != nil {
		return list.format(value)
	}
	b, err := json.Marshal(value)
	if err != nil {
		return utils.ToString(value)
	}
	return string(b)
}
