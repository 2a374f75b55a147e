package list

import (
	"fmt"
	"strconv"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		scenario string
		list     fmt.Stringer
		want     string
	}{
		{
			scenario: "integers are joined by the default separator",
			list:     makeList(1, 2, 3),
			want:     "1<->2<->3",
		},

		{
			scenario: "strings are rendered as JSON",
			list:     New[string]().Add("a").Add("b"),
			want:     `"a"<->"b"`,
		},

		{
			scenario: "an empty list renders as a sentinel",
			list:     new(List[int]),
			want:     EmptyText,
		},

		{
			scenario: "values that cannot be encoded as JSON are still rendered",
			list:     New[complex128]().Add(1 + 2i),
			want:     "(1+2i)",
		},

		{
			scenario: "the formatter renders values",
			list: New(WithFormatter(func(i int) string {
				return "#" + strconv.Itoa(i)
			})).Add(1).Add(2),
			want: "#1<->#2",
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			if s := test.list.String(); s != test.want {
				t.Errorf("string mismatch: got=%q want=%q", s, test.want)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	list := makeList(1, 2, 3)

	if s := list.Join(", "); s != "1, 2, 3" {
		t.Errorf("string mismatch: %q", s)
	}
	if s := list.Join(""); s != "123" {
		t.Errorf("string mismatch: %q", s)
	}
	if s := makeList(1).Join(", "); s != "1" {
		t.Errorf("string mismatch: %q", s)
	}
}

func TestSetFormatter(t *testing.T) {
	list := makeList(4, 5)

	if list.SetFormatter(func(i int) string { return strconv.Itoa(100 / i) }) {
		t.Error("formatter panicking on the zero-value must be rejected")
	}
	if s := list.String(); s != "4<->5" {
		t.Errorf("string mismatch: %q", s)
	}

	if !list.SetFormatter(func(i int) string { return fmt.Sprintf("<%d>", i) }) {
		t.Error("valid formatter rejected")
	}
	if s := list.String(); s != "<4><-><5>" {
		t.Errorf("string mismatch: %q", s)
	}

	if !list.SetFormatter(nil) {
		t.Error("resetting the formatter failed")
	}
	if s := list.String(); s != "4<->5" {
		t.Errorf("string mismatch: %q", s)
	}
}

func TestSetFormatterSkipsRejectedZeroValue(t *testing.T) {
	list := New[*int]()
	one := 1
	list.Add(&one)

	if !list.SetFormatter(func(p *int) string { return strconv.Itoa(*p) }) {
		t.Error("formatter dereferencing its argument must be accepted for pointer values")
	}
	if s := list.String(); s != "1" {
		t.Errorf("string mismatch: %q", s)
	}

	words := New[string]()
	words.Add("ab")

	if !words.SetFormatter(func(s string) string { return s[:1] }) {
		t.Error("formatter indexing its argument must be accepted for string values")
	}
	if s := words.String(); s != "a" {
		t.Errorf("string mismatch: %q", s)
	}
}

func TestValueOf(t *testing.T) {
	if s := new(List[int]).ValueOf(); s != "List {}" {
		t.Errorf("empty list mismatch: %q", s)
	}
	if s := New[string]().Add("A").Add("B").ValueOf(); s != `List {"0":"A","1":"B"}` {
		t.Errorf("list mismatch: %q", s)
	}

	list := New(WithFormatter(func(i int) string { return strconv.Itoa(i * 10) }))
	list.Add(1).Add(2)

	if s := list.ValueOf(); s != `List {"0":10,"1":20}` {
		t.Errorf("list with formatter mismatch: %q", s)
	}
}
