package keyenc

import (
	"reflect"
	"strings"

	"github.com/on-the-ground/memo_ive_go/valuemap"
)

// ReceiverSegment is the path segment of a receiver included in the key.
const ReceiverSegment = "@"

// Encode returns the canonical encoding of args. mapper is applied to every
// visited value before its shape is decided and must not be nil.
func Encode(args []any, mapper valuemap.Mapper) string {
	e := encoder{mapper: mapper}
	e.tuple(args)
	return e.buf.String()
}

// EncodeBound is Encode with receiver encoded first under ReceiverSegment,
// for methods whose result depends on the receiver's state.
func EncodeBound(receiver any, args []any, mapper valuemap.Mapper) string {
	e := encoder{mapper: mapper}
	e.member("", ReceiverSegment, receiver)
	e.tuple(args)
	return e.buf.String()
}

// detached encodes raw on a copy of the visited set. References already
// entered are still skipped, so cycles end, but siblings encoded this way do
// not affect each other and the result is independent of map order.
func (e *encoder) detached(segment string, raw any) string {
	d := encoder{mapper: e.mapper, visited: e.visited.clone()}
	d.member("", segment, raw)
	return d.buf.String()
}

type encoder struct {
	mapper  valuemap.Mapper
	visited visitedSet
	buf     strings.Builder
}

func (e *encoder) tuple(args []any) {
	if len(args) > 0 {
		e.visited.enter(identityOf(reflect.ValueOf(args)))
	}
	for i, arg := range args {
		e.member("", indexSegment(i), arg)
	}
}

func (e *encoder) member(parent, segment string, raw any) {
	s := classify(e.mapper.Map(raw))
	switch s.kind {
	case Primitive:
		e.leaf(parent, segment, s)
	case Composite, Sequence:
		if !e.visited.enter(s.ref) {
			return
		}
		path := parent + segment
		for _, m := range e.members(s) {
			e.member(path, m.segment, m.value)
		}
	}
}

func (e *encoder) leaf(parent, segment string, s shape) {
	e.buf.WriteString(parent)
	e.buf.WriteString("_[")
	e.buf.WriteString(s.typ)
	e.buf.WriteString("]")
	e.buf.WriteString(segment)
	e.buf.WriteString(": ")
	e.buf.WriteString(s.text)
	e.buf.WriteString(";")
}
