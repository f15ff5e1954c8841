package keyenc

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Kind is the closed set of shapes the encoder distinguishes.
type Kind uint8

const (
	Null Kind = iota
	Skip
	Primitive
	Composite
	Sequence
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Skip:
		return "skip"
	case Primitive:
		return "primitive"
	case Composite:
		return "composite"
	case Sequence:
		return "sequence"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// KindOf reports how the encoder treats v.
func KindOf(v any) Kind {
	return classify(v).kind
}

// shape is the introspected form of one value. Primitives carry their type
// tag and text; composites and sequences carry the value to walk and, when
// they were reached through a reference, its identity.
type shape struct {
	kind  Kind
	typ   string
	text  string
	ref   identity
	value reflect.Value
}

type member struct {
	segment string
	value   any
}

// classify is the only place that inspects runtime types.
func classify(x any) shape {
	if x == nil {
		return shape{kind: Null}
	}
	v := reflect.ValueOf(x)
	var ref identity
	var chain []identity
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return shape{kind: Null}
		}
		if v.Kind() == reflect.Pointer {
			// var x any; x = &x never reaches a non-pointer.
			id := identityOf(v)
			if slices.Contains(chain, id) {
				return shape{kind: Null}
			}
			chain = append(chain, id)
			if ref.isZero() {
				ref = id
			}
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Invalid:
		return shape{kind: Null}
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return shape{kind: Skip}
	case reflect.Map:
		if v.IsNil() {
			return shape{kind: Null}
		}
		if ref.isZero() {
			ref = identityOf(v)
		}
		return shape{kind: Composite, ref: ref, value: v}
	case reflect.Struct:
		if text, ok := textOf(v); ok {
			return shape{kind: Primitive, typ: v.Type().String(), text: strconv.Quote(text)}
		}
		return shape{kind: Composite, ref: ref, value: v}
	case reflect.Slice:
		if v.IsNil() {
			return shape{kind: Null}
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return shape{kind: Primitive, typ: v.Type().String(), text: strconv.Quote(string(v.Bytes()))}
		}
		if ref.isZero() {
			ref = identityOf(v)
		}
		return shape{kind: Sequence, ref: ref, value: v}
	case reflect.Array:
		return shape{kind: Sequence, ref: ref, value: v}
	}

	if text, ok := primitiveText(v); ok {
		return shape{kind: Primitive, typ: v.Type().String(), text: text}
	}
	return shape{kind: Skip}
}

func primitiveText(v reflect.Value) (string, bool) {
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), true
	case reflect.Complex64:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 64), true
	case reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128), true
	case reflect.String:
		return strconv.Quote(v.String()), true
	}
	return "", false
}

// textOf renders opaque structs such as time.Time through their own text
// form. Structs with exported fields are walked instead, so a type embedding
// time.Time keeps its other fields in the key.
func textOf(v reflect.Value) (string, bool) {
	if !v.CanInterface() || hasExportedFields(v.Type()) {
		return "", false
	}
	switch t := v.Interface().(type) {
	case encoding.TextMarshaler:
		if b, err := t.MarshalText(); err == nil {
			return string(b), true
		}
	case fmt.Stringer:
		return t.String(), true
	}
	return "", false
}

func hasExportedFields(t reflect.Type) bool {
	for i := range t.NumField() {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}

// members lists the enumerable members of a composite or sequence in
// traversal order.
func (e *encoder) members(s shape) []member {
	v := s.value
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]member, v.Len())
		for i := range out {
			out[i] = member{segment: indexSegment(i), value: v.Index(i).Interface()}
		}
		return out
	case reflect.Struct:
		t := v.Type()
		out := make([]member, 0, t.NumField())
		for i := range t.NumField() {
			if f := t.Field(i); f.IsExported() {
				out = append(out, member{segment: "." + f.Name, value: v.Field(i).Interface()})
			}
		}
		return out
	case reflect.Map:
		out := make([]member, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out = append(out, member{segment: e.mapSegment(iter.Key()), value: iter.Value().Interface()})
		}
		e.sortEntries(out)
		return out
	}
	return nil
}

// sortEntries orders map entries by key segment. Distinct keys may share a
// segment (pointers to equal values, for one), so ties fall back to the
// encoding of the entry's value.
func (e *encoder) sortEntries(out []member) {
	bySegment := func(a, b member) int {
		return strings.Compare(a.segment, b.segment)
	}
	slices.SortFunc(out, bySegment)

	for i := 0; i < len(out); {
		j := i + 1
		for j < len(out) && out[j].segment == out[i].segment {
			j++
		}
		if j-i > 1 {
			run := make([]tiedMember, j-i)
			for k, m := range out[i:j] {
				run[k] = tiedMember{member: m, text: e.detached(m.segment, m.value)}
			}
			slices.SortStableFunc(run, func(a, b tiedMember) int {
				return strings.Compare(a.text, b.text)
			})
			for k, t := range run {
				out[i+k] = t.member
			}
		}
		i = j
	}
}

type tiedMember struct {
	member
	text string
}

func indexSegment(i int) string {
	return "#" + strconv.Itoa(i)
}

// mapSegment renders a map key. The mapper applies to keys as it does to
// values, so RoundFloats also normalises float keys.
func (e *encoder) mapSegment(k reflect.Value) string {
	key := k.Interface()
	s := classify(e.mapper.Map(key))
	typ, text := s.typ, s.text
	switch s.kind {
	case Null, Skip:
		typ = "nil"
	case Composite, Sequence:
		typ = k.Type().String()
		text = e.detached(indexSegment(0), key)
	}
	return "{" + typ + ":" + strconv.Quote(text) + "}"
}
