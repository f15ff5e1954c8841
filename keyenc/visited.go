package keyenc

import (
	"maps"
	"reflect"
)

// identity names a reference value for the duration of one encoding pass.
// Slices carry their length so s[:1] and s[:2] stay distinct.
type identity struct {
	ptr uintptr
	typ reflect.Type
	len int
}

func (id identity) isZero() bool { return id.ptr == 0 }

// visitedSet records the reference values entered during one pass.
type visitedSet struct {
	seen map[identity]struct{}
}

// enter marks id as visited and reports whether it was new.
// Values without identity (structs and arrays held by value) are always new.
func (v *visitedSet) enter(id identity) bool {
	if id.isZero() {
		return true
	}
	if v.seen == nil {
		v.seen = make(map[identity]struct{})
	}
	if _, ok := v.seen[id]; ok {
		return false
	}
	v.seen[id] = struct{}{}
	return true
}

func (v *visitedSet) clone() visitedSet {
	return visitedSet{seen: maps.Clone(v.seen)}
}

func identityOf(v reflect.Value) identity {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		return identity{ptr: v.Pointer(), typ: v.Type()}
	case reflect.Slice:
		return identity{ptr: v.Pointer(), typ: v.Type(), len: v.Len()}
	}
	return identity{}
}
