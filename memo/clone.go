package memo

import "reflect"

// shallowCopy duplicates the top level of slices, maps and pointers to
// structs. Other values are returned as is.
func shallowCopy[R any](r R) R {
	v := reflect.ValueOf(&r).Elem()
	src := v
	if src.Kind() == reflect.Interface {
		if src.IsNil() {
			return r
		}
		src = src.Elem()
	}

	var dup reflect.Value
	switch src.Kind() {
	case reflect.Slice:
		if src.IsNil() {
			return r
		}
		dup = reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		reflect.Copy(dup, src)
	case reflect.Map:
		if src.IsNil() {
			return r
		}
		dup = reflect.MakeMapWithSize(src.Type(), src.Len())
		iter := src.MapRange()
		for iter.Next() {
			dup.SetMapIndex(iter.Key(), iter.Value())
		}
	case reflect.Pointer:
		if src.IsNil() || src.Elem().Kind() != reflect.Struct {
			return r
		}
		dup = reflect.New(src.Elem().Type())
		dup.Elem().Set(src.Elem())
	default:
		return r
	}
	v.Set(dup)
	return r
}
