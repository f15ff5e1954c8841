// Package keyenc turns an argument tuple into a deterministic string that
// captures every primitive leaf reachable from it.
//
// Each leaf is written as
//
//	<path>_[<type>]<key>: <value>;
//
// where path is the route from the tuple root to the leaf's parent, type is
// the Go type of the leaf, key is the leaf's own segment and value its text.
// Segments are "#<i>" for tuple positions and sequence indexes, ".<Field>"
// for exported struct fields and "{<type>:<quoted key>}" for map entries.
// String values and map keys are Go-quoted, so nothing inside them can be
// mistaken for a delimiter.
//
// Traversal is depth first. Struct fields follow declaration order, maps are
// visited in the lexicographic order of their key segments, and entries whose
// keys render alike are ordered by the encoding of their values. The mapper
// applies to map keys as well as values. Pointers and interfaces are
// transparent: &x and x encode alike, and a pointer chain that loops back on
// itself encodes as nil.
//
// Known limitations, all accepted:
//   - nil values, functions and channels contribute nothing, so a field set
//     to nil and a missing map entry encode identically;
//   - a pointer, map or slice is encoded once per pass; a second reference to
//     it, cyclic or not, is skipped silently. Composite map keys are encoded
//     against a copy of the references seen so far, so a key that leads back
//     to an enclosing value stops there;
//   - unexported struct fields are ignored. Structs without exported fields
//     that implement encoding.TextMarshaler or fmt.Stringer are encoded as a
//     single leaf using that text instead (time.Time, for example).
package keyenc
