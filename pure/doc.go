// Package pure provides typed memoization front-ends for pure functions.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The Tableize family wraps a function of fixed arity in a memo.Function.
// Arguments no longer need to be comparable: they are encoded structurally,
// so slices, maps, nested structs and even self-referential values work as
// keys.
//
// Features:
//   - TableizeI0O1 to TableizeI4O1: single-output memoizers.
//   - TableizeI1O2 to TableizeI4O2: dual-output memoizers. When the second
//     output is a non-nil error the call is not cached.
//   - TableizeMethodI1O1, TableizeMethodI2O1: memoized methods that forward
//     their receiver to the wrapped method.
//   - Every helper takes memo.Options to swap the hashing strategy, value
//     mapper, store or logger.
//
// This package embodies the idea that:
//
//	> If a function is pure, it should be cacheable like a mathematical function.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package pure
