// Package numsys implements arbitrary-precision signed integers in two
// positional number systems with identical arithmetic semantics: Binary, a
// fixed-radix base-2^32 system, and Factorial, the mixed-radix factoradic
// system where digit i weighs i! and ranges over [0, i].
//
// Both types are interchangeable as integer-like values: they parse the same
// decimal strings, print the same canonical decimal form, and agree on every
// comparison and arithmetic result. The generic functions Abs, Pow, Sqrt,
// Inc, and Dec are derived once from the engines' shared primitive contract
// and work with either type.
//
// Values are immutable: every operation returns a new value, so distinct
// values are safe to use concurrently without synchronization. Sharing a
// single value between goroutines that replace it requires external
// serialization, as with any Go value.
package numsys
