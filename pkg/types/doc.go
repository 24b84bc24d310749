// Package types defines the stable vocabulary shared by the esskit packages:
// the variant tags that identify every value a compound can hold, and the
// typed errors returned by the codec.
//
// Design goals:
//   - A closed set of tags; anything outside it is rejected, never guessed.
//   - Typed errors with stable categories (io/format/corrupt/unsupported/...).
//
// This package has no dependencies beyond the standard library.
package types
