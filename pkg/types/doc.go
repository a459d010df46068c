// Package types defines the shared vocabulary of the confkit module:
// typed errors with stable categories, parse/save option structs, and
// the Limits presets that bound tree construction.
//
// Design goals:
//   - Typed errors with stable categories (name/notfound/limit/io/...).
//   - Plain option structs; zero values behave sensibly.
//   - Resource bounds as documented, configurable limits rather than
//     hidden constants.
//
// This package has no dependencies beyond the standard library.
package types
