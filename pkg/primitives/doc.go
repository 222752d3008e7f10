// Package primitives provides the low-level layout building blocks of the
// design system. Every other component is expected to be composed from
// these primitives and the values in package tokens.
//
// Box is the fundamental building block for layouts: a flexible container
// that accepts styling props and renders as any element kind.
package primitives

// Version of the primitives package.
const Version = "0.0.1"
