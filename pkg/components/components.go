// Package components will hold the production-ready components built from
// primitives and tokens. It currently exports only its version marker.
package components

// Version of the components package.
const Version = "0.0.1"
