// Package tokens contains the design tokens for colors, typography and
// spacing. Tokens are the foundational design decisions that power the
// design system; primitives consume them as style inputs.
//
// The built-in set is a placeholder with a stable shape and no values.
// Projects supply their own values in a YAML file loaded with Load, and
// export them as CSS custom properties with Tokens.CSS.
package tokens

// Version of the tokens package.
const Version = "0.0.1"
