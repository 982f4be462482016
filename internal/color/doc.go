// Package color implements the hex color transforms used by the attendance
// app theme.
//
// Colors travel as "#RRGGBB" strings. The package converts them to CSS-style
// rgba() strings and produces lighter or darker variants by adding the same
// delta to every channel.
//
// # Transforms
//
//   - Alpha: "#RRGGBB" plus an opacity becomes "rgba(R, G, B, opacity)"
//   - Lighten: every channel is shifted by round(2.55 × amount) and clamped
//   - Darken: Lighten with the amount negated
//
// # Usage Example
//
//	overlay := color.Alpha("#4CAF50", 0.15)   // "rgba(76, 175, 80, 0.15)"
//	hover := color.Lighten("#4CAF50", 10)     // "#66c96a"
//	pressed := color.Darken("#4CAF50", 10)    // "#339637"
//
// # Malformed Input
//
// Only well-formed six digit hex is supported. Alpha renders unparsable
// channels as NaN, and Lighten and Darken return the input untouched. Use
// ParseHex when an error is wanted instead.
//
// # Thread Safety
//
// Every function is pure and safe for concurrent use.
package color
