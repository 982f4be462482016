// Package tui implements the interactive palette preview started by
// "themectl preview".
//
// Every palette entry is listed with its swatch, the lightened and darkened
// variants at the current amount, and its 15% alpha tint. The amount starts
// at 10 and moves in steps of 5 within [0, 100]. The frame uses the light or
// dark navigation colors and D switches between them.
package tui
