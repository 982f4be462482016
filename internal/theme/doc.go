// Package theme holds the attendance app palette and the helpers built on it.
//
// A Theme is an explicit value: the palette is validated once by New and then
// passed to the renderers, the MCP tools and the preview. There is no
// package-level mutable palette.
//
//	th, err := theme.New(theme.DefaultPalette(), theme.SchemeLight)
//	if err != nil {
//	    return err
//	}
//	badge := th.Alpha(th.StatusColor(theme.StatusPresent), 0.15)
package theme
