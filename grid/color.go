package grid

import "image/color"

var palette = [...]color.RGBA{
	Blank:     {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Wall:      {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	Start:     {R: 0x00, G: 0xe4, B: 0x30, A: 0xff},
	Objective: {R: 0xe6, G: 0x29, B: 0x37, A: 0xff},
	Visited:   {R: 0x66, G: 0xbf, B: 0xff, A: 0xff},
	Solution:  {R: 0xff, G: 0xcb, B: 0x00, A: 0xff},
}

// Color classifies a tag into its display color. Unknown tags render magenta
// so they stand out.
func (t CellType) Color() color.RGBA {
	if int(t) < len(palette) {
		return palette[t]
	}
	return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
}
