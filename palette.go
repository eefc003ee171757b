package chord

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Palette is an ordered list of segment colors. A diagram assigns colors
// with Color, cycling when the ring has more segments than the palette has
// entries.
type Palette []gg.RGBA

// Color returns the palette color for index i, cycling past the end.
// An empty palette yields black.
func (p Palette) Color(i int) gg.RGBA {
	if len(p) == 0 {
		return gg.Black
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// rgb8 builds an opaque color from 8-bit components.
func rgb8(r, g, b uint8) gg.RGBA {
	return gg.RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// Qualitative palettes from the ColorBrewer and matplotlib sets.
// Set1 is the default diagram palette.
var (
	Set1 = Palette{
		rgb8(228, 26, 28), rgb8(55, 126, 184), rgb8(77, 175, 74),
		rgb8(152, 78, 163), rgb8(255, 127, 0), rgb8(255, 255, 51),
		rgb8(166, 86, 40), rgb8(247, 129, 191), rgb8(153, 153, 153),
	}
	Set2 = Palette{
		rgb8(102, 194, 165), rgb8(252, 141, 98), rgb8(141, 160, 203),
		rgb8(231, 138, 195), rgb8(166, 216, 84), rgb8(255, 217, 47),
		rgb8(229, 196, 148), rgb8(179, 179, 179),
	}
	Set3 = Palette{
		rgb8(141, 211, 199), rgb8(255, 255, 179), rgb8(190, 186, 218),
		rgb8(251, 128, 114), rgb8(128, 177, 211), rgb8(253, 180, 98),
		rgb8(179, 222, 105), rgb8(252, 205, 229), rgb8(217, 217, 217),
		rgb8(188, 128, 189), rgb8(204, 235, 197), rgb8(255, 237, 111),
	}
	Pastel1 = Palette{
		rgb8(251, 180, 174), rgb8(179, 205, 227), rgb8(204, 235, 197),
		rgb8(222, 203, 228), rgb8(254, 217, 166), rgb8(255, 255, 204),
		rgb8(229, 216, 189), rgb8(253, 218, 236), rgb8(242, 242, 242),
	}
	Dark2 = Palette{
		rgb8(27, 158, 119), rgb8(217, 95, 2), rgb8(117, 112, 179),
		rgb8(231, 41, 138), rgb8(102, 166, 30), rgb8(230, 171, 2),
		rgb8(166, 118, 29), rgb8(102, 102, 102),
	}
	Accent = Palette{
		rgb8(127, 201, 127), rgb8(190, 174, 212), rgb8(253, 192, 134),
		rgb8(255, 255, 153), rgb8(56, 108, 176), rgb8(240, 2, 127),
		rgb8(191, 91, 23), rgb8(102, 102, 102),
	}
	Paired = Palette{
		rgb8(166, 206, 227), rgb8(31, 120, 180), rgb8(178, 223, 138),
		rgb8(51, 160, 44), rgb8(251, 154, 153), rgb8(227, 26, 28),
		rgb8(253, 191, 111), rgb8(255, 127, 0), rgb8(202, 178, 214),
		rgb8(106, 61, 154), rgb8(255, 255, 153), rgb8(177, 89, 40),
	}
	Tab10 = Palette{
		rgb8(31, 119, 180), rgb8(255, 127, 14), rgb8(44, 160, 44),
		rgb8(214, 39, 40), rgb8(148, 103, 189), rgb8(140, 86, 75),
		rgb8(227, 119, 194), rgb8(127, 127, 127), rgb8(188, 189, 34),
		rgb8(23, 190, 207),
	}
)

// palettesByName maps lowercase palette names to the built-in sets.
var palettesByName = map[string]Palette{
	"set1":    Set1,
	"set2":    Set2,
	"set3":    Set3,
	"pastel1": Pastel1,
	"dark2":   Dark2,
	"accent":  Accent,
	"paired":  Paired,
	"tab10":   Tab10,
}

// PaletteByName looks up a built-in palette by its matplotlib colormap name,
// case-insensitively. The second return value reports whether the name is
// known; unknown names yield Set1.
func PaletteByName(name string) (Palette, bool) {
	p, ok := palettesByName[strings.ToLower(name)]
	if !ok {
		return Set1, false
	}
	return p, true
}

// GeneratePalette returns n visually distinct opaque colors with evenly
// spaced hues. Useful for rings with more segments than any built-in
// palette covers. Returns nil when n < 1.
func GeneratePalette(n int) Palette {
	if n < 1 {
		return nil
	}
	p := make(Palette, n)
	for i := range p {
		p[i] = gg.HSL(float64(i)*360/float64(n), 0.65, 0.5)
	}
	return p
}

// ParseColor turns a color string into a color. It accepts SVG 1.1 color
// names ("tomato", "steelblue") case-insensitively and hex strings with a
// leading '#' in the forms gg.Hex supports.
func ParseColor(s string) (gg.RGBA, error) {
	if strings.HasPrefix(s, "#") {
		return gg.Hex(s), nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: unknown color %q", ErrInvalidArgument, s)
}
