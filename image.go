package bitmap

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"
)

// Palette maps color codes to display colors. Codes missing from the
// palette render as Unmapped.
type Palette map[Color]color.Color

// Unmapped is the display color for codes absent from a Palette.
var Unmapped color.Color = color.Transparent

// DefaultPalette returns a palette covering 'A'..'Z' with named CSS colors.
// Background maps to white.
func DefaultPalette() Palette {
	return Palette{
		'A': colornames.Aqua,
		'B': colornames.Blue,
		'C': colornames.Coral,
		'D': colornames.Darkblue,
		'E': colornames.Beige,
		'F': colornames.Fuchsia,
		'G': colornames.Green,
		'H': colornames.Hotpink,
		'I': colornames.Indigo,
		'J': colornames.Goldenrod,
		'K': colornames.Black,
		'L': colornames.Lime,
		'M': colornames.Magenta,
		'N': colornames.Navy,
		'O': colornames.White,
		'P': colornames.Purple,
		'Q': colornames.Turquoise,
		'R': colornames.Red,
		'S': colornames.Silver,
		'T': colornames.Teal,
		'U': colornames.Royalblue,
		'V': colornames.Violet,
		'W': colornames.Wheat,
		'X': colornames.Slategray,
		'Y': colornames.Yellow,
		'Z': colornames.Tomato,
	}
}

func (p Palette) lookup(c Color) color.Color {
	if v, ok := p[c]; ok {
		return v
	}
	return Unmapped
}

// View is a read-only image.Image over a Canvas. Cell (1, 1) maps to
// pixel (0, 0).
type View struct {
	canvas  *Canvas
	palette Palette
}

// Image returns an image.Image view of the canvas drawn with p. A nil
// palette uses DefaultPalette.
func (c *Canvas) Image(p Palette) *View {
	if p == nil {
		p = DefaultPalette()
	}
	return &View{canvas: c, palette: p}
}

// At implements the image.Image interface.
func (v *View) At(x, y int) color.Color {
	col, err := v.canvas.Get(x+1, y+1)
	if err != nil {
		return Unmapped
	}
	return v.palette.lookup(col)
}

// Bounds implements the image.Image interface.
func (v *View) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.canvas.width, v.canvas.height)
}

// ColorModel implements the image.Image interface.
func (v *View) ColorModel() color.Model {
	return color.RGBAModel
}

// ToPaletted converts the view to an *image.Paletted holding one entry per
// color code in use plus Unmapped.
func (v *View) ToPaletted() *image.Paletted {
	pal := color.Palette{Unmapped}
	index := map[Color]uint8{}
	for _, col := range v.canvas.cells {
		if _, ok := index[col]; ok {
			continue
		}
		if _, ok := v.palette[col]; !ok {
			index[col] = 0
			continue
		}
		index[col] = uint8(len(pal))
		pal = append(pal, v.palette[col])
	}

	img := image.NewPaletted(v.Bounds(), pal)
	for i, col := range v.canvas.cells {
		img.Pix[i] = index[col]
	}
	return img
}

// Scaled returns the view enlarged by factor using nearest-neighbor
// sampling, so every cell becomes a factor x factor block. A factor below
// 1 is treated as 1.
func (v *View) Scaled(factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := v.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), v, b, xdraw.Src, nil)
	return dst
}
