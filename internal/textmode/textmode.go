// Package textmode draws the firmware's text-mode video memory.
//
// Video memory is Cols*Rows cells of two bytes: the character, then an
// attribute whose low nibble is the foreground colour and high nibble the
// background colour, both indexes into Palette.
package textmode

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	Cols = 80
	Rows = 50

	// CellBytes is the size of one cell in video memory.
	CellBytes = 2

	// Size is the length of video memory.
	Size = Cols * Rows * CellBytes

	CellWidth  = 4
	CellHeight = 6

	// baseline is the glyph baseline inside a cell.
	baseline = 5
)

// Palette is the standard 16-colour text palette.
var Palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0x00, 0x00, 0xaa, 0xff},
	{0x00, 0xaa, 0x00, 0xff},
	{0x00, 0xaa, 0xaa, 0xff},
	{0xaa, 0x00, 0x00, 0xff},
	{0xaa, 0x00, 0xaa, 0xff},
	{0xaa, 0x55, 0x00, 0xff},
	{0xaa, 0xaa, 0xaa, 0xff},
	{0x55, 0x55, 0x55, 0xff},
	{0x55, 0x55, 0xff, 0xff},
	{0x55, 0xff, 0x55, 0xff},
	{0x55, 0xff, 0xff, 0xff},
	{0xff, 0x55, 0x55, 0xff},
	{0xff, 0x55, 0xff, 0xff},
	{0xff, 0xff, 0x55, 0xff},
	{0xff, 0xff, 0xff, 0xff},
}

// Attr builds a cell attribute.
func Attr(fg, bg uint8) uint8 { return bg<<4 | fg&0x0f }

// Put stores ch with attribute attr at col, row. Out of range positions are
// ignored.
func Put(vram []byte, col, row int, ch, attr byte) {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return
	}
	i := (row*Cols + col) * CellBytes
	if i+1 >= len(vram) {
		return
	}
	vram[i] = ch
	vram[i+1] = attr
}

// PutString writes s from col, row, clipped at the end of the row.
func PutString(vram []byte, col, row int, s string, attr byte) {
	for i := 0; i < len(s); i++ {
		Put(vram, col+i, row, s[i], attr)
	}
}

// Render draws every complete cell of vram onto d and calls d.Display.
func Render(d drivers.Displayer, vram []byte) error {
	font := &tinyfont.TomThumb
	n := min(len(vram)/CellBytes, Cols*Rows)
	for i := 0; i < n; i++ {
		ch, attr := vram[i*CellBytes], vram[i*CellBytes+1]
		x := int16(i%Cols) * CellWidth
		y := int16(i/Cols) * CellHeight

		bg := Palette[attr>>4]
		for dy := int16(0); dy < CellHeight; dy++ {
			for dx := int16(0); dx < CellWidth; dx++ {
				d.SetPixel(x+dx, y+dy, bg)
			}
		}
		if ch > ' ' && ch < 0x7f {
			tinyfont.DrawChar(d, font, x, y+baseline, rune(ch), Palette[attr&0x0f])
		}
	}
	return d.Display()
}

// Screen is an in-memory drivers.Displayer sized for the full text grid.
type Screen struct {
	img *image.RGBA
}

// NewScreen returns a blank screen.
func NewScreen() *Screen {
	return &Screen{img: image.NewRGBA(image.Rect(0, 0, Cols*CellWidth, Rows*CellHeight))}
}

func (s *Screen) Size() (x, y int16) {
	b := s.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (s *Screen) SetPixel(x, y int16, c color.RGBA) {
	s.img.SetRGBA(int(x), int(y), c)
}

func (s *Screen) Display() error { return nil }

// Image returns the backing image.
func (s *Screen) Image() *image.RGBA { return s.img }
