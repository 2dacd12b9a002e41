package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-board/board/pkg/board"
)

const (
	defaultImagePadding = 8
	imageIndent         = "  "
	imageRule           = "--------"
)

// Image rasterizes a board into an image.RGBA with a fixed-width font.
// Intended for snapshot-style output; the zero value renders black on
// white with the built-in 7x13 face.
type Image struct {
	// Face is the font face to draw with. Defaults to basicfont.Face7x13.
	Face font.Face
	// Foreground is the text color. Defaults to black.
	Foreground color.Color
	// Background fills the canvas. Defaults to white.
	Background color.Color
	// Padding is the pixel margin around the content. Defaults to 8.
	Padding int
}

// Render draws the board's rows top to bottom and returns the image.
// Section bodies are indented under their headers; nested sections have
// already dissolved into the body by the time rows are computed.
func (r Image) Render(b board.Board) *image.RGBA {
	face := r.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	fg := r.Foreground
	if fg == nil {
		fg = color.Black
	}
	bg := r.Background
	if bg == nil {
		bg = color.White
	}
	padding := r.Padding
	if padding == 0 {
		padding = defaultImagePadding
	}

	lines := imageLines(b)
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()

	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	height := lineHeight * len(lines)

	img := image.NewRGBA(image.Rect(0, 0, width+2*padding, height+2*padding))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
	}
	y := padding + metrics.Ascent.Ceil()
	for _, line := range lines {
		d.Dot = fixed.P(padding, y)
		d.DrawString(line)
		y += lineHeight
	}
	return img
}

// imageLines projects the board into plain text lines, one per drawn row.
func imageLines(b board.Board) []string {
	var lines []string
	for i, row := range b.Rows() {
		if i > 0 {
			lines = append(lines, "")
		}
		if !row.IsSection {
			if isDivider(row.Content) {
				lines = append(lines, imageRule)
			} else {
				lines = append(lines, TextOf(row.Content))
			}
			continue
		}
		if h := TextOf(row.Header); h != "" {
			lines = append(lines, h)
		}
		for _, blk := range row.Body {
			if isDivider(blk.Content()) {
				lines = append(lines, imageIndent+imageRule)
			} else {
				lines = append(lines, imageIndent+TextOf(blk.Content()))
			}
		}
		if f := TextOf(row.Footer); f != "" {
			lines = append(lines, f)
		}
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
