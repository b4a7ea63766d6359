package overlay

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

// Frame dimensions of the PNG overlay.
const (
	FrameWidth  = 640
	FrameHeight = 360

	labelPadX   = 4
	labelPadY   = 2
	strokeWidth = 2
)

var background = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}

func parseHex(s string) color.RGBA {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// BoxRect converts a fractional bounding box to pixels on a w×h frame.
func BoxRect(b domain.BoundingBox, w, h int) image.Rectangle {
	x0 := int(b.X * float64(w))
	y0 := int(b.Y * float64(h))
	x1 := int((b.X + b.Width) * float64(w))
	y1 := int((b.Y + b.Height) * float64(h))
	return image.Rect(x0, y0, x1, y1)
}

// LabelRect places a label of the given text width above box, or below it
// when the label would cross the top edge of the frame.
func LabelRect(box image.Rectangle, textWidth int) image.Rectangle {
	height := basicfont.Face7x13.Height + 2*labelPadY
	width := textWidth + 2*labelPadX
	top := box.Min.Y - height
	if top < 0 {
		top = box.Max.Y
	}
	return image.Rect(box.Min.X, top, box.Min.X+width, top+height)
}

// PNG draws every detection onto a dark 640×360 frame and encodes it.
func PNG(detections []domain.Detection) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	for _, d := range detections {
		drawDetection(img, d)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode overlay png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawDetection(img *image.RGBA, d domain.Detection) {
	stroke := parseHex(BoxColor(d.Type))
	box := BoxRect(d.BBox, FrameWidth, FrameHeight)

	tint := color.NRGBA{R: stroke.R, G: stroke.G, B: stroke.B, A: 0x33}
	draw.Draw(img, box, &image.Uniform{C: tint}, image.Point{}, draw.Over)
	outline(img, box, stroke)

	label := d.OverlayLabel()
	textWidth := font.MeasureString(basicfont.Face7x13, label).Ceil()
	lr := LabelRect(box, textWidth)
	draw.Draw(img, lr, &image.Uniform{C: parseHex(labelColor(d.Type))}, image.Point{}, draw.Src)

	dr := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(lr.Min.X+labelPadX, lr.Min.Y+labelPadY+basicfont.Face7x13.Ascent),
	}
	dr.DrawString(label)
}

// outline strokes the inside edge of r.
func outline(img *image.RGBA, r image.Rectangle, c color.Color) {
	src := &image.Uniform{C: c}
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+strokeWidth),
		image.Rect(r.Min.X, r.Max.Y-strokeWidth, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+strokeWidth, r.Max.Y),
		image.Rect(r.Max.X-strokeWidth, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e.Intersect(img.Bounds()), src, image.Point{}, draw.Src)
	}
}
