// Package overlay draws detection bounding boxes for the live feed, either as
// an SVG layer sized to the video element or as a standalone PNG frame.
package overlay

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

const (
	FireColor  = "#ef4444"
	SmokeColor = "#eab308"

	fireLabelColor  = "#dc2626"
	smokeLabelColor = "#ca8a04"
)

// BoxColor returns the outline colour for a detection type.
func BoxColor(t domain.DetectionType) string {
	if t == domain.DetectionFire {
		return FireColor
	}
	return SmokeColor
}

func labelColor(t domain.DetectionType) string {
	if t == domain.DetectionFire {
		return fireLabelColor
	}
	return smokeLabelColor
}

type svgRoot struct {
	XMLName xml.Name `xml:"svg"`
	NS      string   `xml:"xmlns,attr"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	Boxes   []svgBox `xml:"g"`
}

type svgBox struct {
	ID    string  `xml:"data-id,attr"`
	Type  string  `xml:"data-type,attr"`
	Rect  svgRect `xml:"rect"`
	Label svgText `xml:"text"`
}

type svgRect struct {
	X           string `xml:"x,attr"`
	Y           string `xml:"y,attr"`
	Width       string `xml:"width,attr"`
	Height      string `xml:"height,attr"`
	Stroke      string `xml:"stroke,attr"`
	StrokeWidth int    `xml:"stroke-width,attr"`
	Fill        string `xml:"fill,attr"`
	FillOpacity string `xml:"fill-opacity,attr"`
	RX          int    `xml:"rx,attr"`
}

type svgText struct {
	X        string `xml:"x,attr"`
	Y        string `xml:"y,attr"`
	DY       int    `xml:"dy,attr"`
	Fill     string `xml:"fill,attr"`
	FontSize int    `xml:"font-size,attr"`
	Body     string `xml:",chardata"`
}

// percent renders a fraction as an SVG percentage length with at most two
// decimals, e.g. 0.4 -> "40%".
func percent(f float64) string {
	return strconv.FormatFloat(math.Round(f*10000)/100, 'f', -1, 64) + "%"
}

// SVG renders one outlined box per detection, positioned in percentages of
// the frame, with its "<type> <confidence>%" label just above the box.
func SVG(detections []domain.Detection) ([]byte, error) {
	root := svgRoot{
		NS:     "http://www.w3.org/2000/svg",
		Width:  "100%",
		Height: "100%",
		Boxes:  make([]svgBox, 0, len(detections)),
	}
	for _, d := range detections {
		color := BoxColor(d.Type)
		root.Boxes = append(root.Boxes, svgBox{
			ID:   d.ID,
			Type: string(d.Type),
			Rect: svgRect{
				X:           percent(d.BBox.X),
				Y:           percent(d.BBox.Y),
				Width:       percent(d.BBox.Width),
				Height:      percent(d.BBox.Height),
				Stroke:      color,
				StrokeWidth: 2,
				Fill:        color,
				FillOpacity: "0.2",
				RX:          4,
			},
			Label: svgText{
				X:        percent(d.BBox.X),
				Y:        percent(d.BBox.Y),
				DY:       -6,
				Fill:     labelColor(d.Type),
				FontSize: 12,
				Body:     d.OverlayLabel(),
			},
		})
	}

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode overlay svg: %w", err)
	}
	return buf.Bytes(), nil
}
