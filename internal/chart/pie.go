package chart

import (
	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

// pieRadius gives a circumference of about 100, so dash lengths read as
// percentages.
const pieRadius = "15.915"

// Wedge is one slice of the pie expressed as stroke-dash geometry.
type Wedge struct {
	Name    string
	Color   string
	Percent float64
	Offset  float64 // negated sum of the preceding percentages
}

// DashArray returns "p 100-p".
func (w Wedge) DashArray() string {
	return num(w.Percent) + " " + num(100-w.Percent)
}

// PieWedges converts slices into wedges. It returns nil when the total is not
// positive.
func PieWedges(slices []domain.Slice) []Wedge {
	total := pieTotal(slices)
	if total <= 0 {
		return nil
	}
	wedges := make([]Wedge, len(slices))
	cumulative := 0.0
	for i, s := range slices {
		p := s.Value / total * 100
		wedges[i] = Wedge{Name: s.Name, Color: s.Color, Percent: p, Offset: -cumulative}
		cumulative += p
	}
	return wedges
}

func pieTotal(slices []domain.Slice) float64 {
	total := 0.0
	for _, s := range slices {
		total += s.Value
	}
	return total
}

// RenderPie draws the distribution as a ring with the total in the middle and
// a "name: value" legend to the right.
func RenderPie(slices []domain.Slice) []byte {
	doc := newSVG(200, 100)

	wedges := PieWedges(slices)
	if wedges != nil {
		doc.open("g", "transform", "rotate(-90 50 50)")
		for _, w := range wedges {
			doc.elem("circle", "cx", "50", "cy", "50", "r", pieRadius,
				"fill", "transparent", "stroke", w.Color, "stroke-width", "8",
				"stroke-dasharray", w.DashArray(), "stroke-dashoffset", num(w.Offset))
		}
		doc.close("g")

		doc.text(num(pieTotal(slices)), "x", "50", "y", "52", "font-size", "8", "text-anchor", "middle")
		doc.text("Total", "x", "50", "y", "60", "font-size", "4", "text-anchor", "middle")
	}

	for i, s := range slices {
		y := 30 + float64(i)*10
		doc.elem("circle", "cx", "110", "cy", num(y-1.5), "r", "2", "fill", s.Color)
		doc.text(s.Name+": "+num(s.Value), "x", "115", "y", num(y), "font-size", "5")
	}
	return doc.bytes()
}
