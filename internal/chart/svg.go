// Package chart renders the analytics charts as SVG documents, with PNG
// variants for export.
//
// Renderers never fail: empty input yields a well-formed SVG with no data
// shapes, and a zero maximum or zero total yields no bars or wedges.
package chart

import (
	"bytes"
	"encoding/xml"
	"math"
	"strconv"
)

// svgDoc accumulates SVG markup.
type svgDoc struct {
	buf bytes.Buffer
}

func newSVG(width, height float64, extra ...string) *svgDoc {
	d := &svgDoc{}
	d.buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `)
	d.buf.WriteString(num(width))
	d.buf.WriteByte(' ')
	d.buf.WriteString(num(height))
	d.buf.WriteByte('"')
	d.attrs(extra)
	d.buf.WriteString(">")
	return d
}

// elem writes a self-closing element. attrs alternates names and values.
func (d *svgDoc) elem(name string, attrs ...string) {
	d.buf.WriteByte('<')
	d.buf.WriteString(name)
	d.attrs(attrs)
	d.buf.WriteString("/>")
}

// text writes a text element with escaped content.
func (d *svgDoc) text(body string, attrs ...string) {
	d.buf.WriteString("<text")
	d.attrs(attrs)
	d.buf.WriteByte('>')
	_ = xml.EscapeText(&d.buf, []byte(body))
	d.buf.WriteString("</text>")
}

func (d *svgDoc) open(name string, attrs ...string) {
	d.buf.WriteByte('<')
	d.buf.WriteString(name)
	d.attrs(attrs)
	d.buf.WriteByte('>')
}

func (d *svgDoc) close(name string) {
	d.buf.WriteString("</")
	d.buf.WriteString(name)
	d.buf.WriteByte('>')
}

func (d *svgDoc) attrs(kv []string) {
	for i := 0; i+1 < len(kv); i += 2 {
		d.buf.WriteByte(' ')
		d.buf.WriteString(kv[i])
		d.buf.WriteString(`="`)
		_ = xml.EscapeText(&d.buf, []byte(kv[i+1]))
		d.buf.WriteByte('"')
	}
}

func (d *svgDoc) bytes() []byte {
	d.buf.WriteString("</svg>")
	return d.buf.Bytes()
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
