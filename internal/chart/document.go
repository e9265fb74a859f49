package chart

import (
	"bytes"
	"fmt"
	"slices"
	"time"
)

const (
	marginX     = 20
	panelWidth  = 200
	panelPitch  = 220
	panelTop    = 30
	titleY      = 30
	chartOffset = 50
	barPitch    = 40
	minWidth    = 320
	minFooterY  = 500
	footerPad   = 40
)

// Header is the content of the header block.
type Header struct {
	Stars int64
}

// Gradient is a two-stop linear gradient used to fill uncolored bars.
type Gradient struct {
	ID   string
	From string
	To   string
}

var defaultPalette = []Gradient{
	{ID: "blue-grad", From: "#66ccff", To: "#0000ff"},
	{ID: "green-grad", From: "#66ff66", To: "#009900"},
}

// DefaultPalette returns a copy of the gradients cycled through by gradient
// panels, in order.
func DefaultPalette() []Gradient {
	return slices.Clone(defaultPalette)
}

// Document is a composed chart.
type Document struct {
	Width  int
	Height int
	markup []byte
}

// Bytes returns the SVG markup.
func (d *Document) Bytes() []byte { return d.markup }

// String returns the SVG markup.
func (d *Document) String() string { return string(d.markup) }

// Option customizes Compose.
type Option func(*composer)

type composer struct {
	palette        []Gradient
	attribution    string
	attributionURL string
}

// WithAttribution sets the footer link.
func WithAttribution(text, href string) Option {
	return func(c *composer) { c.attribution, c.attributionURL = text, href }
}

// WithPalette replaces the gradient palette. An empty palette is ignored.
func WithPalette(p ...Gradient) Option {
	return func(c *composer) {
		if len(p) > 0 {
			c.palette = slices.Clone(p)
		}
	}
}

func newComposer(opts ...Option) composer {
	c := composer{
		palette:        defaultPalette,
		attribution:    "github-stats-card",
		attributionURL: "https://github.com/naka-gawa/github-stats-card",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Compose lays out the header, one column per panel and the footer.
// Gradient panels take the palette entries in turn, wrapping around when
// there are more gradient panels than entries. The output only depends on
// the arguments.
func Compose(header Header, panels []Panel, generated time.Time, opts ...Option) *Document {
	c := newComposer(opts...)

	rows := 0
	for _, p := range panels {
		rows = max(rows, len(p.Items))
	}
	width := max(minWidth, panelPitch*len(panels))
	footerY := max(minFooterY, panelTop+chartOffset+rows*barPitch+marginX)
	height := footerY + footerPad

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", css)
	renderDefs(&buf, c.palette)
	renderHeader(&buf, header, marginX, 10)

	gradients := 0
	for i, p := range panels {
		fill := ""
		if p.Gradient {
			fill = "url(#" + c.palette[gradients%len(c.palette)].ID + ")"
			gradients++
		}
		renderPanel(&buf, p, fill, marginX+i*panelPitch, panelTop)
	}

	renderFooter(&buf, c.attribution, c.attributionURL, generated, marginX, footerY)
	buf.WriteString("</svg>\n")

	return &Document{Width: width, Height: height, markup: buf.Bytes()}
}
