// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ghgchart

import (
	"image/color"

	"github.com/aclements/go-gg/palette/brewer"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LineStyle is the stroke pattern of a trend line.
type LineStyle int

const (
	Solid LineStyle = iota
	Dashed
	DashDot
	Dotted

	numLineStyles
)

// Marker is the glyph drawn at each point of a trend line.
type Marker int

const (
	Circle Marker = iota
	Box
	Triangle
	Cross

	numMarkers
)

// Style is the cosmetic encoding of one trend series. It carries no
// data; it only keeps neighboring series apart.
type Style struct {
	Line   LineStyle
	Marker Marker
	Color  color.Color
}

// linePalette is sampled evenly across the rows of a table, so the
// first and last rows always get the two ends of the palette.
var linePalette = brewer.Paired_10

// piePalette is cycled by row position.
var piePalette = brewer.Set3_12

// StyleFor returns the style of the series drawn for row out of
// nrows rows. It depends only on the row position, so a row keeps
// its style regardless of which other rows are plotted.
func StyleFor(row, nrows int) Style {
	if nrows < 1 {
		nrows = 1
	}
	ci := row * len(linePalette) / nrows
	if ci >= len(linePalette) {
		ci = len(linePalette) - 1
	}
	var c color.Color = linePalette[ci]
	return Style{
		Line:   LineStyle(row % int(numLineStyles)),
		Marker: Marker(row / int(numLineStyles) % int(numMarkers)),
		Color:  c,
	}
}

// PieColor returns the fill color of the wedge for row. Colors follow
// the original row position, not the position among the wedges drawn,
// so a country has the same color in every year's pie.
func PieColor(row int) color.Color {
	var c color.Color = piePalette[row%len(piePalette)]
	return c
}

var lineDashes = [numLineStyles][]vg.Length{
	Solid:   nil,
	Dashed:  {vg.Points(6), vg.Points(3)},
	DashDot: {vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)},
	Dotted:  {vg.Points(1), vg.Points(2)},
}

var markerGlyphs = [numMarkers]draw.GlyphDrawer{
	Circle:   draw.CircleGlyph{},
	Box:      draw.BoxGlyph{},
	Triangle: draw.TriangleGlyph{},
	Cross:    draw.CrossGlyph{},
}

func (l LineStyle) dashes() []vg.Length {
	return lineDashes[l]
}

func (m Marker) glyph() draw.GlyphDrawer {
	return markerGlyphs[m]
}

// chartColor converts c for use with go-chart.
func chartColor(c color.Color) drawing.Color {
	r, g, b, a := c.RGBA()
	return drawing.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
