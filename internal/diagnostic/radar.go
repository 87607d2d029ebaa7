package diagnostic

import (
	"fmt"
	"math"
	"strings"

	"github.com/acoes-municipais/simulador/internal/format"
	"github.com/acoes-municipais/simulador/internal/reference"
)

const (
	// radialLimit is the value at the outer edge of the plot area.
	radialLimit = 1.1

	// labelRadius is where axis labels are placed, in value units.
	labelRadius = 1.25

	// labelWidth is the number of characters per axis label line.
	labelWidth = 17

	// plotShare is the share of the chart size used by the plot radius,
	// the rest is left for the axis labels.
	plotShare = 0.3
)

// RingLevels are the values at which grid rings are drawn.
var RingLevels = []float64{0.2, 0.4, 0.6, 0.8, 1.0}

// Point is a position in SVG coordinates, y growing downwards.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Ring is a grid circle of the radar chart.
type Ring struct {
	Level   float64 `json:"level"`
	Radius  float64 `json:"radius"`
	Label   string  `json:"label"`
	LabelAt Point   `json:"labelAt"`
}

// Label is the wrapped name of an axis.
type Label struct {
	At     Point    `json:"at"`
	Lines  []string `json:"lines"`
	Anchor string   `json:"anchor"` // SVG text-anchor
}

// Radar is a spider chart of axis scores, laid out in a square of Size pixels.
//
// Axis i of n lies at Angle(i, n): the first axis points up, the following
// ones go clockwise.
type Radar struct {
	Size    float64   `json:"size"`
	Center  Point     `json:"center"`
	Angles  []float64 `json:"angles"`
	Rings   []Ring    `json:"rings"`
	Spokes  []Point   `json:"spokes"`
	Labels  []Label   `json:"labels"`
	Polygon []Point   `json:"polygon"` // closed, the last point repeats the first
}

// Angle returns the angle in radians of axis i out of n.
func Angle(i, n int) float64 {
	if n == 0 {
		return math.Pi / 2
	}
	return math.Pi/2 - 2*math.Pi*float64(i)/float64(n)
}

// NewRadar lays out the radar chart for the axes.
func NewRadar(axes []reference.Axis, size float64) Radar {
	r := Radar{
		Size:   size,
		Center: Point{X: size / 2, Y: size / 2},
	}
	scale := size * plotShare / radialLimit

	at := func(value, angle float64) Point {
		return Point{
			X: r.Center.X + scale*value*math.Cos(angle),
			Y: r.Center.Y - scale*value*math.Sin(angle),
		}
	}

	for _, level := range RingLevels {
		label := at(level, math.Pi/2)
		label.X += 4

		r.Rings = append(r.Rings, Ring{
			Level:   level,
			Radius:  scale * level,
			Label:   fmt.Sprintf("%.0f%%", level*100),
			LabelAt: label,
		})
	}

	for i, axis := range axes {
		angle := Angle(i, len(axes))
		r.Angles = append(r.Angles, angle)
		r.Spokes = append(r.Spokes, at(1, angle))
		r.Polygon = append(r.Polygon, at(axis.Percentage, angle))
		r.Labels = append(r.Labels, Label{
			At:     at(labelRadius, angle),
			Lines:  format.Wrap(axis.Name, labelWidth),
			Anchor: anchor(angle),
		})
	}

	if len(r.Polygon) > 0 {
		r.Polygon = append(r.Polygon, r.Polygon[0])
	}

	return r
}

// anchor aligns labels away from the chart center.
func anchor(angle float64) string {
	c := math.Cos(angle)
	switch {
	case c > 0.1:
		return "start"
	case c < -0.1:
		return "end"
	}
	return "middle"
}

// Points returns the polygon in the format of the SVG points attribute.
func (r Radar) Points() string {
	points := make([]string, 0, len(r.Polygon))
	for _, p := range r.Polygon {
		points = append(points, fmt.Sprintf("%.2f,%.2f", p.X, p.Y))
	}
	return strings.Join(points, " ")
}
