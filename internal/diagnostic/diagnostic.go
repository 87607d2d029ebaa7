// Package diagnostic derives the diagnostic panel of a municipality:
// its improvement opportunities and the radar chart of its axis scores.
package diagnostic

import (
	"github.com/acoes-municipais/simulador/internal/reference"
	"golang.org/x/exp/slices"
)

// opportunityCount is the number of lowest scoring axes flagged when no more
// than that many axes score zero.
const opportunityCount = 2

// Opportunities returns the axes flagged as priority improvement areas.
//
// When more than two axes score exactly zero, all of them are returned in
// their original order. Otherwise, the two axes with the lowest scores are
// returned in ascending order, ties keeping their original order.
func Opportunities(axes []reference.Axis) []reference.Axis {
	var zero []reference.Axis
	for _, a := range axes {
		if a.Percentage == 0 {
			zero = append(zero, a)
		}
	}

	if len(zero) > opportunityCount {
		return zero
	}

	sorted := slices.Clone(axes)
	slices.SortStableFunc(sorted, func(a, b reference.Axis) int {
		switch {
		case a.Percentage < b.Percentage:
			return -1
		case a.Percentage > b.Percentage:
			return 1
		}
		return 0
	})

	if len(sorted) > opportunityCount {
		sorted = sorted[:opportunityCount]
	}

	return sorted
}

// Panel is the diagnostic of one municipality.
type Panel struct {
	Municipality  reference.Municipality `json:"municipality"`
	Opportunities []reference.Axis       `json:"opportunities"`
	Radar         Radar                  `json:"radar"`
}

// NewPanel builds the diagnostic panel for a municipality with a radar chart
// of the given size in pixels.
func NewPanel(m reference.Municipality, size float64) Panel {
	return Panel{
		Municipality:  m,
		Opportunities: Opportunities(m.Axes),
		Radar:         NewRadar(m.Axes, size),
	}
}
