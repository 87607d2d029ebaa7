// Package view builds what the simulator page shows from the state of a
// session. Build is pure: the page is recomputed from scratch after
// every action.
package view

import (
	"github.com/acoes-municipais/simulador/internal/diagnostic"
	"github.com/acoes-municipais/simulador/internal/format"
	"github.com/acoes-municipais/simulador/internal/ledger"
	"github.com/acoes-municipais/simulador/internal/reference"
	"github.com/shopspring/decimal"
)

// Title is the title of the page.
const Title = "Simulador de Ações Municipais"

// RadarSize is the size of the radar chart in pixels.
const RadarSize = 420

// State is everything the page depends on.
type State struct {
	Data         *reference.Data
	Municipality string // Selected municipality, empty if none is selected
	ImportOpen   bool
	Ledger       ledger.Ledger
	Flash        string // Message about the last action
	PortfolioURL string
	Branding     Branding
}

// Axis is an axis score ready for display.
type Axis struct {
	Name    string
	Percent string
}

// Diagnostic is the diagnostic panel of the selected municipality.
type Diagnostic struct {
	Name          string
	Region        string
	Territory     string
	Index         string
	Axes          []Axis
	Opportunities []Axis
	Radar         diagnostic.Radar
}

// CurrentOption is an initiative that can be registered as invested.
type CurrentOption struct {
	Name   string
	Fixed  bool
	Amount string
}

// ProposedOption is an initiative that can be proposed.
type ProposedOption struct {
	Name       string
	Solutions  []string
	Single     bool // Only the placeholder solution is offered, the picker is disabled
	Customized bool // The total is entered by the user
}

// Amount is a monetary amount, formatted and as plain number for inputs.
type Amount struct {
	Display string
	Value   string
}

// InvestedRow is a row of the invested grid.
type InvestedRow struct {
	Index        int
	Initiative   string
	Sponsor      Amount
	Municipality Amount
	Total        Amount
}

// ProposalRow is a row of the proposal grid.
type ProposalRow struct {
	Index        int
	Initiative   string
	Solution     string
	Subsidy      Amount
	Municipality Amount
	Total        Amount
}

// Totals are formatted column sums.
type Totals struct {
	Sponsor      string
	Municipality string
	Total        string
}

// Page is the content of the simulator page.
type Page struct {
	Title          string
	PortfolioURL   string
	Branding       Branding
	Flash          string
	Municipalities []string
	Selected       string

	// Set when a municipality is selected
	Diagnostic *Diagnostic

	ImportOpen bool

	CurrentOptions  []CurrentOption
	ProposedOptions []ProposedOption

	Invested       []InvestedRow
	InvestedTotals Totals
	InvestedOpen   bool // Expand the add form, true while the table is empty

	Proposal       []ProposalRow
	ProposalTotals Totals
	ProposalOpen   bool

	GrandTotals Totals
}

func amount(d decimal.Decimal) Amount {
	return Amount{
		Display: format.Reais(d),
		Value:   d.String(),
	}
}

func totals(t ledger.Totals) Totals {
	return Totals{
		Sponsor:      format.Reais(t.Sponsor),
		Municipality: format.Reais(t.Municipality),
		Total:        format.Reais(t.Total),
	}
}

func axes(list []reference.Axis) []Axis {
	out := make([]Axis, 0, len(list))
	for _, a := range list {
		out = append(out, Axis{Name: a.Name, Percent: format.Percent(a.Percentage)})
	}
	return out
}

// Build computes the page for a state.
func Build(s State) Page {
	p := Page{
		Title:        Title,
		PortfolioURL: s.PortfolioURL,
		Branding:     s.Branding,
		Flash:        s.Flash,
	}

	if s.Data == nil {
		return p
	}

	p.Municipalities = s.Data.Municipalities.Names()

	m, ok := s.Data.Municipalities.Find(s.Municipality)
	if !ok {
		return p
	}

	p.Selected = m.Name
	panel := diagnostic.NewPanel(m, RadarSize)
	p.Diagnostic = &Diagnostic{
		Name:          m.Name,
		Region:        m.Region,
		Territory:     m.Territory,
		Index:         format.Index(m.Index),
		Axes:          axes(m.Axes),
		Opportunities: axes(panel.Opportunities),
		Radar:         panel.Radar,
	}

	p.ImportOpen = s.ImportOpen

	for _, e := range s.Data.Current.Entries() {
		o := CurrentOption{Name: e.Initiative, Fixed: e.Fixed}
		if e.Fixed {
			o.Amount = format.Reais(e.Amount)
		}
		p.CurrentOptions = append(p.CurrentOptions, o)
	}

	for _, name := range s.Data.Proposed.Initiatives() {
		solutions := s.Data.Proposed.Solutions(name)
		p.ProposedOptions = append(p.ProposedOptions, ProposedOption{
			Name:       name,
			Solutions:  solutions,
			Single:     len(solutions) == 1 && solutions[0] == reference.NoSolution,
			Customized: name == reference.Customized,
		})
	}

	for i, r := range s.Ledger.Invested {
		p.Invested = append(p.Invested, InvestedRow{
			Index:        i,
			Initiative:   r.Initiative,
			Sponsor:      amount(r.Sponsor),
			Municipality: amount(r.Municipality),
			Total:        amount(r.Total),
		})
	}

	for i, r := range s.Ledger.Proposal {
		p.Proposal = append(p.Proposal, ProposalRow{
			Index:        i,
			Initiative:   r.Initiative,
			Solution:     r.Solution,
			Subsidy:      amount(r.Subsidy),
			Municipality: amount(r.Municipality),
			Total:        amount(r.Total),
		})
	}

	p.InvestedTotals = totals(s.Ledger.InvestedTotals())
	p.ProposalTotals = totals(s.Ledger.ProposalTotals())
	p.GrandTotals = totals(s.Ledger.GrandTotals())
	p.InvestedOpen = len(p.Invested) == 0
	p.ProposalOpen = len(p.Proposal) == 0

	return p
}
