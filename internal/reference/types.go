package reference

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// EnterValue is the catalog value marking current initiatives whose amount
// and subsidy are typed in by the user.
const EnterValue = "Digite o valor"

// Customized is the proposed initiative that accepts a free total with no subsidy.
const Customized = "Customizado"

// NoSolution is the placeholder solution of initiatives without solution choices.
const NoSolution = "-"

// Axis is the score of a municipality on one policy axis.
type Axis struct {
	Name       string  `json:"name" example:"Governança"`   // Name of the axis
	Percentage float64 `json:"percentage" example:"0.375"` // Score as a fraction between 0 and 1
}

// Municipality is the diagnostic record of one municipality.
type Municipality struct {
	Name      string  `json:"name" example:"Curitiba"`
	Region    string  `json:"region" example:"Leste"`
	Territory string  `json:"territory" example:"Metropolitano"`
	Axes      []Axis  `json:"axes"`
	Index     float64 `json:"index" example:"7.35"` // Composite index (IDAN-M)
}

// Municipalities holds all municipalities in the order they first appear in the sheet.
type Municipalities struct {
	list   []Municipality
	byName map[string]int
}

// Names returns the names of all municipalities.
func (m Municipalities) Names() []string {
	names := make([]string, 0, len(m.list))
	for _, mun := range m.list {
		names = append(names, mun.Name)
	}
	return names
}

// All returns all municipalities.
func (m Municipalities) All() []Municipality {
	return slices.Clone(m.list)
}

// Find returns the municipality with the given name.
func (m Municipalities) Find(name string) (Municipality, bool) {
	i, ok := m.byName[name]
	if !ok {
		return Municipality{}, false
	}
	return m.list[i], true
}

// Len returns the number of municipalities.
func (m Municipalities) Len() int {
	return len(m.list)
}

// CurrentEntry is a catalog entry for initiatives that were already invested in.
//
// Fixed entries are fully subsidized by the sponsor with the catalog amount.
type CurrentEntry struct {
	Initiative string          `json:"initiative" example:"Sala do Empreendedor"`
	Fixed      bool            `json:"fixed" example:"true"`    // Whether the amount is fixed by the catalog
	Amount     decimal.Decimal `json:"amount" example:"15000"` // The fixed amount. Zero when not fixed
}

// CurrentCatalog is the catalog of initiatives for the invested table.
type CurrentCatalog struct {
	entries map[string]CurrentEntry
}

// Find returns the catalog entry for an initiative.
func (c CurrentCatalog) Find(initiative string) (CurrentEntry, bool) {
	e, ok := c.entries[initiative]
	return e, ok
}

// Initiatives returns the initiative names sorted alphabetically.
func (c CurrentCatalog) Initiatives() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns all entries sorted by initiative.
func (c CurrentCatalog) Entries() []CurrentEntry {
	entries := make([]CurrentEntry, 0, len(c.entries))
	for _, name := range c.Initiatives() {
		entries = append(entries, c.entries[name])
	}
	return entries
}

// ProposedEntry is a priced initiative and solution combination.
type ProposedEntry struct {
	Initiative string          `json:"initiative" example:"Compras Governamentais"`
	Solution   string          `json:"solution" example:"Consultoria"`
	Total      decimal.Decimal `json:"total" example:"20000"`
	Subsidy    decimal.Decimal `json:"subsidy" example:"14000"`
}

// ProposedCatalog is the catalog of initiatives for the proposal table.
type ProposedCatalog struct {
	entries []ProposedEntry
}

// Entries returns all entries in sheet order.
func (c ProposedCatalog) Entries() []ProposedEntry {
	return slices.Clone(c.entries)
}

// Initiatives returns the distinct initiative names sorted alphabetically.
func (c ProposedCatalog) Initiatives() []string {
	var names []string
	for _, e := range c.entries {
		if !slices.Contains(names, e.Initiative) {
			names = append(names, e.Initiative)
		}
	}
	sort.Strings(names)
	return names
}

// HasInitiative reports whether the initiative is part of the catalog.
func (c ProposedCatalog) HasInitiative(initiative string) bool {
	return slices.ContainsFunc(c.entries, func(e ProposedEntry) bool {
		return e.Initiative == initiative
	})
}

// Solutions returns the distinct solutions of an initiative in sheet order.
func (c ProposedCatalog) Solutions(initiative string) []string {
	var solutions []string
	for _, e := range c.entries {
		if e.Initiative == initiative && !slices.Contains(solutions, e.Solution) {
			solutions = append(solutions, e.Solution)
		}
	}
	return solutions
}

// Find returns the first entry for the initiative and solution.
func (c ProposedCatalog) Find(initiative, solution string) (ProposedEntry, bool) {
	i := slices.IndexFunc(c.entries, func(e ProposedEntry) bool {
		return e.Initiative == initiative && e.Solution == solution
	})
	if i < 0 {
		return ProposedEntry{}, false
	}
	return c.entries[i], true
}

// Data is the complete reference data set.
type Data struct {
	Municipalities Municipalities
	Current        CurrentCatalog
	Proposed       ProposedCatalog
}
