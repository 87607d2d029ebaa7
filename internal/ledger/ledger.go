// Package ledger implements the session ledger: the invested and proposal
// tables a user builds while simulating a partnership with a municipality.
//
// Every row satisfies Total = Sponsor + Municipality (Subsidy for proposals).
// The municipality amount is never set directly, it is the residual of the
// other two and is recomputed whenever one of them changes.
package ledger

import (
	"errors"
	"fmt"

	"github.com/acoes-municipais/simulador/internal/reference"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrNoInitiative      = errors.New("no initiative selected")
	ErrUnknownInitiative = errors.New("the initiative is not in the catalog")
	ErrNegativeAmount    = errors.New("amounts must not be negative")
	ErrRowNotFound       = errors.New("there is no row at this position")
	ErrColumnLocked      = errors.New("this column cannot be edited")
	ErrUnknownTable      = errors.New("unknown table")
	ErrUnknownColumn     = errors.New("unknown column")
)

// Table names one of the two ledger tables.
type Table string

const (
	TableInvested Table = "invested"
	TableProposal Table = "proposal"
)

// ParseTable returns the table with the given name.
func ParseTable(s string) (Table, error) {
	switch t := Table(s); t {
	case TableInvested, TableProposal:
		return t, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownTable, s)
}

// Column names a column of a ledger table. Sponsor is the subsidy column
// for the proposal table.
type Column string

const (
	ColumnInitiative   Column = "initiative"
	ColumnSolution     Column = "solution"
	ColumnSponsor      Column = "sponsor"
	ColumnMunicipality Column = "municipality"
	ColumnTotal        Column = "total"
)

// InvestedRow is an initiative already running in the municipality.
type InvestedRow struct {
	Initiative   string          `json:"initiative" example:"Sala do Empreendedor"`
	Sponsor      decimal.Decimal `json:"sponsor" example:"15000"`  // Amount covered by the partner
	Municipality decimal.Decimal `json:"municipality" example:"0"` // Residual paid by the municipality
	Total        decimal.Decimal `json:"total" example:"15000"`    // Total cost
}

// ProposalRow is an initiative proposed to the municipality.
type ProposalRow struct {
	Initiative   string          `json:"initiative" example:"Compras Governamentais"`
	Solution     string          `json:"solution" example:"Consultoria"`
	Subsidy      decimal.Decimal `json:"subsidy" example:"14000"`     // Amount covered by the partner
	Municipality decimal.Decimal `json:"municipality" example:"6000"` // Residual paid by the municipality
	Total        decimal.Decimal `json:"total" example:"20000"`       // Total cost
}

// Totals are the column sums of a table.
type Totals struct {
	Sponsor      decimal.Decimal `json:"sponsor" example:"29000"`
	Municipality decimal.Decimal `json:"municipality" example:"6000"`
	Total        decimal.Decimal `json:"total" example:"35000"`
}

// Ledger holds both tables of a session.
type Ledger struct {
	Invested []InvestedRow `json:"invested"`
	Proposal []ProposalRow `json:"proposal"`
}

// CurrentCatalog looks up initiatives that can be registered as invested.
type CurrentCatalog interface {
	Find(initiative string) (reference.CurrentEntry, bool)
}

// ProposedCatalog looks up initiatives and solutions that can be proposed.
type ProposedCatalog interface {
	Find(initiative, solution string) (reference.ProposedEntry, bool)
	Solutions(initiative string) []string
	HasInitiative(initiative string) bool
}

func checkAmounts(amounts ...decimal.Decimal) error {
	for _, a := range amounts {
		if a.IsNegative() {
			return ErrNegativeAmount
		}
	}
	return nil
}

// AddInvested appends an invested row for the initiative.
//
// If the catalog fixes the amount of the initiative, it is fully subsidized
// and total and sponsor are set to that amount regardless of the values
// passed in.
func (l *Ledger) AddInvested(cat CurrentCatalog, initiative string, total, sponsor decimal.Decimal) (InvestedRow, error) {
	if initiative == "" {
		return InvestedRow{}, ErrNoInitiative
	}

	entry, ok := cat.Find(initiative)
	if !ok {
		return InvestedRow{}, fmt.Errorf("%w: %s", ErrUnknownInitiative, initiative)
	}

	if entry.Fixed {
		total = entry.Amount
		sponsor = entry.Amount
	} else if err := checkAmounts(total, sponsor); err != nil {
		return InvestedRow{}, err
	}

	row := InvestedRow{
		Initiative:   initiative,
		Sponsor:      sponsor,
		Municipality: total.Sub(sponsor),
		Total:        total,
	}
	l.Invested = append(l.Invested, row)

	return row, nil
}

// AddProposal appends a proposal row for the initiative and solution.
//
// The Customized initiative takes totalOverride as its total and has no
// subsidy. When the initiative only offers the placeholder solution, an
// empty solution selects it. A solution missing from the catalog yields a
// row with zero amounts.
func (l *Ledger) AddProposal(cat ProposedCatalog, initiative, solution string, totalOverride decimal.Decimal) (ProposalRow, error) {
	if initiative == "" {
		return ProposalRow{}, ErrNoInitiative
	}

	var row ProposalRow

	if initiative == reference.Customized {
		if err := checkAmounts(totalOverride); err != nil {
			return ProposalRow{}, err
		}

		if solution == "" {
			solution = reference.NoSolution
		}

		row = ProposalRow{
			Initiative:   initiative,
			Solution:     solution,
			Subsidy:      decimal.Zero,
			Municipality: totalOverride,
			Total:        totalOverride,
		}
	} else {
		solutions := cat.Solutions(initiative)
		if solution == "" && len(solutions) == 1 && solutions[0] == reference.NoSolution {
			solution = reference.NoSolution
		}

		row = ProposalRow{Initiative: initiative, Solution: solution}

		entry, ok := cat.Find(initiative, solution)
		if ok {
			row.Total = entry.Total
			row.Subsidy = entry.Subsidy
			row.Municipality = entry.Total.Sub(entry.Subsidy)
		} else if !cat.HasInitiative(initiative) {
			log.Warn().Str("initiative", initiative).Msg("initiative not in proposal catalog, adding a row without amounts")
		} else {
			log.Warn().Str("initiative", initiative).Str("solution", solution).Msg("solution not offered for initiative, adding a row without amounts")
		}
	}

	l.Proposal = append(l.Proposal, row)
	return row, nil
}

// Edit sets the value of an editable cell and recomputes the municipality
// amount of the row. Only the sponsor (subsidy) and total columns are editable.
func (l *Ledger) Edit(table Table, index int, column Column, value decimal.Decimal) error {
	if err := l.check(table, index); err != nil {
		return err
	}

	switch column {
	case ColumnSponsor, ColumnTotal:
	case ColumnInitiative, ColumnSolution, ColumnMunicipality:
		return fmt.Errorf("%w: %s", ErrColumnLocked, column)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}

	if err := checkAmounts(value); err != nil {
		return err
	}

	if table == TableInvested {
		r := &l.Invested[index]
		if column == ColumnTotal {
			r.Total = value
		} else {
			r.Sponsor = value
		}
		r.Municipality = r.Total.Sub(r.Sponsor)
		return nil
	}

	r := &l.Proposal[index]
	if column == ColumnTotal {
		r.Total = value
	} else {
		r.Subsidy = value
	}
	r.Municipality = r.Total.Sub(r.Subsidy)
	return nil
}

// Delete removes the row at index.
func (l *Ledger) Delete(table Table, index int) error {
	if err := l.check(table, index); err != nil {
		return err
	}

	if table == TableInvested {
		l.Invested = append(l.Invested[:index], l.Invested[index+1:]...)
	} else {
		l.Proposal = append(l.Proposal[:index], l.Proposal[index+1:]...)
	}

	return nil
}

// InsertBlank appends a row without initiative and with zero amounts.
func (l *Ledger) InsertBlank(table Table) error {
	switch table {
	case TableInvested:
		l.Invested = append(l.Invested, InvestedRow{})
	case TableProposal:
		l.Proposal = append(l.Proposal, ProposalRow{})
	default:
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	return nil
}

// Reset removes all rows from both tables.
func (l *Ledger) Reset() {
	l.Invested = []InvestedRow{}
	l.Proposal = []ProposalRow{}
}

// Len returns the number of rows in the table.
func (l Ledger) Len(table Table) int {
	if table == TableInvested {
		return len(l.Invested)
	}
	return len(l.Proposal)
}

func (l Ledger) check(table Table, index int) error {
	if table != TableInvested && table != TableProposal {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	if index < 0 || index >= l.Len(table) {
		return fmt.Errorf("%w: %s %d", ErrRowNotFound, table, index)
	}

	return nil
}

// InvestedTotals sums the invested table.
func (l Ledger) InvestedTotals() Totals {
	t := Totals{}
	for _, r := range l.Invested {
		t.Sponsor = t.Sponsor.Add(r.Sponsor)
		t.Municipality = t.Municipality.Add(r.Municipality)
		t.Total = t.Total.Add(r.Total)
	}
	return t
}

// ProposalTotals sums the proposal table.
func (l Ledger) ProposalTotals() Totals {
	t := Totals{}
	for _, r := range l.Proposal {
		t.Sponsor = t.Sponsor.Add(r.Subsidy)
		t.Municipality = t.Municipality.Add(r.Municipality)
		t.Total = t.Total.Add(r.Total)
	}
	return t
}

// GrandTotals sums both tables.
func (l Ledger) GrandTotals() Totals {
	i, p := l.InvestedTotals(), l.ProposalTotals()
	return Totals{
		Sponsor:      i.Sponsor.Add(p.Sponsor),
		Municipality: i.Municipality.Add(p.Municipality),
		Total:        i.Total.Add(p.Total),
	}
}
