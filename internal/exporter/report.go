package exporter

import (
	"fmt"
	"io"

	"github.com/acoes-municipais/simulador/internal/importer"
	"github.com/acoes-municipais/simulador/internal/ledger"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ReportSheet is the name of the only sheet of the report.
const ReportSheet = "Resumo_Proposta"

// Captions of the report.
const (
	CaptionInvested     = "JÁ INVESTIDO NO MUNICÍPIO"
	CaptionProposal     = "PROPOSTA DE PARCERIA"
	CaptionConsolidated = "CONSOLIDADO FINAL"
	LabelTotal          = "Investimento Total:"
	LabelSponsor        = "Subsídio Sebrae/PR:"
	LabelMunicipality   = "Aporte Município:"
)

const (
	currencyFormat = "R$ #,##0.00"
	columnWidth    = 18
	captionColor   = "0054A6"
	captionSize    = 12
)

var (
	investedHeader = []string{importer.ColumnInitiative, importer.ColumnSponsor, importer.ColumnMunicipality, importer.ColumnTotal}
	proposalHeader = []string{importer.ColumnInitiative, importer.ColumnSolution, importer.ColumnSubsidy, importer.ColumnProposalMunicipality, importer.ColumnValue}
)

// ReportFileName returns the name of the report for a municipality.
func ReportFileName(municipality string) string {
	return fmt.Sprintf("proposta_acoes_%s.xlsx", municipality)
}

// Title returns the title of the report.
func Title(municipality string) string {
	return fmt.Sprintf("SIMULADOR DE AÇÕES MUNICIPAIS: %s", municipality)
}

// Layout holds the 1-based rows of the report sections.
type Layout struct {
	Title           int
	InvestedCaption int
	InvestedHeader  int
	ProposalCaption int
	ProposalHeader  int
	Consolidated    int
}

// NewLayout computes the rows of the report sections for tables with
// invested and proposal rows. The sections never overlap.
func NewLayout(invested, proposal int) Layout {
	l := Layout{
		Title:           1,
		InvestedCaption: 2,
		InvestedHeader:  3,
		ProposalCaption: invested + 5,
		ProposalHeader:  invested + 6,
	}
	l.Consolidated = l.ProposalHeader + proposal + 3

	return l
}

// WriteReport writes the spreadsheet report of the ledger.
func WriteReport(w io.Writer, municipality string, l ledger.Ledger) error {
	f := excelize.NewFile()
	defer f.Close()

	err := fillReport(f, municipality, l)
	if err != nil {
		return err
	}

	return f.Write(w)
}

func fillReport(f *excelize.File, municipality string, l ledger.Ledger) error {
	if err := f.SetSheetName("Sheet1", ReportSheet); err != nil {
		return err
	}

	numFmt := currencyFormat
	currency, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}

	caption, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: captionColor, Size: captionSize},
	})
	if err != nil {
		return err
	}

	if err := f.SetColWidth(ReportSheet, "B", "E", columnWidth); err != nil {
		return err
	}

	if err := f.SetColStyle(ReportSheet, "B:E", currency); err != nil {
		return err
	}

	layout := NewLayout(len(l.Invested), len(l.Proposal))
	s := sheet{f: f, currencyStyle: currency, captionStyle: caption}

	s.caption(layout.Title, Title(municipality))
	s.caption(layout.InvestedCaption, CaptionInvested)
	s.row(layout.InvestedHeader, header(investedHeader))
	for i, r := range l.Invested {
		s.row(layout.InvestedHeader+1+i, []any{r.Initiative, amount(r.Sponsor), amount(r.Municipality), amount(r.Total)})
		s.currencyCells(layout.InvestedHeader+1+i, 2, 4)
	}

	s.caption(layout.ProposalCaption, CaptionProposal)
	s.row(layout.ProposalHeader, header(proposalHeader))
	for i, r := range l.Proposal {
		s.row(layout.ProposalHeader+1+i, []any{r.Initiative, r.Solution, amount(r.Subsidy), amount(r.Municipality), amount(r.Total)})
		s.currencyCells(layout.ProposalHeader+1+i, 3, 5)
	}

	totals := l.GrandTotals()
	s.caption(layout.Consolidated, CaptionConsolidated)
	for i, t := range []struct {
		label string
		value decimal.Decimal
	}{
		{LabelTotal, totals.Total},
		{LabelSponsor, totals.Sponsor},
		{LabelMunicipality, totals.Municipality},
	} {
		s.row(layout.Consolidated+1+i, []any{t.label, amount(t.value)})
		s.currencyCells(layout.Consolidated+1+i, 2, 2)
	}

	return s.err
}

// sheet writes to the report sheet, keeping the first error.
type sheet struct {
	f             *excelize.File
	currencyStyle int
	captionStyle  int
	err           error
}

func (s *sheet) cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil && s.err == nil {
		s.err = err
	}
	return name
}

func (s *sheet) row(row int, values []any) {
	if s.err != nil {
		return
	}
	s.err = s.f.SetSheetRow(ReportSheet, s.cell(1, row), &values)
}

func (s *sheet) caption(row int, text string) {
	s.row(row, []any{text})
	if s.err != nil {
		return
	}
	cell := s.cell(1, row)
	s.err = s.f.SetCellStyle(ReportSheet, cell, cell, s.captionStyle)
}

func (s *sheet) currencyCells(row, from, to int) {
	if s.err != nil {
		return
	}
	s.err = s.f.SetCellStyle(ReportSheet, s.cell(from, row), s.cell(to, row), s.currencyStyle)
}

func amount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func header(values []string) []any {
	row := make([]any, 0, len(values))
	for _, v := range values {
		row = append(row, v)
	}
	return row
}
