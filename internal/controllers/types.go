package controllers

import (
	"github.com/acoes-municipais/simulador/internal/diagnostic"
	"github.com/acoes-municipais/simulador/internal/ledger"
	"github.com/acoes-municipais/simulador/internal/reference"
	"github.com/shopspring/decimal"
)

// We use one type per endpoint so that swagger can parse them

type MunicipalityListResponse struct {
	Data  []reference.Municipality `json:"data"`                                           // List of municipalities
	Error *string                  `json:"error" example:"A human readable error message"` // The error, if any occurred
}

type MunicipalityResponse struct {
	Data  *diagnostic.Panel `json:"data"`                                           // Diagnostic of the municipality
	Error *string           `json:"error" example:"A human readable error message"` // The error, if any occurred
}

type CurrentCatalogResponse struct {
	Data  []reference.CurrentEntry `json:"data"`                                           // Initiatives for the invested table
	Error *string                  `json:"error" example:"A human readable error message"` // The error, if any occurred
}

type ProposedCatalogResponse struct {
	Data  []reference.ProposedEntry `json:"data"`                                           // Initiatives and solutions for the proposal table
	Error *string                   `json:"error" example:"A human readable error message"` // The error, if any occurred
}

// CatalogQueryFilter filters catalog listings.
type CatalogQueryFilter struct {
	Search string `form:"search"` // Glob pattern matched against initiative and solution names
}

// LedgerTotals are the column sums of both tables and the grand totals.
type LedgerTotals struct {
	Invested ledger.Totals `json:"invested"`
	Proposal ledger.Totals `json:"proposal"`
	Grand    ledger.Totals `json:"grand"` // Sums over both tables
}

// Ledger is both tables of the session with their totals.
type Ledger struct {
	ledger.Ledger
	Totals LedgerTotals `json:"totals"`
}

type LedgerResponse struct {
	Data  *Ledger `json:"data"`                                           // Tables of the session
	Error *string `json:"error" example:"A human readable error message"` // The error, if any occurred
}

// InvestedEditable is the request body for a new invested row.
type InvestedEditable struct {
	Initiative string          `json:"initiative" example:"Sala do Empreendedor"`
	Total      decimal.Decimal `json:"total" example:"15000"`   // Ignored for initiatives with a fixed amount
	Sponsor    decimal.Decimal `json:"sponsor" example:"15000"` // Ignored for initiatives with a fixed amount
}

// ProposalEditable is the request body for a new proposal row.
type ProposalEditable struct {
	Initiative string          `json:"initiative" example:"Compras Governamentais"`
	Solution   string          `json:"solution" example:"Consultoria"`
	Total      decimal.Decimal `json:"total" example:"0"` // Only used for the "Customizado" initiative
}

// RowEditable is the request body for a row update. Omitted amounts are not changed.
type RowEditable struct {
	Sponsor *decimal.Decimal `json:"sponsor" example:"5000"` // Sponsor amount, the subsidy for proposal rows
	Total   *decimal.Decimal `json:"total" example:"20000"`
}

type InvestedRowResponse struct {
	Data  *ledger.InvestedRow `json:"data"`                                           // The row that was added
	Error *string             `json:"error" example:"A human readable error message"` // The error, if any occurred
}

type ProposalRowResponse struct {
	Data  *ledger.ProposalRow `json:"data"`                                           // The row that was added
	Error *string             `json:"error" example:"A human readable error message"` // The error, if any occurred
}

func newLedger(l ledger.Ledger) Ledger {
	return Ledger{
		Ledger: l,
		Totals: LedgerTotals{
			Invested: l.InvestedTotals(),
			Proposal: l.ProposalTotals(),
			Grand:    l.GrandTotals(),
		},
	}
}
