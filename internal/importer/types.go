// Package importer reads saved session files.
//
// A session file is a comma separated table holding the rows of both ledger
// tables. The TIPO column tells which table a row belongs to.
package importer

import "errors"

// Columns of the session file.
const (
	ColumnInitiative           = "INICIATIVA"
	ColumnSponsor              = "SEBRAE/PR"
	ColumnMunicipality         = "MUNICIPIO"
	ColumnTotal                = "TOTAL"
	ColumnSolution             = "SOLUCAO"
	ColumnSubsidy              = "SUBSIDIO"
	ColumnProposalMunicipality = "VALOR_MUNICIPIO"
	ColumnValue                = "VALOR"
	ColumnType                 = "TIPO"
)

// Columns lists the session file columns in the order they are written.
var Columns = []string{
	ColumnInitiative,
	ColumnSponsor,
	ColumnMunicipality,
	ColumnTotal,
	ColumnSolution,
	ColumnSubsidy,
	ColumnProposalMunicipality,
	ColumnValue,
	ColumnType,
}

// Values of the TIPO column.
const (
	TypeInvested = "ATUAL"
	TypeProposal = "PROPOSTA"
)

// BOM is the UTF-8 byte order mark session files start with.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var (
	ErrEmptyFile   = errors.New("the file is empty")
	ErrMissingType = errors.New("the file has no TIPO column")
)
