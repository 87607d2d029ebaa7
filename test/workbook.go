package test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/acoes-municipais/simulador/internal/reference"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Municipality names in the reference workbook built by ReferenceWorkbook.
const (
	Curitiba     = "Curitiba"
	Adrianopolis = "Adrianópolis"
)

// Initiatives in the reference workbook built by ReferenceWorkbook.
//
// FixedInitiative costs 1000 and FixedInitiative2 2500.50, EnterInitiative
// takes user entered amounts. ProposedInitiative offers ProposedSolution
// (20000 total, 14000 subsidy) and ProposedSolution2 (8000 total, 8000
// subsidy), SingleInitiative only has the "-" solution.
const (
	FixedInitiative    = "Sala do Empreendedor"
	FixedInitiative2   = "Feira Municipal"
	EnterInitiative    = "Consultoria Tecnológica"
	ProposedInitiative = "Compras Governamentais"
	SingleInitiative   = "Cidade Empreendedora"
	ProposedSolution   = "Consultoria"
	ProposedSolution2  = "Capacitação"
)

// Sheets maps sheet names to their rows, header first.
type Sheets map[string][][]any

// DefaultSheets returns the content of the reference workbook used in tests.
func DefaultSheets() Sheets {
	return Sheets{
		reference.SheetMunicipalities: {
			{"MUN", "REG", "TER", "EIXO", "PERCENTUAL", "IDAN-M"},
			{Curitiba, "Leste", "Metropolitano", "Governança", 0.5, 6.5},
			{Curitiba, "Leste", "Metropolitano", "Desburocratização", 0.1, 6.5},
			{Curitiba, "Leste", "Metropolitano", "Compras Governamentais", 0.2, 6.5},
			{Curitiba, "Leste", "Metropolitano", "Empreendedorismo", 0.8, 6.5},
			{Curitiba, "Leste", "Metropolitano", "Educação Empreendedora", 0.2, 6.5},
			{Adrianopolis, "Leste", "Vale do Ribeira", "Governança", 0, 1.2},
			{Adrianopolis, "Leste", "Vale do Ribeira", "Desburocratização", 0, 1.2},
			{Adrianopolis, "Leste", "Vale do Ribeira", "Compras Governamentais", 0, 1.2},
			{Adrianopolis, "Leste", "Vale do Ribeira", "Empreendedorismo", 0.3, 1.2},
			{Adrianopolis, "Leste", "Vale do Ribeira", "Educação Empreendedora", 0.5, 1.2},
		},
		reference.SheetCurrent: {
			{"INICIATIVA", "VALOR"},
			{FixedInitiative, 1000},
			{EnterInitiative, reference.EnterValue},
			{FixedInitiative2, 2500.5},
		},
		reference.SheetProposed: {
			{"INICIATIVA", "SOLUCAO", "VALOR", "SUBSIDIO"},
			{ProposedInitiative, ProposedSolution, 20000, 14000},
			{ProposedInitiative, ProposedSolution2, 8000, 8000},
			{SingleInitiative, reference.NoSolution, 50000, 35000},
			{reference.Customized, reference.NoSolution, 0, 0},
		},
	}
}

// Workbook builds an xlsx file from the sheets.
func Workbook(t *testing.T, sheets Sheets) []byte {
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			require.Nil(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.Nil(t, err)
		}

		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.Nil(t, err)
			require.Nil(t, f.SetSheetRow(name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.Nil(t, err)

	return buf.Bytes()
}

// ReferenceWorkbook returns the default reference workbook.
func ReferenceWorkbook(t *testing.T) []byte {
	return Workbook(t, DefaultSheets())
}

// ReferenceFile writes the default reference workbook to a temporary file and returns its path.
func ReferenceFile(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "dados_simulador.xlsx")
	require.Nil(t, os.WriteFile(path, ReferenceWorkbook(t), 0o600))
	return path
}

// ReferenceData returns the parsed default reference workbook.
func ReferenceData(t *testing.T) *reference.Data {
	data, err := reference.Read(bytes.NewReader(ReferenceWorkbook(t)))
	require.Nil(t, err)
	return data
}
