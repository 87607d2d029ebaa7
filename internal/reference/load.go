// Package reference loads the read-only reference data of the simulator:
// municipality diagnostics and the two initiative catalogs.
package reference

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names in the reference workbook.
const (
	SheetMunicipalities = "Municipios"
	SheetCurrent        = "Atual"
	SheetProposed       = "Proposta"
)

// Column headers in the reference workbook.
const (
	ColumnMunicipality = "MUN"
	ColumnRegion       = "REG"
	ColumnTerritory    = "TER"
	ColumnAxis         = "EIXO"
	ColumnPercentage   = "PERCENTUAL"
	ColumnIndex        = "IDAN-M"
	ColumnInitiative   = "INICIATIVA"
	ColumnSolution     = "SOLUCAO"
	ColumnValue        = "VALOR"
	ColumnSubsidy      = "SUBSIDIO"
)

var (
	ErrMissingSheet  = errors.New("sheet not found in reference data")
	ErrMissingColumn = errors.New("column not found in reference data")
	ErrInvalidValue  = errors.New("invalid value in reference data")
)

// Load reads the reference workbook at path.
func Load(path string) (*Data, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open reference data %s: %w", path, err)
	}
	defer f.Close()

	data, err := read(f)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("path", path).
		Int("municipalities", data.Municipalities.Len()).
		Int("current", len(data.Current.entries)).
		Int("proposed", len(data.Proposed.entries)).
		Msg("reference data loaded")

	return data, nil
}

// Read reads a reference workbook from r.
func Read(r io.Reader) (*Data, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open reference data: %w", err)
	}
	defer f.Close()

	return read(f)
}

func read(f *excelize.File) (*Data, error) {
	municipalities, err := readMunicipalities(f)
	if err != nil {
		return nil, err
	}

	current, err := readCurrent(f)
	if err != nil {
		return nil, err
	}

	proposed, err := readProposed(f)
	if err != nil {
		return nil, err
	}

	return &Data{
		Municipalities: municipalities,
		Current:        current,
		Proposed:       proposed,
	}, nil
}

// table is a sheet with its header resolved to column indices.
type table struct {
	sheet   string
	columns map[string]int
	rows    [][]string
}

func readTable(f *excelize.File, sheet string, required ...string) (table, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx == -1 {
		return table{}, fmt.Errorf("%w: %s", ErrMissingSheet, sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return table{}, fmt.Errorf("could not read sheet %s: %w", sheet, err)
	}

	t := table{sheet: sheet, columns: make(map[string]int)}
	if len(rows) > 0 {
		for i, name := range rows[0] {
			t.columns[strings.TrimSpace(name)] = i
		}
		t.rows = rows[1:]
	}

	for _, column := range required {
		if _, ok := t.columns[column]; !ok {
			return table{}, fmt.Errorf("%w: %s in sheet %s", ErrMissingColumn, column, sheet)
		}
	}

	return t, nil
}

func (t table) cell(row []string, column string) string {
	i := t.columns[column]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t table) float(row []string, line int, column string) (float64, error) {
	v, err := strconv.ParseFloat(t.cell(row, column), 64)
	if err != nil {
		return 0, t.invalid(line, column, err)
	}
	return v, nil
}

func (t table) decimal(row []string, line int, column string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(t.cell(row, column))
	if err != nil {
		return decimal.Zero, t.invalid(line, column, err)
	}
	return v, nil
}

// invalid returns an error pointing at the spreadsheet row. line is the index
// into t.rows, the header is row 1.
func (t table) invalid(line int, column string, err error) error {
	return fmt.Errorf("%w: sheet %s, row %d, column %s: %v", ErrInvalidValue, t.sheet, line+2, column, err)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func readMunicipalities(f *excelize.File) (Municipalities, error) {
	t, err := readTable(f, SheetMunicipalities, ColumnMunicipality, ColumnRegion, ColumnTerritory, ColumnAxis, ColumnPercentage, ColumnIndex)
	if err != nil {
		return Municipalities{}, err
	}

	m := Municipalities{byName: make(map[string]int)}
	for line, row := range t.rows {
		if blank(row) {
			continue
		}

		name := t.cell(row, ColumnMunicipality)
		if name == "" {
			return Municipalities{}, t.invalid(line, ColumnMunicipality, errors.New("name is empty"))
		}

		percentage, err := t.float(row, line, ColumnPercentage)
		if err != nil {
			return Municipalities{}, err
		}

		i, ok := m.byName[name]
		if !ok {
			index, err := t.float(row, line, ColumnIndex)
			if err != nil {
				return Municipalities{}, err
			}

			m.list = append(m.list, Municipality{
				Name:      name,
				Region:    t.cell(row, ColumnRegion),
				Territory: t.cell(row, ColumnTerritory),
				Index:     index,
			})
			i = len(m.list) - 1
			m.byName[name] = i
		}

		m.list[i].Axes = append(m.list[i].Axes, Axis{
			Name:       t.cell(row, ColumnAxis),
			Percentage: percentage,
		})
	}

	return m, nil
}

func readCurrent(f *excelize.File) (CurrentCatalog, error) {
	t, err := readTable(f, SheetCurrent, ColumnInitiative, ColumnValue)
	if err != nil {
		return CurrentCatalog{}, err
	}

	c := CurrentCatalog{entries: make(map[string]CurrentEntry)}
	for line, row := range t.rows {
		if blank(row) {
			continue
		}

		entry := CurrentEntry{Initiative: t.cell(row, ColumnInitiative)}
		if entry.Initiative == "" {
			return CurrentCatalog{}, t.invalid(line, ColumnInitiative, errors.New("initiative is empty"))
		}

		if t.cell(row, ColumnValue) != EnterValue {
			entry.Fixed = true
			entry.Amount, err = t.decimal(row, line, ColumnValue)
			if err != nil {
				return CurrentCatalog{}, err
			}
		}

		c.entries[entry.Initiative] = entry
	}

	return c, nil
}

func readProposed(f *excelize.File) (ProposedCatalog, error) {
	t, err := readTable(f, SheetProposed, ColumnInitiative, ColumnSolution, ColumnValue, ColumnSubsidy)
	if err != nil {
		return ProposedCatalog{}, err
	}

	var c ProposedCatalog
	for line, row := range t.rows {
		if blank(row) {
			continue
		}

		entry := ProposedEntry{
			Initiative: t.cell(row, ColumnInitiative),
			Solution:   t.cell(row, ColumnSolution),
		}
		if entry.Initiative == "" {
			return ProposedCatalog{}, t.invalid(line, ColumnInitiative, errors.New("initiative is empty"))
		}

		// The customized initiative takes its total from the user, its
		// amounts in the sheet are placeholders
		if entry.Initiative == Customized {
			c.entries = append(c.entries, entry)
			continue
		}

		entry.Total, err = t.decimal(row, line, ColumnValue)
		if err != nil {
			return ProposedCatalog{}, err
		}

		entry.Subsidy, err = t.decimal(row, line, ColumnSubsidy)
		if err != nil {
			return ProposedCatalog{}, err
		}

		c.entries = append(c.entries, entry)
	}

	return c, nil
}
