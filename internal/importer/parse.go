package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/acoes-municipais/simulador/internal/ledger"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// header maps column names to their position in a record.
type header map[string]int

func (h header) get(record []string, column string) string {
	i, ok := h[column]
	if !ok {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (h header) amount(record []string, column string) (decimal.Decimal, error) {
	value := h.get(record, column)
	if value == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s could not be parsed to a decimal: %q", column, value)
	}

	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s: %w", column, ledger.ErrNegativeAmount)
	}

	return amount, nil
}

// Parse reads a session file and returns the ledger it contains.
//
// Columns may be in any order and columns of the other table may be missing.
// Empty amounts are zero, the municipality amount of each row is computed
// from its total and sponsor (subsidy) amounts. Rows of an unknown type are
// skipped. On error, no ledger is returned.
func Parse(f io.Reader) (ledger.Ledger, error) {
	br := bufio.NewReader(f)
	if prefix, err := br.Peek(len(BOM)); err == nil && bytes.Equal(prefix, BOM) {
		_, _ = br.Discard(len(BOM))
	}

	reader := csv.NewReader(br)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	names, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return ledger.Ledger{}, ErrEmptyFile
	}
	if err != nil {
		return csvReadError(reader, fmt.Errorf("could not read header: %w", err))
	}

	h := header{}
	for i, name := range names {
		h[strings.TrimSpace(name)] = i
	}

	if _, ok := h[ColumnType]; !ok {
		return ledger.Ledger{}, ErrMissingType
	}

	l := ledger.Ledger{
		Invested: []ledger.InvestedRow{},
		Proposal: []ledger.ProposalRow{},
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		switch kind := h.get(record, ColumnType); kind {
		case TypeInvested:
			row, err := investedRow(h, record)
			if err != nil {
				return csvReadError(reader, err)
			}
			l.Invested = append(l.Invested, row)

		case TypeProposal:
			row, err := proposalRow(h, record)
			if err != nil {
				return csvReadError(reader, err)
			}
			l.Proposal = append(l.Proposal, row)

		default:
			line, _ := reader.FieldPos(0)
			log.Debug().Int("line", line).Str("type", kind).Msg("skipping row of unknown type")
		}
	}

	return l, nil
}

func investedRow(h header, record []string) (ledger.InvestedRow, error) {
	sponsor, err := h.amount(record, ColumnSponsor)
	if err != nil {
		return ledger.InvestedRow{}, err
	}

	total, err := h.amount(record, ColumnTotal)
	if err != nil {
		return ledger.InvestedRow{}, err
	}

	return ledger.InvestedRow{
		Initiative:   h.get(record, ColumnInitiative),
		Sponsor:      sponsor,
		Municipality: total.Sub(sponsor),
		Total:        total,
	}, nil
}

func proposalRow(h header, record []string) (ledger.ProposalRow, error) {
	subsidy, err := h.amount(record, ColumnSubsidy)
	if err != nil {
		return ledger.ProposalRow{}, err
	}

	total, err := h.amount(record, ColumnValue)
	if err != nil {
		return ledger.ProposalRow{}, err
	}

	return ledger.ProposalRow{
		Initiative:   h.get(record, ColumnInitiative),
		Solution:     h.get(record, ColumnSolution),
		Subsidy:      subsidy,
		Municipality: total.Sub(subsidy),
		Total:        total,
	}, nil
}

// csvReadError returns the error with the line of the input it occurred in
// in the message.
func csvReadError(r *csv.Reader, err error) (ledger.Ledger, error) {
	// Records failing to parse have no field positions
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return ledger.Ledger{}, fmt.Errorf("error in line %d of the CSV: %w", parseErr.Line, err)
	}

	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(0)

	return ledger.Ledger{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
