// Package exporter writes the ledger of a session to files users can
// download: the session file that can be imported again and the
// spreadsheet report of the proposal.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/acoes-municipais/simulador/internal/importer"
	"github.com/acoes-municipais/simulador/internal/ledger"
)

// SessionFileName returns the name of the session file for a municipality.
func SessionFileName(municipality string) string {
	return fmt.Sprintf("%s_proposta_salva.csv", municipality)
}

// WriteSessionFile writes the ledger as session file. Invested rows come
// first, cells of the other table are left empty.
func WriteSessionFile(w io.Writer, l ledger.Ledger) error {
	if _, err := w.Write(importer.BOM); err != nil {
		return err
	}

	writer := csv.NewWriter(w)

	err := writer.Write(importer.Columns)
	if err != nil {
		return err
	}

	for _, r := range l.Invested {
		err = writer.Write([]string{
			r.Initiative,
			r.Sponsor.String(),
			r.Municipality.String(),
			r.Total.String(),
			"", "", "", "",
			importer.TypeInvested,
		})
		if err != nil {
			return err
		}
	}

	for _, r := range l.Proposal {
		err = writer.Write([]string{
			r.Initiative,
			"", "", "",
			r.Solution,
			r.Subsidy.String(),
			r.Municipality.String(),
			r.Total.String(),
			importer.TypeProposal,
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
