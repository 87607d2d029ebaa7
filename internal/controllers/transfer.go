package controllers

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/acoes-municipais/simulador/internal/exporter"
	"github.com/acoes-municipais/simulador/internal/importer"
	"github.com/acoes-municipais/simulador/internal/importer/helpers"
	"github.com/acoes-municipais/simulador/internal/ledger"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	contentTypeReport  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeSession = "text/csv; charset=utf-8"
)

// upload reads and parses the session file sent in the "file" form field.
func upload(c *gin.Context) (ledger.Ledger, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil || err != nil {
		return ledger.Ledger{}, errNoFile
	}

	if !strings.HasSuffix(strings.ToLower(formFile.Filename), ".csv") {
		return ledger.Ledger{}, errFileType
	}

	f, err := formFile.Open()
	if err != nil {
		return ledger.Ledger{}, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return ledger.Ledger{}, err
	}

	log.Debug().
		Str("request-id", requestid.Get(c)).
		Str("file", formFile.Filename).
		Str("sha256", helpers.Fingerprint(content)).
		Msg("session file uploaded")

	return importer.Parse(bytes.NewReader(content))
}

// Import replaces both tables with the content of an uploaded session file.
// The file is parsed completely before anything is replaced, a broken file
// leaves the session unchanged.
func (co Controller) Import(c *gin.Context) {
	id := sessionID(c)

	l, err := upload(c)
	if err != nil {
		co.reject(c, err, message(err, "Erro ao carregar: "))
		return
	}

	err = co.Store.SaveLedger(id, l)
	if err != nil {
		co.redirect(c, err)
		return
	}

	err = co.Store.SetImportOpen(id, false)
	if err != nil {
		co.redirect(c, err)
		return
	}

	log.Info().
		Str("request-id", requestid.Get(c)).
		Int("invested", len(l.Invested)).
		Int("proposal", len(l.Proposal)).
		Msg("session file imported")

	co.notify(c, fmt.Sprintf("Proposta carregada: %d investimentos atuais e %d itens de proposta.", len(l.Invested), len(l.Proposal)))
}

// attachment sends content as a file download.
func attachment(c *gin.Context, name, contentType string, content []byte) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	c.Data(http.StatusOK, contentType, content)
}

// export writes a file for the selected municipality.
func (co Controller) export(c *gin.Context, write func(w io.Writer, municipality string, l ledger.Ledger) error) (string, []byte, error) {
	id := sessionID(c)

	session, err := co.Store.Session(id)
	if err != nil {
		return "", nil, err
	}

	if session.Municipality == "" {
		return "", nil, errNoMunicipality
	}

	l, err := co.Store.Ledger(id)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	err = write(&buf, session.Municipality, l)
	if err != nil {
		return "", nil, err
	}

	return session.Municipality, buf.Bytes(), nil
}

// ExportReport downloads the spreadsheet report of the session.
func (co Controller) ExportReport(c *gin.Context) {
	municipality, content, err := co.export(c, exporter.WriteReport)
	if err != nil {
		co.redirect(c, err)
		return
	}

	attachment(c, exporter.ReportFileName(municipality), contentTypeReport, content)
}

// ExportSession downloads the session file that can be imported later.
func (co Controller) ExportSession(c *gin.Context) {
	municipality, content, err := co.export(c, func(w io.Writer, _ string, l ledger.Ledger) error {
		return exporter.WriteSessionFile(w, l)
	})
	if err != nil {
		co.redirect(c, err)
		return
	}

	attachment(c, exporter.SessionFileName(municipality), contentTypeSession, content)
}
