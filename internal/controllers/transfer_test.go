package controllers_test

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/acoes-municipais/simulador/internal/exporter"
	"github.com/acoes-municipais/simulador/internal/importer"
	"github.com/acoes-municipais/simulador/test"
	"github.com/xuri/excelize/v2"
)

const sessionFile = "INICIATIVA,SEBRAE/PR,MUNICIPIO,TOTAL,SOLUCAO,SUBSIDIO,VALOR_MUNICIPIO,VALOR,TIPO\n" +
	"Sala do Empreendedor,1000,0,1000,,,,,ATUAL\n" +
	"Consultoria Tecnológica,200,300,500,,,,,ATUAL\n" +
	"Compras Governamentais,,,,Consultoria,14000,6000,20000,PROPOSTA\n"

// upload sends a file to the import form.
func (suite *TestSuiteStandard) upload(cookie map[string]string, name, content string) {
	body, headers := test.Upload(suite.T(), name, []byte(content))
	recorder := suite.request(http.MethodPost, "/import", body, cookie, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusSeeOther)
}

func (suite *TestSuiteStandard) TestImport() {
	cookie := suite.newSession()
	suite.submit(cookie, "/municipality", url.Values{"municipality": {test.Curitiba}})
	suite.submit(cookie, "/proposal", url.Values{"initiative": {test.SingleInitiative}})
	suite.submit(cookie, "/import/toggle", nil)

	suite.upload(cookie, "Curitiba_proposta_salva.csv", sessionFile)

	page := suite.page(cookie)
	suite.Assert().Contains(page, "Proposta carregada: 2 investimentos atuais e 1 itens de proposta.")
	suite.Assert().NotContains(page, `action="/import" enctype`, "the upload form is closed after a successful import")

	l := suite.ledger(cookie)
	suite.Require().Len(l.Invested, 2)
	suite.Require().Len(l.Proposal, 1, "the tables are replaced")
	suite.Assert().Equal(test.EnterInitiative, l.Invested[1].Initiative)
	suite.assertAmount("300", l.Invested[1].Municipality)
	suite.Assert().Equal(test.ProposedSolution, l.Proposal[0].Solution)
	suite.assertAmount("14000", l.Proposal[0].Subsidy)
	suite.assertAmount("21500", l.Totals.Grand.Total)
}

func (suite *TestSuiteStandard) TestImportRejected() {
	tests := []struct {
		name    string
		file    string
		content string
		message string
	}{
		{"Missing type column", "a.csv", "INICIATIVA,TOTAL\nSala do Empreendedor,10\n", "Erro ao carregar: o arquivo não possui a coluna TIPO."},
		{"Empty", "a.csv", "", "Erro ao carregar: o arquivo está vazio."},
		{"Wrong extension", "a.xlsx", sessionFile, "Erro ao carregar: o arquivo precisa ser um .csv."},
		{"Broken amount", "a.csv", "INICIATIVA,SEBRAE/PR,MUNICIPIO,TOTAL,TIPO\nSala do Empreendedor,mil,0,1000,ATUAL\n", "Erro ao carregar: error in line 2 of the CSV"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			cookie := suite.newSession()
			suite.submit(cookie, "/invested", url.Values{"initiative": {test.FixedInitiative}})

			suite.upload(cookie, tt.file, tt.content)

			suite.Assert().Contains(suite.page(cookie), tt.message)
			suite.Assert().Len(suite.ledger(cookie).Invested, 1, "a rejected file does not change the tables")
		})
	}
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	cookie := suite.newSession()
	suite.submit(cookie, "/import", url.Values{})
	suite.Assert().Contains(suite.page(cookie), "Erro ao carregar: selecione um arquivo.")
}

func (suite *TestSuiteStandard) TestExportSession() {
	cookie := suite.newSession()
	suite.submit(cookie, "/municipality", url.Values{"municipality": {test.Curitiba}})
	suite.submit(cookie, "/invested", url.Values{"initiative": {test.FixedInitiative2}})
	suite.submit(cookie, "/proposal", url.Values{"initiative": {test.ProposedInitiative}, "solution": {test.ProposedSolution2}})

	recorder := suite.request(http.MethodGet, "/export/session", "", cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Equal("text/csv; charset=utf-8", recorder.Header().Get("Content-Type"))
	suite.Assert().Contains(recorder.Header().Get("Content-Disposition"), "attachment")
	suite.Assert().Contains(recorder.Header().Get("Content-Disposition"), exporter.SessionFileName(test.Curitiba))
	suite.Assert().True(bytes.HasPrefix(recorder.Body.Bytes(), importer.BOM))

	exported := suite.ledger(cookie)

	// Importing the file into a new session restores the tables
	other := suite.newSession()
	suite.upload(other, exporter.SessionFileName(test.Curitiba), recorder.Body.String())

	imported := suite.ledger(other)
	suite.Require().Len(imported.Invested, 1)
	suite.Require().Len(imported.Proposal, 1)
	suite.Assert().Equal(exported.Invested[0].Initiative, imported.Invested[0].Initiative)
	suite.assertAmount("2500.5", imported.Invested[0].Total)
	suite.Assert().Equal(exported.Proposal[0].Solution, imported.Proposal[0].Solution)
	suite.assertAmount("8000", imported.Proposal[0].Subsidy)
	suite.assertAmount("0", imported.Proposal[0].Municipality)
}

func (suite *TestSuiteStandard) TestExportReport() {
	cookie := suite.newSession()
	suite.submit(cookie, "/municipality", url.Values{"municipality": {test.Curitiba}})
	suite.submit(cookie, "/invested", url.Values{"initiative": {test.FixedInitiative}})

	recorder := suite.request(http.MethodGet, "/export/report", "", cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", recorder.Header().Get("Content-Type"))
	suite.Assert().Contains(recorder.Header().Get("Content-Disposition"), exporter.ReportFileName(test.Curitiba))

	f, err := excelize.OpenReader(bytes.NewReader(recorder.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	title, err := f.GetCellValue(exporter.ReportSheet, "A1")
	suite.Require().Nil(err)
	suite.Assert().Equal(exporter.Title(test.Curitiba), title)
}

func (suite *TestSuiteStandard) TestExportNoMunicipality() {
	for _, path := range []string{"/export/session", "/export/report"} {
		cookie := suite.newSession()

		recorder := suite.request(http.MethodGet, path, "", cookie)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusSeeOther)
		suite.Assert().Contains(suite.page(cookie), "Selecione um município.", path)
	}
}
