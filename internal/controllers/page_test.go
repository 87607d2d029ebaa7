package controllers_test

import (
	"net/http"
	"net/url"
	"time"

	"github.com/acoes-municipais/simulador/internal/controllers"
	"github.com/acoes-municipais/simulador/internal/models"
	"github.com/acoes-municipais/simulador/internal/reference"
	"github.com/acoes-municipais/simulador/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) assertAmount(expected string, actual decimal.Decimal, msgAndArgs ...any) {
	suite.Assert().True(decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s. %v", expected, actual, msgAndArgs)
}

// sessionID returns the session ID from a cookie header.
func (suite *TestSuiteStandard) sessionID(cookie map[string]string) uuid.UUID {
	id, err := uuid.Parse(cookie["Cookie"][len(controllers.SessionCookie)+1:])
	suite.Require().Nil(err)
	return id
}

func (suite *TestSuiteStandard) TestGetPage() {
	recorder := suite.request(http.MethodGet, "/", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Equal("text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	suite.Assert().Contains(recorder.Body.String(), "Simulador de Ações Municipais")
	suite.Assert().Contains(recorder.Body.String(), "Selecione um município para iniciar a simulação.")
	suite.Assert().Contains(recorder.Body.String(), "https://example.com/portfolio")

	cookie := recorder.Result().Cookies()
	suite.Require().Len(cookie, 1)
	suite.Assert().Equal(controllers.SessionCookie, cookie[0].Name)
	suite.Assert().True(cookie[0].HttpOnly)
}

func (suite *TestSuiteStandard) TestSessionIsKept() {
	cookie := suite.newSession()

	recorder := suite.request(http.MethodGet, "/", "", cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Empty(recorder.Result().Cookies(), "no new session must be created")
}

func (suite *TestSuiteStandard) TestSessionUnknownCookie() {
	cookies := []map[string]string{
		{"Cookie": controllers.SessionCookie + "=" + uuid.New().String()},
		{"Cookie": controllers.SessionCookie + "=not-a-uuid"},
	}

	for _, cookie := range cookies {
		recorder := suite.request(http.MethodGet, "/", "", cookie)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
		suite.Assert().NotEqual(cookie, test.Cookie(suite.T(), &recorder), "a new session must be created")
	}
}

func (suite *TestSuiteStandard) TestSessionExpired() {
	cookie := suite.newSession()
	id := suite.sessionID(cookie)

	err := suite.controller.Store.DB.
		Model(&models.Session{}).
		Where("id = ?", id).
		Update("last_seen", time.Now().Add(-2*suite.controller.Config.SessionTTL).In(time.UTC)).Error
	suite.Require().Nil(err)

	recorder := suite.request(http.MethodGet, "/", "", cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().NotEqual(cookie, test.Cookie(suite.T(), &recorder))

	_, err = suite.controller.Store.Session(id)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound, "the expired session must be purged")
}

func (suite *TestSuiteStandard) TestSelectMunicipality() {
	cookie := suite.newSession()
	suite.submit(cookie, "/municipality", url.Values{"municipality": {test.Curitiba}})

	page := suite.page(cookie)
	suite.Assert().Contains(page, "Metropolitano")
	suite.Assert().Contains(page, "Oportunidades de melhoria")
	suite.Assert().Contains(page, "Desburocratização (10,0%)")
	suite.Assert().Contains(page, "<svg class=\"radar\"")
	suite.Assert().Contains(page, "Investimentos atuais")

	session, err := suite.controller.Store.Session(suite.sessionID(cookie))
	suite.Require().Nil(err)
	suite.Assert().Equal(test.Curitiba, session.Municipality)

	// Clearing the selection hides the simulation
	suite.submit(cookie, "/municipality", url.Values{"municipality": {""}})
	suite.Assert().Contains(suite.page(cookie), "Selecione um município para iniciar a simulação.")
}

func (suite *TestSuiteStandard) TestSelectMunicipalityKeepsLedger() {
	cookie := suite.newSession()
	suite.submit(cookie, "/municipality", url.Values{"municipality": {test.Curitiba}})
	suite.submit(cookie, "/invested", url.Values{"initiative": {test.FixedInitiative}})
	suite.submit(cookie, "/municipality", url.Values{"municipality": {test.Adrianopolis}})

	suite.Assert().Len(suite.ledger(cookie).Invested, 1)
}

func (suite *TestSuiteStandard) TestSelectUnknownMunicipality() {
	cookie := suite.newSession()
	suite.submit(cookie, "/municipality", url.Values{"municipality": {"Atlântida"}})

	suite.Assert().Contains(suite.page(cookie), "O município selecionado não existe.")
	suite.Assert().NotContains(suite.page(cookie), "O município selecionado não existe.", "messages are only shown once")
}

func (suite *TestSuiteStandard) TestAddInvestedFixed() {
	cookie := suite.newSession()
	suite.submit(cookie, "/invested", url.Values{
		"initiative": {test.FixedInitiative},
		"total":      {"7"},
		"sponsor":    {"3"},
	})

	l := suite.ledger(cookie)
	suite.Require().Len(l.Invested, 1)
	suite.Assert().Equal(test.FixedInitiative, l.Invested[0].Initiative)
	suite.assertAmount("1000", l.Invested[0].Total, "the catalog amount is used")
	suite.assertAmount("1000", l.Invested[0].Sponsor)
	suite.assertAmount("0", l.Invested[0].Municipality)
}

func (suite *TestSuiteStandard) TestAddInvestedEntered() {
	cookie := suite.newSession()
	suite.submit(cookie, "/municipality", url.Values{"municipality": {test.Curitiba}})
	suite.submit(cookie, "/invested", url.Values{
		"initiative": {test.EnterInitiative},
		"total":      {"5000.50"},
		"sponsor":    {"2000"},
	})

	l := suite.ledger(cookie)
	suite.Require().Len(l.Invested, 1)
	suite.assertAmount("3000.50", l.Invested[0].Municipality)

	page := suite.page(cookie)
	suite.Assert().Contains(page, "R$ 5.000,50")
	suite.Assert().Contains(page, "R$ 3.000,50")
}

func (suite *TestSuiteStandard) TestAddInvestedRejected() {
	tests := []struct {
		name    string
		values  url.Values
		message string
	}{
		{"No initiative", url.Values{"total": {"10"}}, "Selecione uma iniciativa."},
		{"Unknown initiative", url.Values{"initiative": {"Nada"}}, "A iniciativa selecionada não existe no catálogo."},
		{"Negative", url.Values{"initiative": {test.EnterInitiative}, "total": {"-1"}}, "Os valores não podem ser negativos."},
		{"Not a number", url.Values{"initiative": {test.EnterInitiative}, "total": {"1.000,00"}}, "Valor inválido. Use ponto como separador decimal."},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			cookie := suite.newSession()
			suite.submit(cookie, "/municipality", url.Values{"municipality": {test.Curitiba}})
			suite.submit(cookie, "/invested", tt.values)

			suite.Assert().Contains(suite.page(cookie), tt.message)
			suite.Assert().Len(suite.ledger(cookie).Invested, 0)
		})
	}
}

func (suite *TestSuiteStandard) TestAddProposal() {
	tests := []struct {
		name     string
		values   url.Values
		solution string
		subsidy  string
		total    string
	}{
		{"Catalog", url.Values{"initiative": {test.ProposedInitiative}, "solution": {test.ProposedSolution}}, test.ProposedSolution, "14000", "20000"},
		{"Single solution", url.Values{"initiative": {test.SingleInitiative}}, reference.NoSolution, "35000", "50000"},
		{"Customized", url.Values{"initiative": {reference.Customized}, "total": {"1234.5"}}, reference.NoSolution, "0", "1234.5"},
		{"Unknown combination", url.Values{"initiative": {test.ProposedInitiative}, "solution": {"Mentoria"}}, "Mentoria", "0", "0"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			cookie := suite.newSession()
			suite.submit(cookie, "/proposal", tt.values)

			l := suite.ledger(cookie)
			suite.Require().Len(l.Proposal, 1)
			suite.Assert().Equal(tt.solution, l.Proposal[0].Solution)
			suite.Assert().True(decimal.RequireFromString(tt.subsidy).Equal(l.Proposal[0].Subsidy))
			suite.Assert().True(decimal.RequireFromString(tt.total).Equal(l.Proposal[0].Total))
			suite.Assert().True(l.Proposal[0].Total.Sub(l.Proposal[0].Subsidy).Equal(l.Proposal[0].Municipality))
		})
	}
}

func (suite *TestSuiteStandard) TestEditRow() {
	cookie := suite.newSession()
	suite.submit(cookie, "/invested", url.Values{"initiative": {test.EnterInitiative}, "total": {"100"}, "sponsor": {"100"}})
	suite.submit(cookie, "/proposal", url.Values{"initiative": {test.ProposedInitiative}, "solution": {test.ProposedSolution}})

	suite.submit(cookie, "/invested/0", url.Values{"sponsor": {"1000"}, "total": {"4000"}})
	suite.submit(cookie, "/proposal/0", url.Values{"sponsor": {"5000"}})

	l := suite.ledger(cookie)
	suite.assertAmount("1000", l.Invested[0].Sponsor)
	suite.assertAmount("3000", l.Invested[0].Municipality)
	suite.assertAmount("4000", l.Invested[0].Total)

	suite.assertAmount("5000", l.Proposal[0].Subsidy)
	suite.assertAmount("15000", l.Proposal[0].Municipality)
	suite.assertAmount("20000", l.Proposal[0].Total, "fields that are not sent are not changed")

	suite.assertAmount("4000", l.Totals.Invested.Total)
	suite.assertAmount("24000", l.Totals.Grand.Total)
	suite.assertAmount("6000", l.Totals.Grand.Sponsor)
	suite.assertAmount("18000", l.Totals.Grand.Municipality)
}

func (suite *TestSuiteStandard) TestEditRowRejected() {
	cookie := suite.newSession()
	suite.submit(cookie, "/invested", url.Values{"initiative": {test.FixedInitiative}})

	suite.submit(cookie, "/invested/1", url.Values{"total": {"10"}})
	suite.Assert().Contains(suite.page(cookie), "A linha selecionada não existe mais.")

	suite.submit(cookie, "/invested/first", url.Values{"total": {"10"}})
	suite.Assert().Contains(suite.page(cookie), "A linha selecionada não existe mais.")

	suite.submit(cookie, "/invested/0", url.Values{"total": {"-10"}})
	suite.Assert().Contains(suite.page(cookie), "Os valores não podem ser negativos.")

	suite.assertAmount("1000", suite.ledger(cookie).Invested[0].Total, "rejected edits do not change the row")
}

func (suite *TestSuiteStandard) TestDeleteRow() {
	cookie := suite.newSession()
	suite.submit(cookie, "/invested", url.Values{"initiative": {test.FixedInitiative}})
	suite.submit(cookie, "/invested", url.Values{"initiative": {test.FixedInitiative2}})
	suite.submit(cookie, "/proposal", url.Values{"initiative": {test.SingleInitiative}})

	suite.submit(cookie, "/invested/0/delete", nil)
	suite.submit(cookie, "/proposal/0/delete", nil)

	l := suite.ledger(cookie)
	suite.Require().Len(l.Invested, 1)
	suite.Assert().Equal(test.FixedInitiative2, l.Invested[0].Initiative)
	suite.Assert().Len(l.Proposal, 0)

	suite.submit(cookie, "/proposal/0/delete", nil)
	suite.Assert().Contains(suite.page(cookie), "A linha selecionada não existe mais.")
}

func (suite *TestSuiteStandard) TestInsertBlank() {
	cookie := suite.newSession()
	suite.submit(cookie, "/invested/blank", nil)
	suite.submit(cookie, "/proposal/blank", nil)
	suite.submit(cookie, "/proposal/blank", nil)

	l := suite.ledger(cookie)
	suite.Require().Len(l.Invested, 1)
	suite.Assert().Equal("", l.Invested[0].Initiative)
	suite.Assert().True(l.Invested[0].Total.IsZero())
	suite.Assert().Len(l.Proposal, 2)
}

func (suite *TestSuiteStandard) TestToggleImport() {
	cookie := suite.newSession()
	suite.submit(cookie, "/municipality", url.Values{"municipality": {test.Curitiba}})
	suite.Assert().NotContains(suite.page(cookie), `action="/import" enctype`)

	suite.submit(cookie, "/import/toggle", nil)
	suite.Assert().Contains(suite.page(cookie), `action="/import" enctype`)

	suite.submit(cookie, "/import/toggle", nil)
	suite.Assert().NotContains(suite.page(cookie), `action="/import" enctype`)
}

func (suite *TestSuiteStandard) TestReset() {
	cookie := suite.newSession()
	suite.submit(cookie, "/municipality", url.Values{"municipality": {test.Curitiba}})
	suite.submit(cookie, "/invested", url.Values{"initiative": {test.FixedInitiative}})
	suite.submit(cookie, "/proposal", url.Values{"initiative": {test.SingleInitiative}})
	suite.submit(cookie, "/import/toggle", nil)

	suite.submit(cookie, "/reset", nil)

	l := suite.ledger(cookie)
	suite.Assert().Len(l.Invested, 0)
	suite.Assert().Len(l.Proposal, 0)
	suite.Assert().True(l.Totals.Grand.Total.IsZero())

	session, err := suite.controller.Store.Session(suite.sessionID(cookie))
	suite.Require().Nil(err)
	suite.Assert().False(session.ImportOpen, "reset closes the upload form")
	suite.Assert().Equal(test.Curitiba, session.Municipality, "reset keeps the municipality")
}

func (suite *TestSuiteStandard) TestFormClosedDatabase() {
	cookie := suite.newSession()
	suite.CloseDB()

	body, headers := test.Form(url.Values{"initiative": {test.FixedInitiative}})
	recorder := suite.request(http.MethodPost, "/invested", body, cookie, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
