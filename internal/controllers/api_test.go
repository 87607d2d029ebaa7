package controllers_test

import (
	"net/http"
	"net/url"

	"github.com/acoes-municipais/simulador/internal/controllers"
	"github.com/acoes-municipais/simulador/internal/reference"
	"github.com/acoes-municipais/simulador/test"
)

func (suite *TestSuiteStandard) TestGetMunicipalities() {
	recorder := suite.request(http.MethodGet, "/v1/municipalities", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.MunicipalityListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(test.Curitiba, response.Data[0].Name)
	suite.Assert().Equal(test.Adrianopolis, response.Data[1].Name)
	suite.Assert().Len(response.Data[0].Axes, 5)
	suite.Assert().Nil(response.Error)
}

func (suite *TestSuiteStandard) TestGetMunicipality() {
	tests := []struct {
		name          string
		opportunities []string
	}{
		{test.Curitiba, []string{"Desburocratização", "Compras Governamentais"}},
		{test.Adrianopolis, []string{"Governança", "Desburocratização", "Compras Governamentais"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodGet, "/v1/municipalities/"+url.PathEscape(tt.name), "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response controllers.MunicipalityResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Require().NotNil(response.Data)

			var names []string
			for _, a := range response.Data.Opportunities {
				names = append(names, a.Name)
			}
			suite.Assert().Equal(tt.opportunities, names)
			suite.Assert().Equal(tt.name, response.Data.Municipality.Name)
			suite.Assert().Len(response.Data.Radar.Labels, 5)
		})
	}
}

func (suite *TestSuiteStandard) TestGetMunicipalityNotFound() {
	recorder := suite.request(http.MethodGet, "/v1/municipalities/Atl%C3%A2ntida", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	suite.Assert().Equal("there is no municipality with this name", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestGetCurrentCatalog() {
	tests := []struct {
		query    string
		expected []string
	}{
		{"", []string{test.EnterInitiative, test.FixedInitiative2, test.FixedInitiative}},
		{"?search=Sala*", []string{test.FixedInitiative}},
		{"?search=*a*", []string{test.EnterInitiative, test.FixedInitiative2, test.FixedInitiative}},
		{"?search=Nada", []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			recorder := suite.request(http.MethodGet, "/v1/catalog/current"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response controllers.CurrentCatalogResponse
			test.DecodeResponse(suite.T(), &recorder, &response)

			names := []string{}
			for _, e := range response.Data {
				names = append(names, e.Initiative)
			}
			suite.Assert().Equal(tt.expected, names)
		})
	}
}

func (suite *TestSuiteStandard) TestGetProposedCatalog() {
	recorder := suite.request(http.MethodGet, "/v1/catalog/proposed?search=Capacita*", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ProposedCatalogResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1, "the search matches solutions")
	suite.Assert().Equal(test.ProposedInitiative, response.Data[0].Initiative)
	suite.Assert().Equal(test.ProposedSolution2, response.Data[0].Solution)
	suite.assertAmount("8000", response.Data[0].Total)
}

func (suite *TestSuiteStandard) TestCreateInvested() {
	cookie := suite.newSession()

	recorder := suite.request(http.MethodPost, "/v1/ledger/invested", map[string]any{
		"initiative": test.EnterInitiative,
		"total":      "1500",
		"sponsor":    "500",
	}, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.InvestedRowResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.assertAmount("1000", response.Data.Municipality)

	suite.Assert().Len(suite.ledger(cookie).Invested, 1)
}

func (suite *TestSuiteStandard) TestCreateProposal() {
	cookie := suite.newSession()

	recorder := suite.request(http.MethodPost, "/v1/ledger/proposal", map[string]any{
		"initiative": reference.Customized,
		"total":      "900",
	}, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.ProposalRowResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(reference.NoSolution, response.Data.Solution)
	suite.assertAmount("0", response.Data.Subsidy)
	suite.assertAmount("900", response.Data.Municipality)
}

func (suite *TestSuiteStandard) TestCreateRowRejected() {
	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Empty body", "/v1/ledger/invested", "", http.StatusBadRequest},
		{"Broken body", "/v1/ledger/proposal", `{"initiative": `, http.StatusBadRequest},
		{"Wrong type", "/v1/ledger/invested", `{"initiative": 5}`, http.StatusBadRequest},
		{"No initiative", "/v1/ledger/invested", map[string]any{"total": "10"}, http.StatusBadRequest},
		{"Unknown initiative", "/v1/ledger/invested", map[string]any{"initiative": "Nada"}, http.StatusBadRequest},
		{"Negative", "/v1/ledger/invested", map[string]any{"initiative": test.EnterInitiative, "total": "-1"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			cookie := suite.newSession()

			recorder := suite.request(http.MethodPost, tt.path, tt.body, cookie)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
			suite.Assert().NotEmpty(test.DecodeError(suite.T(), recorder.Body.Bytes()))
			suite.Assert().Len(suite.ledger(cookie).Invested, 0)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateLedgerRow() {
	cookie := suite.newSession()
	suite.submit(cookie, "/proposal", url.Values{"initiative": {test.ProposedInitiative}, "solution": {test.ProposedSolution}})

	recorder := suite.request(http.MethodPatch, "/v1/ledger/proposal/0", map[string]any{"sponsor": "20000"}, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.LedgerResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.assertAmount("20000", response.Data.Proposal[0].Subsidy)
	suite.assertAmount("0", response.Data.Proposal[0].Municipality)
	suite.assertAmount("20000", response.Data.Totals.Proposal.Sponsor)
}

func (suite *TestSuiteStandard) TestUpdateLedgerRowRejected() {
	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Unknown table", "/v1/ledger/other/0", map[string]any{"total": "1"}, http.StatusBadRequest},
		{"Invalid index", "/v1/ledger/invested/-1", map[string]any{"total": "1"}, http.StatusBadRequest},
		{"Missing row", "/v1/ledger/invested/1", map[string]any{"total": "1"}, http.StatusNotFound},
		{"Missing row without changes", "/v1/ledger/invested/1", map[string]any{}, http.StatusNotFound},
		{"Negative", "/v1/ledger/invested/0", map[string]any{"sponsor": "-5"}, http.StatusBadRequest},
		{"Empty body", "/v1/ledger/invested/0", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			cookie := suite.newSession()
			suite.submit(cookie, "/invested", url.Values{"initiative": {test.FixedInitiative}})

			recorder := suite.request(http.MethodPatch, tt.path, tt.body, cookie)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
			suite.assertAmount("1000", suite.ledger(cookie).Invested[0].Total)
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteLedgerRow() {
	cookie := suite.newSession()
	suite.submit(cookie, "/invested", url.Values{"initiative": {test.FixedInitiative}})

	recorder := suite.request(http.MethodDelete, "/v1/ledger/invested/0", "", cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Len(suite.ledger(cookie).Invested, 0)

	recorder = suite.request(http.MethodDelete, "/v1/ledger/invested/0", "", cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteLedger() {
	cookie := suite.newSession()
	suite.submit(cookie, "/invested", url.Values{"initiative": {test.FixedInitiative}})
	suite.submit(cookie, "/proposal", url.Values{"initiative": {test.SingleInitiative}})
	suite.submit(cookie, "/import/toggle", nil)

	recorder := suite.request(http.MethodDelete, "/v1/ledger", "", cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	l := suite.ledger(cookie)
	suite.Assert().Len(l.Invested, 0)
	suite.Assert().Len(l.Proposal, 0)

	session, err := suite.controller.Store.Session(suite.sessionID(cookie))
	suite.Require().Nil(err)
	suite.Assert().False(session.ImportOpen, "deleting the ledger closes the upload form")
}

func (suite *TestSuiteStandard) TestLedgerClosedDatabase() {
	cookie := suite.newSession()
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, "/v1/ledger", "", cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1/municipalities", "OPTIONS, GET"},
		{"/v1/municipalities/Curitiba", "OPTIONS, GET"},
		{"/v1/catalog/current", "OPTIONS, GET"},
		{"/v1/catalog/proposed", "OPTIONS, GET"},
		{"/v1/ledger", "OPTIONS, GET, DELETE"},
		{"/v1/ledger/invested", "OPTIONS, POST"},
		{"/v1/ledger/proposal", "OPTIONS, POST"},
		{"/v1/ledger/invested/0", "OPTIONS, PATCH, DELETE"},
	}

	for _, tt := range tests {
		suite.Run(tt.path, func() {
			recorder := suite.request(http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
			suite.Assert().Equal(tt.allow, recorder.Header().Get("allow"))
		})
	}
}
