package controllers_test

import (
	"net/http"

	"github.com/acoes-municipais/simulador/test"
)

func (suite *TestSuiteStandard) TestHealthzOptions() {
	recorder := suite.request(http.MethodOptions, "/healthz", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestHealthzSuccess() {
	recorder := suite.request(http.MethodGet, "/healthz", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestHealthzFail() {
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, "/healthz", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	suite.Assert().Equal("there is a problem with the database connection", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestSessionClosedDatabase() {
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, "/", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
