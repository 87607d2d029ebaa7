package models_test

import (
	"sync"
	"time"

	"github.com/acoes-municipais/simulador/internal/ledger"
	"github.com/acoes-municipais/simulador/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createSession() models.Session {
	session, err := suite.store.CreateSession()
	suite.Require().Nil(err)
	return session
}

func testLedger() ledger.Ledger {
	return ledger.Ledger{
		Invested: []ledger.InvestedRow{
			{Initiative: "Sala do Empreendedor", Sponsor: decimal.NewFromInt(1000), Municipality: decimal.Zero, Total: decimal.NewFromInt(1000)},
			{Initiative: "Consultoria Tecnológica", Sponsor: decimal.NewFromInt(200), Municipality: decimal.NewFromFloat(800.5), Total: decimal.NewFromFloat(1000.5)},
		},
		Proposal: []ledger.ProposalRow{
			{Initiative: "Compras Governamentais", Solution: "Consultoria", Subsidy: decimal.NewFromInt(14000), Municipality: decimal.NewFromInt(6000), Total: decimal.NewFromInt(20000)},
		},
	}
}

func (suite *TestSuiteStandard) assertLedgerEqual(expected, actual ledger.Ledger) {
	suite.Require().Len(actual.Invested, len(expected.Invested))
	suite.Require().Len(actual.Proposal, len(expected.Proposal))

	for i, e := range expected.Invested {
		a := actual.Invested[i]
		suite.Assert().Equal(e.Initiative, a.Initiative)
		suite.Assert().True(e.Sponsor.Equal(a.Sponsor), "sponsor of row %d: %s", i, a.Sponsor)
		suite.Assert().True(e.Municipality.Equal(a.Municipality), "municipality of row %d: %s", i, a.Municipality)
		suite.Assert().True(e.Total.Equal(a.Total), "total of row %d: %s", i, a.Total)
	}

	for i, e := range expected.Proposal {
		a := actual.Proposal[i]
		suite.Assert().Equal(e.Initiative, a.Initiative)
		suite.Assert().Equal(e.Solution, a.Solution)
		suite.Assert().True(e.Subsidy.Equal(a.Subsidy), "subsidy of row %d: %s", i, a.Subsidy)
		suite.Assert().True(e.Municipality.Equal(a.Municipality), "municipality of row %d: %s", i, a.Municipality)
		suite.Assert().True(e.Total.Equal(a.Total), "total of row %d: %s", i, a.Total)
	}
}

func (suite *TestSuiteStandard) TestCreateSession() {
	session := suite.createSession()
	suite.Assert().NotEqual(uuid.Nil, session.ID)
	suite.Assert().Empty(session.Municipality)
	suite.Assert().False(session.ImportOpen)
	suite.Assert().WithinDuration(time.Now(), session.LastSeen, time.Minute)

	found, err := suite.store.Session(session.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(session.ID, found.ID)
	suite.Assert().Equal(time.UTC, found.LastSeen.Location())
}

func (suite *TestSuiteStandard) TestSessionNotFound() {
	_, err := suite.store.Session(uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "there is no session matching your query")
}

func (suite *TestSuiteStandard) TestSetters() {
	session := suite.createSession()

	suite.Require().Nil(suite.store.SetMunicipality(session.ID, "Curitiba"))
	suite.Require().Nil(suite.store.SetImportOpen(session.ID, true))

	found, err := suite.store.Session(session.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Curitiba", found.Municipality)
	suite.Assert().True(found.ImportOpen)

	suite.Require().Nil(suite.store.SetImportOpen(session.ID, false))
	found, err = suite.store.Session(session.ID)
	suite.Require().Nil(err)
	suite.Assert().False(found.ImportOpen)
}

func (suite *TestSuiteStandard) TestSettersNotFound() {
	id := uuid.New()
	suite.Assert().ErrorIs(suite.store.SetMunicipality(id, "Curitiba"), models.ErrResourceNotFound)
	suite.Assert().ErrorIs(suite.store.SetImportOpen(id, true), models.ErrResourceNotFound)
	suite.Assert().ErrorIs(suite.store.Touch(id), models.ErrResourceNotFound)
	suite.Assert().ErrorIs(suite.store.SetFlash(id, "message"), models.ErrResourceNotFound)

	_, err := suite.store.TakeFlash(id)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestFlash() {
	session := suite.createSession()

	flash, err := suite.store.TakeFlash(session.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("", flash)

	suite.Require().Nil(suite.store.SetFlash(session.ID, "Arquivo carregado"))

	flash, err = suite.store.TakeFlash(session.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Arquivo carregado", flash)

	flash, err = suite.store.TakeFlash(session.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("", flash, "a message is only shown once")
}

func (suite *TestSuiteStandard) TestLedgerEmpty() {
	session := suite.createSession()

	l, err := suite.store.Ledger(session.ID)
	suite.Require().Nil(err)
	suite.Assert().NotNil(l.Invested)
	suite.Assert().NotNil(l.Proposal)
	suite.Assert().Empty(l.Invested)
	suite.Assert().Empty(l.Proposal)
}

func (suite *TestSuiteStandard) TestSaveLedger() {
	session := suite.createSession()
	expected := testLedger()

	suite.Require().Nil(suite.store.SaveLedger(session.ID, expected))

	l, err := suite.store.Ledger(session.ID)
	suite.Require().Nil(err)
	suite.assertLedgerEqual(expected, l)

	// Saving again replaces all rows
	expected.Invested = expected.Invested[1:]
	expected.Proposal = append(expected.Proposal, ledger.ProposalRow{})
	suite.Require().Nil(suite.store.SaveLedger(session.ID, expected))

	l, err = suite.store.Ledger(session.ID)
	suite.Require().Nil(err)
	suite.assertLedgerEqual(expected, l)
}

func (suite *TestSuiteStandard) TestSaveLedgerSessionsAreSeparate() {
	first := suite.createSession()
	second := suite.createSession()

	suite.Require().Nil(suite.store.SaveLedger(first.ID, testLedger()))

	l, err := suite.store.Ledger(second.ID)
	suite.Require().Nil(err)
	suite.Assert().Empty(l.Invested)
	suite.Assert().Empty(l.Proposal)
}

func (suite *TestSuiteStandard) TestSaveLedgerNotFound() {
	err := suite.store.SaveLedger(uuid.New(), testLedger())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.store.Ledger(uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateLedger() {
	session := suite.createSession()
	suite.Require().Nil(suite.store.SaveLedger(session.ID, testLedger()))

	err := suite.store.UpdateLedger(session.ID, func(l *ledger.Ledger) error {
		return l.Delete(ledger.TableInvested, 0)
	})
	suite.Require().Nil(err)

	l, err := suite.store.Ledger(session.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(l.Invested, 1)
	suite.Assert().Equal("Consultoria Tecnológica", l.Invested[0].Initiative)
}

func (suite *TestSuiteStandard) TestUpdateLedgerFails() {
	session := suite.createSession()
	suite.Require().Nil(suite.store.SaveLedger(session.ID, testLedger()))

	err := suite.store.UpdateLedger(session.ID, func(l *ledger.Ledger) error {
		l.Reset()
		return l.Delete(ledger.TableProposal, 5)
	})
	suite.Assert().ErrorIs(err, ledger.ErrRowNotFound)

	l, err := suite.store.Ledger(session.ID)
	suite.Require().Nil(err)
	suite.assertLedgerEqual(testLedger(), l)

	err = suite.store.UpdateLedger(uuid.New(), func(l *ledger.Ledger) error { return nil })
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateLedgerConcurrent() {
	session := suite.createSession()

	const updates = 10

	var wg sync.WaitGroup
	errs := make(chan error, updates)
	for i := 0; i < updates; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- suite.store.UpdateLedger(session.ID, func(l *ledger.Ledger) error {
				return l.InsertBlank(ledger.TableProposal)
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		suite.Assert().Nil(err)
	}

	l, err := suite.store.Ledger(session.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(l.Proposal, updates, "no concurrent update may be lost")
}

func (suite *TestSuiteStandard) TestPurgeExpired() {
	old := suite.createSession()
	suite.Require().Nil(suite.store.SaveLedger(old.ID, testLedger()))

	// Push the last use of the old session into the past
	suite.Require().Nil(suite.store.DB.Model(&models.Session{}).Where("id = ?", old.ID).Update("last_seen", time.Now().Add(-24*time.Hour).In(time.UTC)).Error)

	current := suite.createSession()

	count, err := suite.store.PurgeExpired(time.Now().Add(-12 * time.Hour))
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), count)

	_, err = suite.store.Session(old.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.store.Session(current.ID)
	suite.Assert().Nil(err)

	var records int64
	suite.Require().Nil(suite.store.DB.Model(&models.InvestedRecord{}).Where("session_id = ?", old.ID).Count(&records).Error)
	suite.Assert().Zero(records, "ledger rows of purged sessions must be deleted")
}

func (suite *TestSuiteStandard) TestTouch() {
	session := suite.createSession()
	suite.Require().Nil(suite.store.DB.Model(&models.Session{}).Where("id = ?", session.ID).Update("last_seen", time.Now().Add(-24*time.Hour).In(time.UTC)).Error)

	suite.Require().Nil(suite.store.Touch(session.ID))

	count, err := suite.store.PurgeExpired(time.Now().Add(-time.Hour))
	suite.Require().Nil(err)
	suite.Assert().Zero(count)
}

func (suite *TestSuiteStandard) TestClosedDatabase() {
	session := suite.createSession()
	suite.CloseDB()

	_, err := suite.store.Session(session.ID)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = suite.store.CreateSession()
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	suite.Assert().NotNil(suite.store.Ping())
}
