package models

import (
	"time"

	"github.com/acoes-municipais/simulador/internal/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Session is the state of one browser session.
type Session struct {
	DefaultModel
	Municipality string           `json:"municipality" example:"Curitiba"` // Selected municipality, empty if none is selected
	ImportOpen   bool             `json:"importOpen" example:"false"`      // Is the saved session upload form shown?
	Flash        string           `json:"-"`                               // Message shown once on the next page view
	LastSeen     time.Time        `json:"lastSeen" gorm:"index" example:"2022-04-17T20:14:01.048145Z"`
	Invested     []InvestedRecord `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Proposal     []ProposalRecord `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (s *Session) AfterFind(tx *gorm.DB) (err error) {
	err = s.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	s.LastSeen = s.LastSeen.In(time.UTC)
	return nil
}

// InvestedRecord stores one row of the invested table.
type InvestedRecord struct {
	DefaultModel
	SessionID    uuid.UUID `gorm:"type:uuid;index"`
	Position     int // Position of the row in the table
	Initiative   string
	Sponsor      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Municipality decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Total        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (r InvestedRecord) Row() ledger.InvestedRow {
	return ledger.InvestedRow{
		Initiative:   r.Initiative,
		Sponsor:      r.Sponsor,
		Municipality: r.Municipality,
		Total:        r.Total,
	}
}

// ProposalRecord stores one row of the proposal table.
type ProposalRecord struct {
	DefaultModel
	SessionID    uuid.UUID `gorm:"type:uuid;index"`
	Position     int // Position of the row in the table
	Initiative   string
	Solution     string
	Subsidy      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Municipality decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Total        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (r ProposalRecord) Row() ledger.ProposalRow {
	return ledger.ProposalRow{
		Initiative:   r.Initiative,
		Solution:     r.Solution,
		Subsidy:      r.Subsidy,
		Municipality: r.Municipality,
		Total:        r.Total,
	}
}
