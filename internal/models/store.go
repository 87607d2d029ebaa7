package models

import (
	"fmt"
	"time"

	"github.com/acoes-municipais/simulador/internal/ledger"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CreateSession creates a new, empty session.
func (s *Store) CreateSession() (Session, error) {
	session := Session{
		LastSeen: time.Now().In(time.UTC),
	}

	err := s.DB.Create(&session).Error
	if err != nil {
		return Session{}, err
	}

	log.Debug().Str("session", session.ID.String()).Msg("session created")
	return session, nil
}

// Session returns the session with the given ID.
func (s *Store) Session(id uuid.UUID) (Session, error) {
	var session Session
	err := s.DB.Where("id = ?", id).First(&session).Error
	if err != nil {
		return Session{}, err
	}

	return session, nil
}

// update sets a single column of a session, failing if the session does not exist.
func (s *Store) update(id uuid.UUID, column string, value any) error {
	tx := s.DB.Model(&Session{}).Where("id = ?", id).Update(column, value)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w session matching your query", ErrResourceNotFound)
	}

	return nil
}

// Touch marks the session as used now.
func (s *Store) Touch(id uuid.UUID) error {
	return s.update(id, "last_seen", time.Now().In(time.UTC))
}

// SetMunicipality selects the municipality of the session.
func (s *Store) SetMunicipality(id uuid.UUID, municipality string) error {
	return s.update(id, "municipality", municipality)
}

// SetImportOpen shows or hides the upload form for saved sessions.
func (s *Store) SetImportOpen(id uuid.UUID, open bool) error {
	return s.update(id, "import_open", open)
}

// SetFlash stores a message for the next page view.
func (s *Store) SetFlash(id uuid.UUID, message string) error {
	return s.update(id, "flash", message)
}

// TakeFlash returns the stored message and clears it.
func (s *Store) TakeFlash(id uuid.UUID) (string, error) {
	session, err := s.Session(id)
	if err != nil {
		return "", err
	}

	if session.Flash == "" {
		return "", nil
	}

	return session.Flash, s.update(id, "flash", "")
}

// Ledger returns both tables of the session in row order.
func (s *Store) Ledger(id uuid.UUID) (ledger.Ledger, error) {
	if _, err := s.Session(id); err != nil {
		return ledger.Ledger{}, err
	}

	var invested []InvestedRecord
	err := s.DB.Where("session_id = ?", id).Order("position").Find(&invested).Error
	if err != nil {
		return ledger.Ledger{}, err
	}

	var proposal []ProposalRecord
	err = s.DB.Where("session_id = ?", id).Order("position").Find(&proposal).Error
	if err != nil {
		return ledger.Ledger{}, err
	}

	l := ledger.Ledger{
		Invested: make([]ledger.InvestedRow, 0, len(invested)),
		Proposal: make([]ledger.ProposalRow, 0, len(proposal)),
	}

	for _, r := range invested {
		l.Invested = append(l.Invested, r.Row())
	}

	for _, r := range proposal {
		l.Proposal = append(l.Proposal, r.Row())
	}

	return l, nil
}

// UpdateLedger loads the ledger of the session, applies fn to it and stores
// the result in one transaction. Nothing is stored if fn fails.
//
// The store uses a single connection, so concurrent updates of a session
// run one after the other and none of them is lost.
func (s *Store) UpdateLedger(id uuid.UUID, fn func(l *ledger.Ledger) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		store := &Store{DB: tx}

		l, err := store.Ledger(id)
		if err != nil {
			return err
		}

		err = fn(&l)
		if err != nil {
			return err
		}

		return store.SaveLedger(id, l)
	})
}

// SaveLedger replaces both tables of the session with the ones of l.
//
// The replacement happens in a single transaction, either all rows are
// replaced or none.
func (s *Store) SaveLedger(id uuid.UUID, l ledger.Ledger) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := (&Store{DB: tx}).Session(id); err != nil {
			return err
		}

		err := tx.Where("session_id = ?", id).Delete(&InvestedRecord{}).Error
		if err != nil {
			return err
		}

		err = tx.Where("session_id = ?", id).Delete(&ProposalRecord{}).Error
		if err != nil {
			return err
		}

		invested := make([]InvestedRecord, 0, len(l.Invested))
		for i, r := range l.Invested {
			invested = append(invested, InvestedRecord{
				SessionID:    id,
				Position:     i,
				Initiative:   r.Initiative,
				Sponsor:      r.Sponsor,
				Municipality: r.Municipality,
				Total:        r.Total,
			})
		}

		proposal := make([]ProposalRecord, 0, len(l.Proposal))
		for i, r := range l.Proposal {
			proposal = append(proposal, ProposalRecord{
				SessionID:    id,
				Position:     i,
				Initiative:   r.Initiative,
				Solution:     r.Solution,
				Subsidy:      r.Subsidy,
				Municipality: r.Municipality,
				Total:        r.Total,
			})
		}

		if len(invested) > 0 {
			if err := tx.Create(&invested).Error; err != nil {
				return err
			}
		}

		if len(proposal) > 0 {
			if err := tx.Create(&proposal).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// PurgeExpired deletes all sessions not seen since before and returns how
// many were deleted. Their ledger rows are deleted with them.
func (s *Store) PurgeExpired(before time.Time) (int64, error) {
	tx := s.DB.Where("last_seen < ?", before.In(time.UTC)).Delete(&Session{})
	if tx.Error != nil {
		return 0, tx.Error
	}

	if tx.RowsAffected > 0 {
		log.Debug().Int64("count", tx.RowsAffected).Msg("expired sessions purged")
	}

	return tx.RowsAffected, nil
}
