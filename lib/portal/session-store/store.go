package sessionstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.CandidateSession) (id string, err error)
	GetByToken(token string) (rec *dbmodels.CandidateSession, err error)
	DeleteExpired(now time.Time) (deleted int64, err error)
	DeleteByCandidate(candidateID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateSession) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByToken(token string) (*dbmodels.CandidateSession, error) {
	rec := dbmodels.CandidateSession{}
	err := i.db.
		Where("token = ?", token).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) DeleteExpired(now time.Time) (deleted int64, err error) {
	tx := i.db.
		Where("expires_at < ?", now).
		Delete(&dbmodels.CandidateSession{})
	return tx.RowsAffected, tx.Error
}

func (i impl) DeleteByCandidate(candidateID string) error {
	return i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.CandidateSession{}).
		Error
}
