package workflowstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	// ApplyStageEffect commits the application update, the candidate status
	// projection and the history record as one transaction, so the stage and
	// the candidate status cannot diverge on partial failure.
	ApplyStageEffect(applicationID string, appUpd map[string]interface{}, candidateID string, candUpd map[string]interface{}, history *dbmodels.ApplicationHistory) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ApplyStageEffect(applicationID string, appUpd map[string]interface{}, candidateID string, candUpd map[string]interface{}, history *dbmodels.ApplicationHistory) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if len(appUpd) != 0 {
			res := tx.
				Model(&dbmodels.Application{}).
				Where("id = ?", applicationID).
				Updates(appUpd)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errors.New("application not found")
			}
		}
		if candidateID != "" && len(candUpd) != 0 {
			res := tx.
				Model(&dbmodels.Candidate{}).
				Where("id = ?", candidateID).
				Updates(candUpd)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errors.New("candidate not found")
			}
		}
		if history != nil {
			if err := tx.Save(history).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
