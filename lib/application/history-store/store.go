package historystore

import (
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.ApplicationHistory) error
	ListByApplication(applicationID string) (list []dbmodels.ApplicationHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.ApplicationHistory) error {
	return i.db.Save(&rec).Error
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.ApplicationHistory, err error) {
	list = []dbmodels.ApplicationHistory{}
	err = i.db.
		Model(&dbmodels.ApplicationHistory{}).
		Where("application_id = ?", applicationID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
