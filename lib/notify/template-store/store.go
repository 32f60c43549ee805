package templatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.MessageTemplate) error
	Update(id string, updMap map[string]interface{}) error
	GetByKey(key string) (rec *dbmodels.MessageTemplate, err error)
	List() (list []dbmodels.MessageTemplate, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.MessageTemplate) error {
	return i.db.Save(&rec).Error
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.MessageTemplate{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByKey(key string) (rec *dbmodels.MessageTemplate, err error) {
	err = i.db.
		Where("key = ?", key).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) List() (list []dbmodels.MessageTemplate, err error) {
	err = i.db.
		Model(&dbmodels.MessageTemplate{}).
		Order("key").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
