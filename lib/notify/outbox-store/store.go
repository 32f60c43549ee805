package outboxstore

import (
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	ListPending(limit int) (list []dbmodels.Notification, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ListPending(limit int) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Model(&dbmodels.Notification{}).
		Where("status = ?", dbmodels.NotificationStatusPending).
		Order("created_at").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
