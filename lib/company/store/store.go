package companystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Get() (rec *dbmodels.CompanyProfile, err error)
	Save(rec dbmodels.CompanyProfile) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Get() (*dbmodels.CompanyProfile, error) {
	rec := dbmodels.CompanyProfile{}
	err := i.db.
		Order("created_at").
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

func (i impl) Save(rec dbmodels.CompanyProfile) error {
	return i.db.Save(&rec).Error
}
