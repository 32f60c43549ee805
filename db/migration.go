package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "ats-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.CompanyProfile{}); err != nil {
		return errors.Wrap(err, "migration of CompanyProfile failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "migration of Job failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "migration of Candidate failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "migration of Application failed")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationHistory{}); err != nil {
		return errors.Wrap(err, "migration of ApplicationHistory failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "migration of Interview failed")
	}
	if err := DB.AutoMigrate(&dbmodels.OfferLetter{}); err != nil {
		return errors.Wrap(err, "migration of OfferLetter failed")
	}
	if err := DB.AutoMigrate(&dbmodels.MessageTemplate{}); err != nil {
		return errors.Wrap(err, "migration of MessageTemplate failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "migration of Notification failed")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateSession{}); err != nil {
		return errors.Wrap(err, "migration of CandidateSession failed")
	}
	log.Info("migrations finished")
	return nil
}
