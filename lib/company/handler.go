package companyhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	companystore "ats-backend/lib/company/store"
	dbmodels "ats-backend/models/db"

	"ats-backend/db"
)

type ProfileData struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Contact   string `json:"contact"`
	Signatory string `json:"signatory"`
	PortalURL string `json:"portal_url"`
}

func (p ProfileData) Validate() error {
	if p.Name == "" {
		return errors.New("company name is required")
	}
	return nil
}

type Provider interface {
	Get() (rec *dbmodels.CompanyProfile, err error)
	Save(data ProfileData) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: companystore.NewInstance(db.DB),
	}
}

type impl struct {
	store companystore.Provider
}

func (i impl) Get() (*dbmodels.CompanyProfile, error) {
	return i.store.Get()
}

func (i impl) Save(data ProfileData) error {
	rec, err := i.store.Get()
	if err != nil {
		log.WithError(err).Error("failed to load company profile")
		return err
	}
	if rec == nil {
		rec = &dbmodels.CompanyProfile{}
	}
	rec.Name = data.Name
	rec.Address = data.Address
	rec.Contact = data.Contact
	rec.Signatory = data.Signatory
	rec.PortalURL = data.PortalURL
	return i.store.Save(*rec)
}
