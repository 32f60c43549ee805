package candidatehandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	candidatestore "ats-backend/lib/candidate/store"
	"ats-backend/lib/portal"
	"ats-backend/models"
	candidateapimodels "ats-backend/models/api/candidate"
	dbmodels "ats-backend/models/db"

	"ats-backend/db"
)

type Provider interface {
	Create(data candidateapimodels.CandidateData) (id string, err error)
	Update(id string, data candidateapimodels.CandidateData) error
	GetByID(id string) (item *candidateapimodels.CandidateView, err error)
	List(search string) (list []candidateapimodels.CandidateView, err error)
	ResendPortalInvitation(id string) (result portal.ProvisionResult, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	store candidatestore.Provider
}

func (i impl) Create(data candidateapimodels.CandidateData) (id string, err error) {
	existing, err := i.store.GetByEmail(data.Email)
	if err != nil {
		log.WithError(err).Error("failed to check for duplicate candidate")
		return "", err
	}
	if existing != nil {
		return "", errors.Errorf("candidate with email %v already exists", data.Email)
	}
	rec := dbmodels.Candidate{
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		Phone:           data.Phone,
		Location:        data.Location,
		CurrentCompany:  data.CurrentCompany,
		CurrentCTC:      data.CurrentCTC,
		ExpectedCTC:     data.ExpectedCTC,
		ExperienceYears: data.ExperienceYears,
		Status:          models.CandidateStatusAvailable,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to create candidate")
		return "", err
	}
	return id, nil
}

func (i impl) Update(id string, data candidateapimodels.CandidateData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("candidate not found")
	}
	if data.Email != rec.Email {
		dup, err := i.store.GetByEmail(data.Email)
		if err != nil {
			return err
		}
		if dup != nil {
			return errors.Errorf("candidate with email %v already exists", data.Email)
		}
	}
	updMap := map[string]interface{}{
		"first_name":       data.FirstName,
		"last_name":        data.LastName,
		"email":            data.Email,
		"phone":            data.Phone,
		"location":         data.Location,
		"current_company":  data.CurrentCompany,
		"current_ctc":      data.CurrentCTC,
		"expected_ctc":     data.ExpectedCTC,
		"experience_years": data.ExperienceYears,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		log.WithError(err).WithField("candidate_id", id).Error("failed to update candidate")
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("candidate_id", id).Error("failed to load candidate")
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	item := candidateapimodels.Convert(*rec)
	return &item, nil
}

func (i impl) List(search string) (list []candidateapimodels.CandidateView, err error) {
	recs, err := i.store.List(search)
	if err != nil {
		log.WithError(err).Error("failed to list candidates")
		return nil, err
	}
	list = make([]candidateapimodels.CandidateView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, candidateapimodels.Convert(rec))
	}
	return list, nil
}

func (i impl) ResendPortalInvitation(id string) (portal.ProvisionResult, error) {
	return portal.Instance.ResendInvitation(id)
}
