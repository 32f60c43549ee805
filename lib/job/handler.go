package jobhandler

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	jobstore "ats-backend/lib/job/store"
	"ats-backend/models"
	jobapimodels "ats-backend/models/api/job"
	dbmodels "ats-backend/models/db"

	"ats-backend/db"
)

type Provider interface {
	Create(data jobapimodels.JobData) (id string, err error)
	Update(id string, data jobapimodels.JobData) error
	GetByID(id string) (item *jobapimodels.JobView, err error)
	List(filter dbmodels.JobFilter) (list []jobapimodels.JobView, err error)
	SetStatus(id string, status models.JobStatus) error
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(data jobapimodels.JobData) (id string, err error) {
	status := data.Status
	if status == "" {
		status = models.JobStatusDraft
	}
	rec := dbmodels.Job{
		Title:       data.Title,
		Department:  data.Department,
		Location:    data.Location,
		Description: data.Description,
		Skills:      pq.StringArray(data.Skills),
		SalaryMin:   data.SalaryMin,
		SalaryMax:   data.SalaryMax,
		Openings:    data.Openings,
		Status:      status,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to create job")
		return "", err
	}
	return id, nil
}

func (i impl) Update(id string, data jobapimodels.JobData) error {
	updMap := map[string]interface{}{
		"title":       data.Title,
		"department":  data.Department,
		"location":    data.Location,
		"description": data.Description,
		"skills":      pq.StringArray(data.Skills),
		"salary_min":  data.SalaryMin,
		"salary_max":  data.SalaryMax,
		"openings":    data.Openings,
	}
	if data.Status != "" {
		updMap["status"] = data.Status
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		log.WithError(err).WithField("job_id", id).Error("failed to update job")
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("job_id", id).Error("failed to load job")
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	item := jobapimodels.Convert(*rec)
	return &item, nil
}

func (i impl) List(filter dbmodels.JobFilter) (list []jobapimodels.JobView, err error) {
	recs, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("failed to list jobs")
		return nil, err
	}
	list = make([]jobapimodels.JobView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, jobapimodels.Convert(rec))
	}
	return list, nil
}

func (i impl) SetStatus(id string, status models.JobStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("job not found")
	}
	return i.store.Update(id, map[string]interface{}{"status": status})
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("job not found")
	}
	if rec.Status == models.JobStatusActive {
		return errors.New("active job cannot be deleted, close it first")
	}
	return i.store.Delete(id)
}
