package applicationhandler

import (
	"bytes"

	log "github.com/sirupsen/logrus"

	historystore "ats-backend/lib/application/history-store"
	applicationstore "ats-backend/lib/application/store"
	xlsexport "ats-backend/lib/export/xls"
	"ats-backend/lib/workflow"
	"ats-backend/models"
	applicationapimodels "ats-backend/models/api/application"
	dbmodels "ats-backend/models/db"

	"ats-backend/db"
)

type Provider interface {
	Create(data applicationapimodels.ApplicationData) (id string, err error)
	GetByID(id string) (item *applicationapimodels.ApplicationView, err error)
	List(filter dbmodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, err error)
	ListByCandidate(candidateID string) (list []applicationapimodels.ApplicationView, err error)
	ChangeStage(id string, stage models.ApplicationStage) error
	BulkChangeStage(data applicationapimodels.BulkStageData) (result workflow.BulkResult, err error)
	History(id string) (list []applicationapimodels.HistoryView, err error)
	Export(filter dbmodels.ApplicationFilter) (xlsFile *bytes.Buffer, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:        applicationstore.NewInstance(db.DB),
		historyStore: historystore.NewInstance(db.DB),
	}
}

type impl struct {
	store        applicationstore.Provider
	historyStore historystore.Provider
}

func (i impl) Create(data applicationapimodels.ApplicationData) (id string, err error) {
	return workflow.Instance.HandleApplicationCreated(data.CandidateID, data.JobID, data.Source)
}

func (i impl) GetByID(id string) (*applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("application_id", id).Error("failed to load application")
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := applicationapimodels.ApplicationView{
		ID:                rec.ID,
		JobID:             rec.JobID,
		CandidateID:       rec.CandidateID,
		Stage:             rec.Stage,
		CandidateResponse: rec.CandidateResponse,
		Source:            rec.Source,
		AppliedAt:         rec.AppliedAt.Format("2006-01-02 15:04:05"),
	}
	if rec.Job != nil {
		view.JobTitle = rec.Job.Title
		view.JobDepartment = rec.Job.Department
	}
	if rec.Candidate != nil {
		view.CandidateName = rec.Candidate.GetFullName()
		view.CandidateEmail = rec.Candidate.Email
	}
	return &view, nil
}

func (i impl) List(filter dbmodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, err error) {
	recs, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("failed to list applications")
		return nil, err
	}
	list = make([]applicationapimodels.ApplicationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, applicationapimodels.Convert(rec))
	}
	return list, nil
}

func (i impl) ListByCandidate(candidateID string) (list []applicationapimodels.ApplicationView, err error) {
	recs, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		log.WithError(err).WithField("candidate_id", candidateID).Error("failed to list candidate applications")
		return nil, err
	}
	list = make([]applicationapimodels.ApplicationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, applicationapimodels.Convert(rec))
	}
	return list, nil
}

func (i impl) ChangeStage(id string, stage models.ApplicationStage) error {
	return workflow.Instance.ChangeStage(id, stage)
}

func (i impl) BulkChangeStage(data applicationapimodels.BulkStageData) (workflow.BulkResult, error) {
	return workflow.Instance.BulkChangeStage(data.IDs, data.Stage, data.Force)
}

func (i impl) History(id string) (list []applicationapimodels.HistoryView, err error) {
	recs, err := i.historyStore.ListByApplication(id)
	if err != nil {
		log.WithError(err).WithField("application_id", id).Error("failed to load application history")
		return nil, err
	}
	list = make([]applicationapimodels.HistoryView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, applicationapimodels.ConvertHistory(rec))
	}
	return list, nil
}

func (i impl) Export(filter dbmodels.ApplicationFilter) (*bytes.Buffer, error) {
	recs, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("failed to list applications for export")
		return nil, err
	}
	return xlsexport.Instance.ExportApplicationList(recs)
}
