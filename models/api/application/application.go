package applicationapimodels

import (
	"github.com/pkg/errors"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type ApplicationData struct {
	JobID       string `json:"job_id"`
	CandidateID string `json:"candidate_id"`
	Source      string `json:"source"`
}

func (a ApplicationData) Validate() error {
	if a.JobID == "" {
		return errors.New("job id is required")
	}
	if a.CandidateID == "" {
		return errors.New("candidate id is required")
	}
	return nil
}

type StageChangeData struct {
	Stage models.ApplicationStage `json:"stage"`
}

func (s StageChangeData) Validate() error {
	return s.Stage.Validate()
}

type BulkStageData struct {
	IDs   []string                `json:"ids"`
	Stage models.ApplicationStage `json:"stage"`
	Force bool                    `json:"force"`
}

func (b BulkStageData) Validate() error {
	if len(b.IDs) == 0 {
		return errors.New("no application ids supplied")
	}
	return b.Stage.Validate()
}

type ResponseData struct {
	Response models.CandidateResponse `json:"response"`
	Feedback string                   `json:"feedback"`
}

func (r ResponseData) Validate() error {
	return r.Response.Validate()
}

type ApplicationView struct {
	ID                string                   `json:"id"`
	JobID             string                   `json:"job_id"`
	JobTitle          string                   `json:"job_title"`
	JobDepartment     string                   `json:"job_department"`
	CandidateID       string                   `json:"candidate_id"`
	CandidateName     string                   `json:"candidate_name"`
	CandidateEmail    string                   `json:"candidate_email"`
	Stage             models.ApplicationStage  `json:"stage"`
	CandidateResponse models.CandidateResponse `json:"candidate_response"`
	Source            string                   `json:"source"`
	AppliedAt         string                   `json:"applied_at"`
}

func Convert(rec dbmodels.ApplicationWithJob) ApplicationView {
	return ApplicationView{
		ID:                rec.ID,
		JobID:             rec.JobID,
		JobTitle:          rec.JobTitle,
		JobDepartment:     rec.JobDepartment,
		CandidateID:       rec.CandidateID,
		CandidateName:     rec.CandidateName,
		CandidateEmail:    rec.CandidateEmail,
		Stage:             rec.Stage,
		CandidateResponse: rec.CandidateResponse,
		Source:            rec.Source,
		AppliedAt:         rec.AppliedAt.Format("2006-01-02 15:04:05"),
	}
}

type HistoryView struct {
	FromStage   models.ApplicationStage `json:"from_stage"`
	ToStage     models.ApplicationStage `json:"to_stage"`
	Trigger     string                  `json:"trigger"`
	Description string                  `json:"description"`
	CreatedAt   string                  `json:"created_at"`
}

func ConvertHistory(rec dbmodels.ApplicationHistory) HistoryView {
	return HistoryView{
		FromStage:   rec.FromStage,
		ToStage:     rec.ToStage,
		Trigger:     rec.Trigger,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
