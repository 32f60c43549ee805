package dbmodels

import (
	"time"

	"ats-backend/models"
)

type Application struct {
	BaseModel
	JobID       string     `gorm:"type:varchar(36);index;uniqueIndex:idx_app_job_candidate"`
	Job         *Job       `gorm:"foreignKey:JobID"`
	CandidateID string     `gorm:"type:varchar(36);index;uniqueIndex:idx_app_job_candidate"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`

	Stage models.ApplicationStage `gorm:"type:varchar(50);index"`

	// email-link response correlation
	CandidateResponse models.CandidateResponse `gorm:"type:varchar(50)"`
	ResponseToken     string                   `gorm:"type:varchar(36);index"`
	ResponseFeedback  string
	ResponseAt        *time.Time

	AppliedAt time.Time
	Source    string `gorm:"type:varchar(100)"`
}

// HasResponded reports whether the email-link response was already recorded;
// a second click on the same link must not mutate the application again.
func (a Application) HasResponded() bool {
	return a.CandidateResponse != "" && a.CandidateResponse != models.ResponsePending
}

type ApplicationWithJob struct {
	Application
	JobTitle       string
	JobDepartment  string
	CandidateName  string
	CandidateEmail string
}

type ApplicationFilter struct {
	JobID  string                  `json:"job_id"`
	Stage  models.ApplicationStage `json:"stage"`
	Search string                  `json:"search"`
}
