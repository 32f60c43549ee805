package dbmodels

import (
	"ats-backend/models"

	"github.com/lib/pq"
)

type Job struct {
	BaseModel
	Title       string `gorm:"type:varchar(255)"`
	Department  string `gorm:"type:varchar(255)"`
	Location    string `gorm:"type:varchar(255)"`
	Description string
	Skills      pq.StringArray `gorm:"type:text[]"`
	SalaryMin   int
	SalaryMax   int
	Openings    int
	Status      models.JobStatus `gorm:"type:varchar(50);index"`
}

// AcceptsApplications reports whether new applications may reference the job.
func (j Job) AcceptsApplications() bool {
	return j.Status == models.JobStatusActive
}

type JobFilter struct {
	Status models.JobStatus `json:"status"`
	Search string           `json:"search"`
}
