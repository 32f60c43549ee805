package jobapimodels

import (
	"github.com/pkg/errors"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type JobData struct {
	Title       string           `json:"title"`
	Department  string           `json:"department"`
	Location    string           `json:"location"`
	Description string           `json:"description"`
	Skills      []string         `json:"skills"`
	SalaryMin   int              `json:"salary_min"`
	SalaryMax   int              `json:"salary_max"`
	Openings    int              `json:"openings"`
	Status      models.JobStatus `json:"status"`
}

func (j JobData) Validate() error {
	if j.Title == "" {
		return errors.New("job title is required")
	}
	if j.Department == "" {
		return errors.New("department is required")
	}
	if j.SalaryMin < 0 || j.SalaryMax < 0 {
		return errors.New("salary bounds cannot be negative")
	}
	if j.SalaryMax != 0 && j.SalaryMin > j.SalaryMax {
		return errors.New("salary lower bound exceeds the upper bound")
	}
	if j.Openings < 0 {
		return errors.New("openings cannot be negative")
	}
	if j.Status != "" {
		if err := j.Status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type JobView struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Department  string           `json:"department"`
	Location    string           `json:"location"`
	Description string           `json:"description"`
	Skills      []string         `json:"skills"`
	SalaryMin   int              `json:"salary_min"`
	SalaryMax   int              `json:"salary_max"`
	Openings    int              `json:"openings"`
	Status      models.JobStatus `json:"status"`
	CreatedAt   string           `json:"created_at"`
}

func Convert(rec dbmodels.Job) JobView {
	return JobView{
		ID:          rec.ID,
		Title:       rec.Title,
		Department:  rec.Department,
		Location:    rec.Location,
		Description: rec.Description,
		Skills:      rec.Skills,
		SalaryMin:   rec.SalaryMin,
		SalaryMax:   rec.SalaryMax,
		Openings:    rec.Openings,
		Status:      rec.Status,
		CreatedAt:   rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
