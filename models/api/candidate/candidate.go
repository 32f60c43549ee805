package candidateapimodels

import (
	"strings"

	"github.com/pkg/errors"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type CandidateData struct {
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Location        string  `json:"location"`
	CurrentCompany  string  `json:"current_company"`
	CurrentCTC      int     `json:"current_ctc"`
	ExpectedCTC     int     `json:"expected_ctc"`
	ExperienceYears float64 `json:"experience_years"`
}

func (c CandidateData) Validate() error {
	if c.FirstName == "" {
		return errors.New("first name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(c.Email, "@") {
		return errors.New("email address is malformed")
	}
	if c.ExperienceYears < 0 {
		return errors.New("experience cannot be negative")
	}
	return nil
}

type CandidateView struct {
	ID              string                 `json:"id"`
	FirstName       string                 `json:"first_name"`
	LastName        string                 `json:"last_name"`
	FullName        string                 `json:"full_name"`
	Email           string                 `json:"email"`
	Phone           string                 `json:"phone"`
	Location        string                 `json:"location"`
	CurrentCompany  string                 `json:"current_company"`
	CurrentCTC      int                    `json:"current_ctc"`
	ExpectedCTC     int                    `json:"expected_ctc"`
	ExperienceYears float64                `json:"experience_years"`
	Status          models.CandidateStatus `json:"status"`
	IsPortalActive  bool                   `json:"is_portal_active"`
	CreatedAt       string                 `json:"created_at"`
}

func Convert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		ID:              rec.ID,
		FirstName:       rec.FirstName,
		LastName:        rec.LastName,
		FullName:        rec.GetFullName(),
		Email:           rec.Email,
		Phone:           rec.Phone,
		Location:        rec.Location,
		CurrentCompany:  rec.CurrentCompany,
		CurrentCTC:      rec.CurrentCTC,
		ExpectedCTC:     rec.ExpectedCTC,
		ExperienceYears: rec.ExperienceYears,
		Status:          rec.Status,
		IsPortalActive:  rec.IsPortalActive,
		CreatedAt:       rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
