package portalapimodels

import (
	"github.com/pkg/errors"

	"ats-backend/models"
)

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l LoginData) Validate() error {
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type SessionResponse struct {
	SessionToken string `json:"session_token"`
}

type ProfileView struct {
	FullName string                 `json:"full_name"`
	Email    string                 `json:"email"`
	Phone    string                 `json:"phone"`
	Location string                 `json:"location"`
	Status   models.CandidateStatus `json:"status"`
}

type PortalApplicationView struct {
	ID            string                  `json:"id"`
	JobTitle      string                  `json:"job_title"`
	JobDepartment string                  `json:"job_department"`
	Stage         models.ApplicationStage `json:"stage"`
	AppliedAt     string                  `json:"applied_at"`
}
