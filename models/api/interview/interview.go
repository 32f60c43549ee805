package interviewapimodels

import (
	"time"

	"github.com/pkg/errors"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type ScheduleData struct {
	ApplicationID string                `json:"application_id"`
	Round         models.InterviewRound `json:"round"`
	Mode          models.InterviewMode  `json:"mode"`
	ScheduledDate time.Time             `json:"scheduled_date"`
	DurationMin   int                   `json:"duration_min"`

	InterviewerName  string `json:"interviewer_name"`
	InterviewerEmail string `json:"interviewer_email"`
	// legacy "Name (email)" form, parsed when the structured fields are empty
	Interviewer string `json:"interviewer"`
}

func (s ScheduleData) Validate() error {
	if s.ApplicationID == "" {
		return errors.New("application id is required")
	}
	if err := s.Round.Validate(); err != nil {
		return err
	}
	if err := s.Mode.Validate(); err != nil {
		return err
	}
	if s.ScheduledDate.IsZero() {
		return errors.New("interview date is required")
	}
	if s.InterviewerName == "" && s.Interviewer == "" {
		return errors.New("interviewer is required")
	}
	if s.DurationMin < 0 {
		return errors.New("duration cannot be negative")
	}
	return nil
}

type RescheduleData struct {
	ScheduledDate time.Time            `json:"scheduled_date"`
	Mode          models.InterviewMode `json:"mode"`
	DurationMin   int                  `json:"duration_min"`
}

func (r RescheduleData) Validate() error {
	if r.ScheduledDate.IsZero() {
		return errors.New("interview date is required")
	}
	if r.Mode != "" {
		if err := r.Mode.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type FeedbackData struct {
	Recommendation string `json:"recommendation"`
	Notes          string `json:"notes"`
}

func (f FeedbackData) Validate() error {
	if f.Recommendation == "" {
		return errors.New("recommendation is required")
	}
	return nil
}

type InterviewView struct {
	ID               string                 `json:"id"`
	ApplicationID    string                 `json:"application_id"`
	Round            models.InterviewRound  `json:"round"`
	Mode             models.InterviewMode   `json:"mode"`
	ScheduledDate    string                 `json:"scheduled_date"`
	DurationMin      int                    `json:"duration_min"`
	InterviewerName  string                 `json:"interviewer_name"`
	InterviewerEmail string                 `json:"interviewer_email"`
	Status           models.InterviewStatus `json:"status"`
	FeedbackResult   models.FeedbackResult  `json:"feedback_result"`
	FeedbackNotes    string                 `json:"feedback_notes"`
	MeetingLink      string                 `json:"meeting_link"`
}

func Convert(rec dbmodels.Interview) InterviewView {
	return InterviewView{
		ID:               rec.ID,
		ApplicationID:    rec.ApplicationID,
		Round:            rec.InterviewRound,
		Mode:             rec.Mode,
		ScheduledDate:    rec.ScheduledDate.Format("2006-01-02 15:04:05"),
		DurationMin:      rec.DurationMin,
		InterviewerName:  rec.InterviewerName,
		InterviewerEmail: rec.InterviewerEmail,
		Status:           rec.Status,
		FeedbackResult:   rec.FeedbackResult,
		FeedbackNotes:    rec.FeedbackNotes,
		MeetingLink:      rec.MeetingLink,
	}
}
