package dbmodels

import (
	"time"

	"ats-backend/models"
)

type Interview struct {
	BaseModel
	ApplicationID string       `gorm:"type:varchar(36);index"`
	Application   *Application `gorm:"foreignKey:ApplicationID"`

	InterviewRound models.InterviewRound `gorm:"type:varchar(20)"`
	Mode           models.InterviewMode  `gorm:"type:varchar(20)"`
	ScheduledDate  time.Time
	DurationMin    int

	// interviewer is stored structured; the legacy "Name (email)" string is
	// parsed at the API boundary only
	InterviewerName  string `gorm:"type:varchar(255)"`
	InterviewerEmail string `gorm:"type:varchar(255)"`
	ScheduledBy      string `gorm:"type:varchar(255)"`

	Status         models.InterviewStatus `gorm:"type:varchar(50);index"`
	FeedbackResult models.FeedbackResult  `gorm:"type:varchar(50)"`
	FeedbackNotes  string

	MeetingID   string `gorm:"type:varchar(255)"`
	MeetingLink string
}

func (i Interview) IsPending() bool {
	return i.Status == models.InterviewStatusScheduled
}
