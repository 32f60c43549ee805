package dbmodels

import "time"

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// Notification is an outbox row. The orchestrator only enqueues; the notify
// worker owns delivery, so a slow or failing SMTP peer never stalls a
// request or rolls back a stage change.
type Notification struct {
	BaseModel
	TemplateKey   string `gorm:"type:varchar(100);index"`
	Recipient     string `gorm:"type:varchar(255)"`
	Subject       string `gorm:"type:varchar(255)"`
	Body          string
	AttachmentKey string             `gorm:"type:varchar(255)"` // S3 object key, optional
	Status        NotificationStatus `gorm:"type:varchar(20);index"`
	Attempts      int
	LastError     string
	SentAt        *time.Time
}
