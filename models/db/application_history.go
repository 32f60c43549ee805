package dbmodels

import "ats-backend/models"

// ApplicationHistory records every stage change with its trigger, so a
// recruiter can reconstruct how an application reached its current stage.
type ApplicationHistory struct {
	BaseModel
	ApplicationID string                  `gorm:"type:varchar(36);index"`
	FromStage     models.ApplicationStage `gorm:"type:varchar(50)"`
	ToStage       models.ApplicationStage `gorm:"type:varchar(50)"`
	Trigger       string                  `gorm:"type:varchar(100)"`
	Description   string
}
