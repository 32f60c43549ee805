package dbmodels

import (
	"fmt"
	"strings"

	"ats-backend/models"
)

type Candidate struct {
	BaseModel
	FirstName       string `gorm:"type:varchar(255)"`
	LastName        string `gorm:"type:varchar(255)"`
	Email           string `gorm:"type:varchar(255);uniqueIndex"`
	Phone           string `gorm:"type:varchar(50)"`
	Location        string `gorm:"type:varchar(255)"`
	CurrentCompany  string `gorm:"type:varchar(255)"`
	CurrentCTC      int
	ExpectedCTC     int
	ExperienceYears float64
	Status          models.CandidateStatus `gorm:"type:varchar(50);index"`
	// portal account
	PasswordHash   string `gorm:"type:varchar(128)"`
	IsPortalActive bool
}

func (c Candidate) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%v %v", c.FirstName, c.LastName))
}
