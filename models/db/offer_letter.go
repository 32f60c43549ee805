package dbmodels

import (
	"time"

	"ats-backend/models"
)

// OfferLetter is an immutable salary snapshot; the breakdown is computed
// once at release time and never recalculated.
type OfferLetter struct {
	BaseModel
	ApplicationID string       `gorm:"type:varchar(36);uniqueIndex"`
	Application   *Application `gorm:"foreignKey:ApplicationID"`

	Designation string `gorm:"type:varchar(255)"`
	JoiningDate time.Time

	AnnualCTC       int
	Basic           int
	HRA             int
	Conveyance      int
	Medical         int
	FlexiPay        int
	EmployerPF      int
	EmployeePF      int
	ProfessionalTax int
	Insurance       int
	IncomeTax       int
	GrossSalary     int
	NetSalary       int

	Status models.OfferStatus `gorm:"type:varchar(50);index"`
	PdfKey string             `gorm:"type:varchar(255)"` // object key in S3
	SentAt *time.Time
}
