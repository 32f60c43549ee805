package dbmodels

// CompanyProfile is loaded once per operation and passed into template
// binding explicitly.
type CompanyProfile struct {
	BaseModel
	Name      string `gorm:"type:varchar(255)"`
	Address   string
	Contact   string `gorm:"type:varchar(255)"`
	Signatory string `gorm:"type:varchar(255)"`
	PortalURL string `gorm:"type:varchar(255)"`
}
