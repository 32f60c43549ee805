package dbmodels

type MessageTemplate struct {
	BaseModel
	Key      string `gorm:"type:varchar(100);uniqueIndex"`
	Name     string `gorm:"type:varchar(255)"`
	Subject  string `gorm:"type:varchar(255)"`
	Body     string
	IsActive bool
}
