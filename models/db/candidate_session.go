package dbmodels

import "time"

type CandidateSession struct {
	BaseModel
	CandidateID string     `gorm:"type:varchar(36);index"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`
	Token       string     `gorm:"type:varchar(64);uniqueIndex"`
	ExpiresAt   time.Time  `gorm:"index"`
}

func (s CandidateSession) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
