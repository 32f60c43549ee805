package applicationstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Application, err error)
	GetByToken(token string) (rec *dbmodels.Application, err error)
	GetByJobAndCandidate(jobID, candidateID string) (rec *dbmodels.Application, err error)
	List(filter dbmodels.ApplicationFilter) (list []dbmodels.ApplicationWithJob, err error)
	ListByIDs(ids []string) (list []dbmodels.Application, err error)
	ListByCandidate(candidateID string) (list []dbmodels.ApplicationWithJob, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("application not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Where("id = ?", id).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByToken(token string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Where("response_token = ?", token).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByJobAndCandidate(jobID, candidateID string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Where("job_id = ?", jobID).
		Where("candidate_id = ?", candidateID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter dbmodels.ApplicationFilter) (list []dbmodels.ApplicationWithJob, err error) {
	list = []dbmodels.ApplicationWithJob{}
	tx := i.db.
		Select("applications.*, j.title as job_title, j.department as job_department, CONCAT(c.first_name,' ',c.last_name) as candidate_name, c.email as candidate_email").
		Model(&dbmodels.Application{}).
		Joins("left join jobs as j on job_id = j.id").
		Joins("left join candidates as c on candidate_id = c.id")
	if filter.JobID != "" {
		tx.Where("job_id = ?", filter.JobID)
	}
	if filter.Stage != "" {
		tx.Where("stage = ?", filter.Stage)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(CONCAT(c.first_name,' ',c.last_name)) like ? or LOWER(c.email) like ?", searchValue, searchValue)
	}
	err = tx.Order("applications.created_at desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByIDs(ids []string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("id in ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.ApplicationWithJob, err error) {
	list = []dbmodels.ApplicationWithJob{}
	err = i.db.
		Select("applications.*, j.title as job_title, j.department as job_department").
		Model(&dbmodels.Application{}).
		Joins("left join jobs as j on job_id = j.id").
		Where("candidate_id = ?", candidateID).
		Order("applications.created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
