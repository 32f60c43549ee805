package offer

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	applicationstore "ats-backend/lib/application/store"
	companystore "ats-backend/lib/company/store"
	"ats-backend/lib/notify"
	offerstore "ats-backend/lib/offer/store"
	"ats-backend/lib/workflow"
	"ats-backend/models"

	"ats-backend/db"
	dbmodels "ats-backend/models/db"
	s3client "ats-backend/s3"
)

type Provider interface {
	Release(applicationID string, data ReleaseRequest) (offerID string, err error)
	Accept(applicationID string) error
	Decline(applicationID string) error
	GetByApplication(applicationID string) (rec *dbmodels.OfferLetter, err error)
	GetPDF(applicationID string) (pdfFile []byte, err error)
}

type ReleaseRequest struct {
	Designation string    `json:"designation"`
	JoiningDate time.Time `json:"joining_date"`
	AnnualCTC   int       `json:"annual_ctc"`
}

func (r ReleaseRequest) Validate() error {
	if r.Designation == "" {
		return errors.New("designation is required")
	}
	if r.AnnualCTC <= 0 {
		return errors.New("annual ctc must be positive")
	}
	if r.JoiningDate.IsZero() {
		return errors.New("joining date is required")
	}
	return nil
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		offerStore:   offerstore.NewInstance(db.DB),
		appStore:     applicationstore.NewInstance(db.DB),
		companyStore: companystore.NewInstance(db.DB),
	}
}

type impl struct {
	offerStore   offerstore.Provider
	appStore     applicationstore.Provider
	companyStore companystore.Provider
}

func (i impl) Release(applicationID string, data ReleaseRequest) (offerID string, err error) {
	logger := log.WithField("application_id", applicationID)
	app, err := i.appStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("failed to load application")
		return "", err
	}
	if app == nil {
		return "", workflow.NotFoundError{Entity: "application", Key: applicationID}
	}
	if app.Stage != models.StageSelected && app.Stage != models.StageOfferReleased {
		return "", fmt.Errorf("offer cannot be released from stage %q", app.Stage)
	}
	existing, err := i.offerStore.GetByApplication(applicationID)
	if err != nil {
		logger.WithError(err).Error("failed to check for an existing offer")
		return "", err
	}
	if existing != nil {
		return "", errors.New("an offer letter already exists for this application")
	}

	breakup := BuildSalaryBreakup(data.AnnualCTC)
	now := time.Now()
	letter := dbmodels.OfferLetter{
		ApplicationID:   applicationID,
		Designation:     data.Designation,
		JoiningDate:     data.JoiningDate,
		AnnualCTC:       breakup.AnnualCTC,
		Basic:           breakup.Basic,
		HRA:             breakup.HRA,
		Conveyance:      breakup.Conveyance,
		Medical:         breakup.Medical,
		FlexiPay:        breakup.FlexiPay,
		EmployerPF:      breakup.EmployerPF,
		EmployeePF:      breakup.EmployeePF,
		ProfessionalTax: breakup.ProfessionalTax,
		Insurance:       breakup.Insurance,
		IncomeTax:       breakup.IncomeTax,
		GrossSalary:     breakup.GrossSalary,
		NetSalary:       breakup.NetSalary,
		Status:          models.OfferStatusSent,
		SentAt:          &now,
	}
	offerID, err = i.offerStore.Create(letter)
	if err != nil {
		logger.WithError(err).Error("failed to create offer letter")
		return "", err
	}
	letter.ID = offerID

	if app.Stage == models.StageSelected {
		if err = workflow.Instance.ChangeStage(applicationID, models.StageOfferReleased); err != nil {
			logger.WithError(err).Error("failed to move application to the offer stage")
			return "", err
		}
	}

	// PDF generation, upload and mail are best-effort, the released offer is
	// authoritative either way
	pdfKey := i.renderAndUpload(logger, letter, app)
	i.sendOfferMail(logger, letter, app, pdfKey)
	return offerID, nil
}

func (i impl) renderAndUpload(logger *log.Entry, letter dbmodels.OfferLetter, app *dbmodels.Application) (pdfKey string) {
	candidateName := ""
	jobTitle := ""
	if app.Candidate != nil {
		candidateName = app.Candidate.GetFullName()
	}
	if app.Job != nil {
		jobTitle = app.Job.Title
	}
	company, err := i.companyStore.Get()
	if err != nil {
		logger.WithError(err).Error("failed to load company profile for offer letter")
	}
	pdfFile, err := GenerateOfferPDF(letter, candidateName, jobTitle, company)
	if err != nil {
		logger.WithError(err).Error("failed to render offer letter pdf")
		return ""
	}
	pdfKey = fmt.Sprintf("offers/%v.pdf", letter.ID)
	if err = s3client.Instance.UploadObject(context.Background(), pdfKey, pdfFile, "application/pdf"); err != nil {
		logger.WithError(err).Error("failed to upload offer letter pdf")
		return ""
	}
	if err = i.offerStore.Update(letter.ID, map[string]interface{}{"pdf_key": pdfKey}); err != nil {
		logger.WithError(err).Error("failed to store pdf key on offer letter")
	}
	return pdfKey
}

func (i impl) sendOfferMail(logger *log.Entry, letter dbmodels.OfferLetter, app *dbmodels.Application, pdfKey string) {
	if app.Candidate == nil {
		return
	}
	company, err := i.companyStore.Get()
	if err != nil {
		logger.WithError(err).Error("failed to load company profile for offer mail")
	}
	data := models.TemplateData{
		CandidateName:  app.Candidate.GetFullName(),
		CandidateEmail: app.Candidate.Email,
		OfferAnnualCTC: fmt.Sprintf("%v", letter.AnnualCTC),
	}
	if app.Job != nil {
		data.JobTitle = app.Job.Title
		data.Department = app.Job.Department
	}
	if company != nil {
		data.CompanyName = company.Name
		data.CompanySignatory = company.Signatory
	}
	if err = notify.Instance.EnqueueWithAttachment(models.TplOfferExtended, app.Candidate.Email, data, pdfKey); err != nil {
		logger.WithError(err).Error("failed to enqueue offer mail")
	}
}

func (i impl) Accept(applicationID string) error {
	return i.close(applicationID, models.OfferStatusAccepted)
}

func (i impl) Decline(applicationID string) error {
	return i.close(applicationID, models.OfferStatusDeclined)
}

func (i impl) close(applicationID string, status models.OfferStatus) error {
	logger := log.WithField("application_id", applicationID)
	rec, err := i.offerStore.GetByApplication(applicationID)
	if err != nil {
		logger.WithError(err).Error("failed to load offer letter")
		return err
	}
	if rec == nil {
		return workflow.NotFoundError{Entity: "offer letter", Key: applicationID}
	}
	if rec.Status == models.OfferStatusAccepted || rec.Status == models.OfferStatusDeclined {
		return fmt.Errorf("offer is already %v", rec.Status)
	}
	if err = i.offerStore.Update(rec.ID, map[string]interface{}{"status": status}); err != nil {
		logger.WithError(err).Error("failed to update offer status")
		return err
	}
	if status == models.OfferStatusAccepted {
		return workflow.Instance.HandleOfferAccepted(applicationID)
	}
	return workflow.Instance.HandleOfferDeclined(applicationID)
}

func (i impl) GetByApplication(applicationID string) (*dbmodels.OfferLetter, error) {
	return i.offerStore.GetByApplication(applicationID)
}

func (i impl) GetPDF(applicationID string) ([]byte, error) {
	rec, err := i.offerStore.GetByApplication(applicationID)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.PdfKey == "" {
		return nil, workflow.NotFoundError{Entity: "offer letter pdf", Key: applicationID}
	}
	return s3client.Instance.GetObject(context.Background(), rec.PdfKey)
}
