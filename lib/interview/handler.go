package interviewhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	applicationstore "ats-backend/lib/application/store"
	interviewstore "ats-backend/lib/interview/store"
	"ats-backend/lib/utils/helpers"
	"ats-backend/lib/workflow"
	"ats-backend/models"
	interviewapimodels "ats-backend/models/api/interview"
	dbmodels "ats-backend/models/db"

	"ats-backend/db"
)

type Provider interface {
	Schedule(scheduledBy string, data interviewapimodels.ScheduleData) (id string, err error)
	Reschedule(id string, data interviewapimodels.RescheduleData) error
	Cancel(id string) error
	SubmitFeedback(id string, data interviewapimodels.FeedbackData) error
	GetByID(id string) (item *interviewapimodels.InterviewView, err error)
	ListByApplication(applicationID string) (list []interviewapimodels.InterviewView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:    interviewstore.NewInstance(db.DB),
		appStore: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store    interviewstore.Provider
	appStore applicationstore.Provider
}

func (i impl) Schedule(scheduledBy string, data interviewapimodels.ScheduleData) (id string, err error) {
	logger := log.WithField("application_id", data.ApplicationID)
	app, err := i.appStore.GetByID(data.ApplicationID)
	if err != nil {
		logger.WithError(err).Error("failed to load application")
		return "", err
	}
	if app == nil {
		return "", workflow.NotFoundError{Entity: "application", Key: data.ApplicationID}
	}
	pending, err := i.store.HasPending(data.ApplicationID)
	if err != nil {
		logger.WithError(err).Error("failed to check for a pending interview")
		return "", err
	}
	if pending {
		return "", errors.New("application already has a pending interview")
	}

	name, email := data.InterviewerName, data.InterviewerEmail
	if name == "" {
		name, email = helpers.ParseNameEmail(data.Interviewer)
	}
	rec := dbmodels.Interview{
		ApplicationID:    data.ApplicationID,
		InterviewRound:   data.Round,
		Mode:             data.Mode,
		ScheduledDate:    data.ScheduledDate,
		DurationMin:      data.DurationMin,
		InterviewerName:  name,
		InterviewerEmail: email,
		ScheduledBy:      scheduledBy,
		Status:           models.InterviewStatusScheduled,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create interview")
		return "", err
	}
	if err = workflow.Instance.HandleInterviewScheduled(id); err != nil {
		// the stage move failed, the interview record must not stay pending
		if dErr := i.store.Update(id, map[string]interface{}{"status": models.InterviewStatusCancelled}); dErr != nil {
			logger.WithError(dErr).Error("failed to cancel interview after a rejected stage move")
		}
		return "", err
	}
	return id, nil
}

func (i impl) Reschedule(id string, data interviewapimodels.RescheduleData) error {
	logger := log.WithField("interview_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("failed to load interview")
		return err
	}
	if rec == nil {
		return workflow.NotFoundError{Entity: "interview", Key: id}
	}
	if !rec.IsPending() {
		return errors.New("only a scheduled interview can be rescheduled")
	}
	updMap := map[string]interface{}{
		"scheduled_date": data.ScheduledDate,
	}
	if data.Mode != "" {
		updMap["mode"] = data.Mode
	}
	if data.DurationMin > 0 {
		updMap["duration_min"] = data.DurationMin
	}
	if err = i.store.Update(id, updMap); err != nil {
		logger.WithError(err).Error("failed to reschedule interview")
		return err
	}
	// re-runs the meeting update and notifications; the stage is unchanged
	return workflow.Instance.HandleInterviewScheduled(id)
}

func (i impl) Cancel(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return workflow.NotFoundError{Entity: "interview", Key: id}
	}
	if !rec.IsPending() {
		return errors.New("only a scheduled interview can be cancelled")
	}
	return i.store.Update(id, map[string]interface{}{"status": models.InterviewStatusCancelled})
}

func (i impl) SubmitFeedback(id string, data interviewapimodels.FeedbackData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return workflow.NotFoundError{Entity: "interview", Key: id}
	}
	if !rec.IsPending() {
		return errors.New("feedback was already submitted for this interview")
	}
	return workflow.Instance.HandleInterviewFeedback(id, data.Recommendation, data.Notes)
}

func (i impl) GetByID(id string) (*interviewapimodels.InterviewView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("interview_id", id).Error("failed to load interview")
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	item := interviewapimodels.Convert(*rec)
	return &item, nil
}

func (i impl) ListByApplication(applicationID string) (list []interviewapimodels.InterviewView, err error) {
	recs, err := i.store.ListByApplication(applicationID)
	if err != nil {
		log.WithError(err).WithField("application_id", applicationID).Error("failed to list interviews")
		return nil, err
	}
	list = make([]interviewapimodels.InterviewView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, interviewapimodels.Convert(rec))
	}
	return list, nil
}
