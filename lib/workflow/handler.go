package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ats-backend/config"
	applicationstore "ats-backend/lib/application/store"
	candidatestore "ats-backend/lib/candidate/store"
	companystore "ats-backend/lib/company/store"
	interviewstore "ats-backend/lib/interview/store"
	jobstore "ats-backend/lib/job/store"
	"ats-backend/lib/meet/teams"
	"ats-backend/lib/notify"
	"ats-backend/lib/portal"
	workflowstore "ats-backend/lib/workflow/store"
	"ats-backend/models"

	"ats-backend/db"
	dbmodels "ats-backend/models/db"
)

// Provider is the workflow orchestrator: one entry point per domain event.
// The application/candidate mutation is the critical path; notification and
// meeting calls are best-effort and never fail the triggering operation.
type Provider interface {
	HandleApplicationCreated(candidateID, jobID, source string) (applicationID string, err error)
	HandleCandidateResponded(token string, response models.CandidateResponse, feedback string) (result CandidateResponseResult, err error)
	HandleInterviewScheduled(interviewID string) error
	HandleInterviewFeedback(interviewID, recommendation, notes string) error
	HandleOfferAccepted(applicationID string) error
	HandleOfferDeclined(applicationID string) error
	ChangeStage(applicationID string, newStage models.ApplicationStage) error
	BulkChangeStage(ids []string, newStage models.ApplicationStage, force bool) (BulkResult, error)
}

type CandidateResponseResult struct {
	AlreadyResponded bool                     `json:"already_responded"`
	Response         models.CandidateResponse `json:"response"`
	Stage            models.ApplicationStage  `json:"stage"`
	Message          string                   `json:"message"`
	PortalURL        string                   `json:"portal_url,omitempty"`
}

type BulkResult struct {
	Updated []string   `json:"updated"`
	Skipped []BulkSkip `json:"skipped"`
}

type BulkSkip struct {
	ID   string                  `json:"id"`
	From models.ApplicationStage `json:"from"`
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		appStore:       applicationstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		jobStore:       jobstore.NewInstance(db.DB),
		interviewStore: interviewstore.NewInstance(db.DB),
		companyStore:   companystore.NewInstance(db.DB),
		effectStore:    workflowstore.NewInstance(db.DB),
		notifier:       notify.Instance,
		meetings:       teams.Instance,
		portal:         portal.Instance,
		publicURL:      config.Conf.App.PublicURL,
	}
}

type impl struct {
	appStore       applicationstore.Provider
	candidateStore candidatestore.Provider
	jobStore       jobstore.Provider
	interviewStore interviewstore.Provider
	companyStore   companystore.Provider
	effectStore    workflowstore.Provider
	notifier       notify.Provider
	meetings       teams.Provider
	portal         portal.Provider
	publicURL      string
}

func (i impl) HandleApplicationCreated(candidateID, jobID, source string) (applicationID string, err error) {
	logger := log.WithFields(log.Fields{
		"candidate_id": candidateID,
		"job_id":       jobID,
	})
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		logger.WithError(err).Error("failed to load job")
		return "", err
	}
	if job == nil {
		return "", NotFoundError{Entity: "job", Key: jobID}
	}
	if !job.AcceptsApplications() {
		return "", fmt.Errorf("job %q is not accepting applications", job.Title)
	}
	candidate, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		logger.WithError(err).Error("failed to load candidate")
		return "", err
	}
	if candidate == nil {
		return "", NotFoundError{Entity: "candidate", Key: candidateID}
	}
	existing, err := i.appStore.GetByJobAndCandidate(jobID, candidateID)
	if err != nil {
		logger.WithError(err).Error("failed to check for duplicate application")
		return "", err
	}
	if existing != nil {
		return "", fmt.Errorf("candidate already has an application for job %q", job.Title)
	}

	token := uuid.NewString()
	applicationID, err = i.appStore.Create(dbmodels.Application{
		JobID:             jobID,
		CandidateID:       candidateID,
		Stage:             models.StageApplied, // caller-supplied stage is ignored
		CandidateResponse: models.ResponsePending,
		ResponseToken:     token,
		AppliedAt:         time.Now(),
		Source:            source,
	})
	if err != nil {
		logger.WithError(err).Error("failed to create application")
		return "", err
	}
	i.recordHistory(applicationID, "", models.StageApplied, "application_created", "Application created")

	// candidate status sync is best-effort here, the application exists either way
	err = i.candidateStore.Update(candidateID, map[string]interface{}{
		"status": models.CandidateStatusInterviewing,
	})
	if err != nil {
		logger.WithError(err).Error("failed to sync candidate status on application creation")
	}

	data := i.buildTemplateData(candidate, job)
	data.ResponseLink = fmt.Sprintf("%v/api/v1/response/%v", i.publicURL, token)
	if err = i.notifier.Enqueue(models.TplJobDescription, candidate.Email, data); err != nil {
		logger.WithError(err).Error("failed to enqueue job description email")
	}
	return applicationID, nil
}

func (i impl) HandleCandidateResponded(token string, response models.CandidateResponse, feedback string) (CandidateResponseResult, error) {
	logger := log.WithField("response", string(response))
	app, err := i.appStore.GetByToken(token)
	if err != nil {
		logger.WithError(err).Error("failed to look up application by token")
		return CandidateResponseResult{}, err
	}
	if app == nil {
		return CandidateResponseResult{}, NotFoundError{Entity: "application", Key: "response token"}
	}
	logger = logger.WithField("application_id", app.ID)

	if app.HasResponded() {
		result := CandidateResponseResult{
			AlreadyResponded: true,
			Response:         app.CandidateResponse,
			Stage:            app.Stage,
			Message:          "response already recorded",
		}
		if app.CandidateResponse == models.ResponseInterested {
			// the portal account must exist even on a repeated click
			provision, pErr := i.portal.EnsureAccount(app.CandidateID)
			if pErr != nil {
				logger.WithError(pErr).Error("failed to ensure portal account on repeated response")
			} else {
				result.PortalURL = provision.PortalURL
			}
		}
		return result, nil
	}

	if response != models.ResponseInterested && response != models.ResponseNotInterested {
		return CandidateResponseResult{}, fmt.Errorf("unknown candidate response %q", response)
	}

	newStage := models.StageShortlisted
	candStatus := models.CandidateStatusInterested
	if response == models.ResponseNotInterested {
		newStage = models.StageRejected
		candStatus = models.CandidateStatusNotInterested
	}
	if !IsValidTransition(app.Stage, newStage) {
		return CandidateResponseResult{}, InvalidTransitionError{From: app.Stage, To: newStage}
	}

	now := time.Now()
	appUpd := map[string]interface{}{
		"stage":              newStage,
		"candidate_response": response,
		"response_feedback":  feedback,
		"response_at":        &now,
	}
	candUpd := map[string]interface{}{
		"status": candStatus,
	}
	history := i.historyRec(app.ID, app.Stage, newStage, "candidate_response", fmt.Sprintf("Candidate responded: %v", response))
	if err = i.effectStore.ApplyStageEffect(app.ID, appUpd, app.CandidateID, candUpd, history); err != nil {
		logger.WithError(err).Error("failed to record candidate response")
		return CandidateResponseResult{}, err
	}

	result := CandidateResponseResult{
		Response: response,
		Stage:    newStage,
		Message:  "response recorded",
	}
	if response == models.ResponseInterested {
		provision, pErr := i.portal.EnsureAccount(app.CandidateID)
		if pErr != nil {
			logger.WithError(pErr).Error("failed to provision portal account")
		} else if provision.Success {
			result.PortalURL = provision.PortalURL
		}
	}
	return result, nil
}

func (i impl) HandleInterviewScheduled(interviewID string) error {
	logger := log.WithField("interview_id", interviewID)
	interview, err := i.interviewStore.GetByID(interviewID)
	if err != nil {
		logger.WithError(err).Error("failed to load interview")
		return err
	}
	if interview == nil {
		return NotFoundError{Entity: "interview", Key: interviewID}
	}
	app, err := i.appStore.GetByID(interview.ApplicationID)
	if err != nil {
		logger.WithError(err).Error("failed to load application for interview")
		return err
	}
	if app == nil {
		return NotFoundError{Entity: "application", Key: interview.ApplicationID}
	}

	newStage := interview.InterviewRound.ScheduledStage()
	if newStage == "" {
		return fmt.Errorf("unknown interview round %q", interview.InterviewRound)
	}
	if newStage != app.Stage && !IsValidTransition(app.Stage, newStage) {
		return InvalidTransitionError{From: app.Stage, To: newStage}
	}

	if newStage != app.Stage {
		appUpd := map[string]interface{}{"stage": newStage}
		candUpd := map[string]interface{}{"status": models.CandidateStatusInterviewing}
		history := i.historyRec(app.ID, app.Stage, newStage, "interview_scheduled",
			fmt.Sprintf("%v interview scheduled", interview.InterviewRound))
		if err = i.effectStore.ApplyStageEffect(app.ID, appUpd, app.CandidateID, candUpd, history); err != nil {
			logger.WithError(err).Error("failed to move application to the scheduled stage")
			return err
		}
	}

	meetingLink := interview.MeetingLink
	if interview.Mode.NeedsMeeting() {
		meetingLink = i.ensureMeeting(logger, *interview, app)
	}
	i.sendInterviewNotifications(logger, *interview, app, meetingLink)
	return nil
}

// ensureMeeting requests meeting creation or update; the interview persists
// without a link when the provider fails.
func (i impl) ensureMeeting(logger *log.Entry, interview dbmodels.Interview, app *dbmodels.Application) string {
	subject := fmt.Sprintf("%v interview", interview.InterviewRound)
	if app.Job != nil {
		subject = fmt.Sprintf("%v interview - %v", interview.InterviewRound, app.Job.Title)
	}
	attendees := []string{interview.InterviewerEmail}
	if app.Candidate != nil {
		attendees = append(attendees, app.Candidate.Email)
	}
	end := interview.ScheduledDate.Add(time.Duration(interview.DurationMin) * time.Minute)
	if interview.DurationMin == 0 {
		end = interview.ScheduledDate.Add(time.Hour)
	}
	handle := i.meetings.CreateOrUpdateMeeting(context.Background(), interview.MeetingID, subject,
		interview.ScheduledDate, end, interview.InterviewerEmail, attendees)
	if handle == nil {
		logger.Warn("interview scheduled without an online meeting")
		return interview.MeetingLink
	}
	err := i.interviewStore.Update(interview.ID, map[string]interface{}{
		"meeting_id":   handle.ID,
		"meeting_link": handle.JoinURL,
	})
	if err != nil {
		logger.WithError(err).Error("failed to store meeting link on interview")
	}
	return handle.JoinURL
}

// sendInterviewNotifications dispatches the three role-specific messages;
// each send is independent of the others.
func (i impl) sendInterviewNotifications(logger *log.Entry, interview dbmodels.Interview, app *dbmodels.Application, meetingLink string) {
	data := i.buildTemplateData(app.Candidate, app.Job)
	data.InterviewRound = string(interview.InterviewRound)
	data.InterviewMode = string(interview.Mode)
	data.InterviewDate = interview.ScheduledDate.Format("02 Jan 2006 15:04")
	data.InterviewerName = interview.InterviewerName
	data.MeetingLink = meetingLink

	if app.Candidate != nil {
		if err := i.notifier.Enqueue(models.TplInterviewCandidate, app.Candidate.Email, data); err != nil {
			logger.WithError(err).Error("failed to enqueue candidate interview invitation")
		}
	}
	if interview.InterviewerEmail != "" {
		if err := i.notifier.Enqueue(models.TplInterviewInterviewer, interview.InterviewerEmail, data); err != nil {
			logger.WithError(err).Error("failed to enqueue interviewer notification")
		}
	} else {
		logger.Warn("interviewer email is unknown, interviewer notification skipped")
	}
	if interview.ScheduledBy != "" && interview.ScheduledBy != interview.InterviewerEmail {
		if err := i.notifier.Enqueue(models.TplInterviewConfirmation, interview.ScheduledBy, data); err != nil {
			logger.WithError(err).Error("failed to enqueue scheduling confirmation")
		}
	}
}

func (i impl) HandleInterviewFeedback(interviewID, recommendation, notes string) error {
	logger := log.WithField("interview_id", interviewID)
	interview, err := i.interviewStore.GetByID(interviewID)
	if err != nil {
		logger.WithError(err).Error("failed to load interview")
		return err
	}
	if interview == nil {
		return NotFoundError{Entity: "interview", Key: interviewID}
	}
	app, err := i.appStore.GetByID(interview.ApplicationID)
	if err != nil {
		logger.WithError(err).Error("failed to load application for feedback")
		return err
	}
	if app == nil {
		return NotFoundError{Entity: "application", Key: interview.ApplicationID}
	}

	result := MapRecommendation(recommendation)
	err = i.interviewStore.Update(interview.ID, map[string]interface{}{
		"status":          models.InterviewStatusCompleted,
		"feedback_result": result,
		"feedback_notes":  notes,
	})
	if err != nil {
		logger.WithError(err).Error("failed to complete interview")
		return err
	}

	newStage, candStatus := resolveFeedbackOutcome(interview.InterviewRound, models.InterviewStatusCompleted, result)
	// both sides must resolve before anything is written
	if newStage == "" || candStatus == "" {
		logger.
			WithField("round", interview.InterviewRound).
			WithField("feedback_result", result).
			Warn("feedback resolved no stage, application left unchanged")
		return nil
	}

	appUpd := map[string]interface{}{"stage": newStage}
	candUpd := map[string]interface{}{"status": candStatus}
	history := i.historyRec(app.ID, app.Stage, newStage, "interview_feedback",
		fmt.Sprintf("%v feedback: %v", interview.InterviewRound, result))
	if err = i.effectStore.ApplyStageEffect(app.ID, appUpd, app.CandidateID, candUpd, history); err != nil {
		logger.WithError(err).Error("failed to apply feedback outcome")
		return err
	}

	i.sendFeedbackNotification(logger, app, newStage)
	return nil
}

func (i impl) sendFeedbackNotification(logger *log.Entry, app *dbmodels.Application, newStage models.ApplicationStage) {
	if app.Candidate == nil {
		return
	}
	data := i.buildTemplateData(app.Candidate, app.Job)
	data.Stage = string(newStage)

	templateKey := models.TplFeedbackRequest
	switch newStage {
	case models.StageOfferReleased:
		templateKey = models.TplOfferExtended
	case models.StageRejected:
		templateKey = models.TplRejection
	case models.StageL2Scheduled, models.StageSelected:
		templateKey = models.TplProgression
	}
	if err := i.notifier.Enqueue(templateKey, app.Candidate.Email, data); err != nil {
		logger.WithError(err).Error("failed to enqueue feedback notification")
	}
}

func (i impl) HandleOfferAccepted(applicationID string) error {
	return i.closeOffer(applicationID, models.StageJoined, models.CandidateStatusJoined,
		"offer_accepted", "Offer accepted", models.TplJoinedWelcome)
}

func (i impl) HandleOfferDeclined(applicationID string) error {
	return i.closeOffer(applicationID, models.StageNotJoined, models.CandidateStatusNotJoined,
		"offer_declined", "Offer declined", models.TplNotJoinedFollowup)
}

// closeOffer applies the terminal offer outcome unconditionally, these
// actions bypass the transition table.
func (i impl) closeOffer(applicationID string, stage models.ApplicationStage, status models.CandidateStatus, trigger, desc, templateKey string) error {
	logger := log.WithField("application_id", applicationID)
	app, err := i.appStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("failed to load application")
		return err
	}
	if app == nil {
		return NotFoundError{Entity: "application", Key: applicationID}
	}
	appUpd := map[string]interface{}{"stage": stage}
	candUpd := map[string]interface{}{"status": status}
	history := i.historyRec(app.ID, app.Stage, stage, trigger, desc)
	if err = i.effectStore.ApplyStageEffect(app.ID, appUpd, app.CandidateID, candUpd, history); err != nil {
		logger.WithError(err).Error("failed to apply offer outcome")
		return err
	}
	if app.Candidate != nil {
		data := i.buildTemplateData(app.Candidate, app.Job)
		if err = i.notifier.Enqueue(templateKey, app.Candidate.Email, data); err != nil {
			logger.WithError(err).Error("failed to enqueue offer outcome notification")
		}
	}
	return nil
}

func (i impl) ChangeStage(applicationID string, newStage models.ApplicationStage) error {
	logger := log.WithField("application_id", applicationID)
	app, err := i.appStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("failed to load application")
		return err
	}
	if app == nil {
		return NotFoundError{Entity: "application", Key: applicationID}
	}
	if !IsValidTransition(app.Stage, newStage) {
		return InvalidTransitionError{From: app.Stage, To: newStage}
	}
	appUpd := map[string]interface{}{"stage": newStage}
	candUpd := map[string]interface{}{}
	if status, ok := ProjectCandidateStatus(newStage); ok {
		candUpd["status"] = status
	}
	history := i.historyRec(app.ID, app.Stage, newStage, "manual_edit", fmt.Sprintf("Stage set to %v", newStage))
	if err = i.effectStore.ApplyStageEffect(app.ID, appUpd, app.CandidateID, candUpd, history); err != nil {
		logger.WithError(err).Error("failed to change stage")
		return err
	}
	return nil
}

// BulkChangeStage validates every item unless force is set; invalid items
// are reported back instead of silently written.
func (i impl) BulkChangeStage(ids []string, newStage models.ApplicationStage, force bool) (BulkResult, error) {
	logger := log.WithField("stage", string(newStage))
	result := BulkResult{
		Updated: []string{},
		Skipped: []BulkSkip{},
	}
	list, err := i.appStore.ListByIDs(ids)
	if err != nil {
		logger.WithError(err).Error("failed to load applications for bulk edit")
		return result, err
	}
	for _, app := range list {
		if !force && !IsValidTransition(app.Stage, newStage) {
			result.Skipped = append(result.Skipped, BulkSkip{ID: app.ID, From: app.Stage})
			continue
		}
		appUpd := map[string]interface{}{"stage": newStage}
		candUpd := map[string]interface{}{}
		if status, ok := ProjectCandidateStatus(newStage); ok {
			candUpd["status"] = status
		}
		history := i.historyRec(app.ID, app.Stage, newStage, "bulk_edit", fmt.Sprintf("Stage set to %v (bulk, force=%v)", newStage, force))
		if err = i.effectStore.ApplyStageEffect(app.ID, appUpd, app.CandidateID, candUpd, history); err != nil {
			logger.WithError(err).WithField("application_id", app.ID).Error("failed to apply bulk stage change")
			result.Skipped = append(result.Skipped, BulkSkip{ID: app.ID, From: app.Stage})
			continue
		}
		result.Updated = append(result.Updated, app.ID)
	}
	return result, nil
}

func (i impl) recordHistory(applicationID string, from, to models.ApplicationStage, trigger, desc string) {
	history := i.historyRec(applicationID, from, to, trigger, desc)
	if err := i.effectStore.ApplyStageEffect(applicationID, nil, "", nil, history); err != nil {
		log.WithError(err).
			WithField("application_id", applicationID).
			Error("failed to record application history")
	}
}

func (i impl) historyRec(applicationID string, from, to models.ApplicationStage, trigger, desc string) *dbmodels.ApplicationHistory {
	return &dbmodels.ApplicationHistory{
		ApplicationID: applicationID,
		FromStage:     from,
		ToStage:       to,
		Trigger:       trigger,
		Description:   desc,
	}
}

func (i impl) buildTemplateData(candidate *dbmodels.Candidate, job *dbmodels.Job) models.TemplateData {
	data := models.TemplateData{}
	if candidate != nil {
		data.CandidateName = candidate.GetFullName()
		data.CandidateEmail = candidate.Email
	}
	if job != nil {
		data.JobTitle = job.Title
		data.Department = job.Department
	}
	profile, err := i.companyStore.Get()
	if err != nil {
		log.WithError(err).Error("failed to load company profile for templates")
		return data
	}
	if profile != nil {
		data.CompanyName = profile.Name
		data.CompanyAddress = profile.Address
		data.CompanyContact = profile.Contact
		data.CompanySignatory = profile.Signatory
		if profile.PortalURL != "" {
			data.PortalLink = profile.PortalURL
		}
	}
	return data
}
