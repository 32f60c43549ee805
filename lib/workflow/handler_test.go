package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"ats-backend/lib/meet/teams"
	"ats-backend/lib/notify"
	"ats-backend/lib/portal"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type fakeAppStore struct {
	apps map[string]*dbmodels.Application
}

func (f *fakeAppStore) Create(rec dbmodels.Application) (string, error) {
	if rec.ID == "" {
		rec.ID = "app-new"
	}
	f.apps[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeAppStore) Update(id string, updMap map[string]interface{}) error {
	app, ok := f.apps[id]
	if !ok {
		return errors.New("application not found")
	}
	applyAppUpd(app, updMap)
	return nil
}

func (f *fakeAppStore) GetByID(id string) (*dbmodels.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, nil
	}
	cp := *app
	return &cp, nil
}

func (f *fakeAppStore) GetByToken(token string) (*dbmodels.Application, error) {
	for _, app := range f.apps {
		if app.ResponseToken == token {
			cp := *app
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAppStore) GetByJobAndCandidate(jobID, candidateID string) (*dbmodels.Application, error) {
	for _, app := range f.apps {
		if app.JobID == jobID && app.CandidateID == candidateID {
			cp := *app
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAppStore) List(filter dbmodels.ApplicationFilter) ([]dbmodels.ApplicationWithJob, error) {
	return nil, nil
}

func (f *fakeAppStore) ListByIDs(ids []string) ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	for _, id := range ids {
		if app, ok := f.apps[id]; ok {
			list = append(list, *app)
		}
	}
	return list, nil
}

func (f *fakeAppStore) ListByCandidate(candidateID string) ([]dbmodels.ApplicationWithJob, error) {
	return nil, nil
}

func applyAppUpd(app *dbmodels.Application, updMap map[string]interface{}) {
	if v, ok := updMap["stage"]; ok {
		app.Stage = v.(models.ApplicationStage)
	}
	if v, ok := updMap["candidate_response"]; ok {
		app.CandidateResponse = v.(models.CandidateResponse)
	}
	if v, ok := updMap["response_feedback"]; ok {
		app.ResponseFeedback = v.(string)
	}
}

type fakeCandidateStore struct {
	candidates map[string]*dbmodels.Candidate
}

func (f *fakeCandidateStore) Create(rec dbmodels.Candidate) (string, error) {
	f.candidates[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeCandidateStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.candidates[id]
	if !ok {
		return errors.New("candidate not found")
	}
	if v, exist := updMap["status"]; exist {
		rec.Status = v.(models.CandidateStatus)
	}
	return nil
}

func (f *fakeCandidateStore) GetByID(id string) (*dbmodels.Candidate, error) {
	rec, ok := f.candidates[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeCandidateStore) GetByEmail(email string) (*dbmodels.Candidate, error) {
	for _, rec := range f.candidates {
		if rec.Email == email {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCandidateStore) List(search string) ([]dbmodels.Candidate, error) {
	return nil, nil
}

type fakeJobStore struct {
	jobs map[string]*dbmodels.Job
}

func (f *fakeJobStore) Create(rec dbmodels.Job) (string, error) { return rec.ID, nil }
func (f *fakeJobStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeJobStore) GetByID(id string) (*dbmodels.Job, error) {
	rec, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeJobStore) List(filter dbmodels.JobFilter) ([]dbmodels.Job, error) { return nil, nil }
func (f *fakeJobStore) Delete(id string) error                                 { return nil }

type fakeInterviewStore struct {
	interviews map[string]*dbmodels.Interview
}

func (f *fakeInterviewStore) Create(rec dbmodels.Interview) (string, error) {
	f.interviews[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeInterviewStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.interviews[id]
	if !ok {
		return errors.New("interview not found")
	}
	if v, exist := updMap["status"]; exist {
		rec.Status = v.(models.InterviewStatus)
	}
	if v, exist := updMap["feedback_result"]; exist {
		rec.FeedbackResult = v.(models.FeedbackResult)
	}
	if v, exist := updMap["meeting_id"]; exist {
		rec.MeetingID = v.(string)
	}
	if v, exist := updMap["meeting_link"]; exist {
		rec.MeetingLink = v.(string)
	}
	return nil
}

func (f *fakeInterviewStore) GetByID(id string) (*dbmodels.Interview, error) {
	rec, ok := f.interviews[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeInterviewStore) ListByApplication(applicationID string) ([]dbmodels.Interview, error) {
	return nil, nil
}

func (f *fakeInterviewStore) HasPending(applicationID string) (bool, error) { return false, nil }

type fakeCompanyStore struct{}

func (f fakeCompanyStore) Get() (*dbmodels.CompanyProfile, error) {
	return &dbmodels.CompanyProfile{Name: "Acme", Signatory: "Jane Doe"}, nil
}
func (f fakeCompanyStore) Save(rec dbmodels.CompanyProfile) error { return nil }

// fakeEffectStore applies the same mutations the transactional store would,
// against the in-memory fakes.
type fakeEffectStore struct {
	apps       *fakeAppStore
	candidates *fakeCandidateStore
	history    []dbmodels.ApplicationHistory
	failNext   bool
}

func (f *fakeEffectStore) ApplyStageEffect(applicationID string, appUpd map[string]interface{}, candidateID string, candUpd map[string]interface{}, history *dbmodels.ApplicationHistory) error {
	if f.failNext {
		f.failNext = false
		return errors.New("storage failure")
	}
	if len(appUpd) != 0 {
		if err := f.apps.Update(applicationID, appUpd); err != nil {
			return err
		}
	}
	if candidateID != "" && len(candUpd) != 0 {
		if err := f.candidates.Update(candidateID, candUpd); err != nil {
			return err
		}
	}
	if history != nil {
		f.history = append(f.history, *history)
	}
	return nil
}

type sentMessage struct {
	TemplateKey string
	Recipient   string
	Data        models.TemplateData
}

type fakeNotifier struct {
	sent []sentMessage
	err  error
}

func (f *fakeNotifier) Enqueue(templateKey, recipient string, data models.TemplateData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{TemplateKey: templateKey, Recipient: recipient, Data: data})
	return nil
}

func (f *fakeNotifier) EnqueueWithAttachment(templateKey, recipient string, data models.TemplateData, attachmentKey string) error {
	return f.Enqueue(templateKey, recipient, data)
}

func (f *fakeNotifier) ListTemplates() ([]dbmodels.MessageTemplate, error) { return nil, nil }
func (f *fakeNotifier) UpdateTemplate(key string, data notify.TemplateUpdate) error {
	return nil
}

type fakeMeetings struct {
	handle *teams.MeetingHandle
	calls  int
}

func (f *fakeMeetings) CreateOrUpdateMeeting(ctx context.Context, meetingID, subject string, start, end time.Time, organizer string, attendees []string) *teams.MeetingHandle {
	f.calls++
	return f.handle
}

type fakePortal struct {
	ensured []string
	fail    bool
}

func (f *fakePortal) EnsureAccount(candidateID string) (portal.ProvisionResult, error) {
	if f.fail {
		return portal.ProvisionResult{}, errors.New("portal unavailable")
	}
	f.ensured = append(f.ensured, candidateID)
	return portal.ProvisionResult{Success: true, Created: true, PortalURL: "http://portal"}, nil
}

func (f *fakePortal) ResendInvitation(candidateID string) (portal.ProvisionResult, error) {
	return portal.ProvisionResult{}, nil
}
func (f *fakePortal) Login(email, password string) (string, error) { return "", nil }
func (f *fakePortal) ValidateSession(token string) (string, error) { return "", nil }
func (f *fakePortal) Logout(token string) error                    { return nil }

type fixture struct {
	handler    impl
	apps       *fakeAppStore
	candidates *fakeCandidateStore
	jobs       *fakeJobStore
	interviews *fakeInterviewStore
	effects    *fakeEffectStore
	notifier   *fakeNotifier
	meetings   *fakeMeetings
	portal     *fakePortal
}

func newFixture() *fixture {
	apps := &fakeAppStore{apps: map[string]*dbmodels.Application{}}
	candidates := &fakeCandidateStore{candidates: map[string]*dbmodels.Candidate{}}
	jobs := &fakeJobStore{jobs: map[string]*dbmodels.Job{}}
	interviews := &fakeInterviewStore{interviews: map[string]*dbmodels.Interview{}}
	effects := &fakeEffectStore{apps: apps, candidates: candidates}
	notifier := &fakeNotifier{}
	meetings := &fakeMeetings{}
	portalFake := &fakePortal{}
	return &fixture{
		handler: impl{
			appStore:       apps,
			candidateStore: candidates,
			jobStore:       jobs,
			interviewStore: interviews,
			companyStore:   fakeCompanyStore{},
			effectStore:    effects,
			notifier:       notifier,
			meetings:       meetings,
			portal:         portalFake,
			publicURL:      "http://ats.local",
		},
		apps:       apps,
		candidates: candidates,
		jobs:       jobs,
		interviews: interviews,
		effects:    effects,
		notifier:   notifier,
		meetings:   meetings,
		portal:     portalFake,
	}
}

func (f *fixture) seedCandidate(id string) {
	f.candidates.candidates[id] = &dbmodels.Candidate{
		BaseModel: dbmodels.BaseModel{ID: id},
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     id + "@example.com",
		Status:    models.CandidateStatusAvailable,
	}
}

func (f *fixture) seedJob(id string, status models.JobStatus) {
	f.jobs.jobs[id] = &dbmodels.Job{
		BaseModel: dbmodels.BaseModel{ID: id},
		Title:     "Backend Engineer",
		Status:    status,
	}
}

func (f *fixture) seedApplication(id string, stage models.ApplicationStage) *dbmodels.Application {
	app := &dbmodels.Application{
		BaseModel:         dbmodels.BaseModel{ID: id},
		JobID:             "job-1",
		CandidateID:       "cand-1",
		Stage:             stage,
		CandidateResponse: models.ResponsePending,
		ResponseToken:     "token-" + id,
		Job:               &dbmodels.Job{BaseModel: dbmodels.BaseModel{ID: "job-1"}, Title: "Backend Engineer"},
		Candidate:         &dbmodels.Candidate{BaseModel: dbmodels.BaseModel{ID: "cand-1"}, FirstName: "Ada", Email: "ada@example.com"},
	}
	f.apps.apps[id] = app
	return app
}

func TestHandleApplicationCreated(t *testing.T) {
	t.Run(`creates at applied with a response token`, func(t *testing.T) {
		f := newFixture()
		f.seedJob("job-1", models.JobStatusActive)
		f.seedCandidate("cand-1")

		id, err := f.handler.HandleApplicationCreated("cand-1", "job-1", "referral")
		require.NoError(t, err)
		app := f.apps.apps[id]
		require.Equal(t, models.StageApplied, app.Stage)
		require.NotEmpty(t, app.ResponseToken)
		require.Equal(t, models.ResponsePending, app.CandidateResponse)
		require.Equal(t, models.CandidateStatusInterviewing, f.candidates.candidates["cand-1"].Status)

		require.Len(t, f.notifier.sent, 1)
		require.Equal(t, models.TplJobDescription, f.notifier.sent[0].TemplateKey)
		require.Contains(t, f.notifier.sent[0].Data.ResponseLink, app.ResponseToken)
	})

	t.Run(`rejects an inactive job`, func(t *testing.T) {
		f := newFixture()
		f.seedJob("job-1", models.JobStatusClosed)
		f.seedCandidate("cand-1")

		_, err := f.handler.HandleApplicationCreated("cand-1", "job-1", "")
		require.Error(t, err)
		require.Empty(t, f.notifier.sent)
	})

	t.Run(`rejects a duplicate application`, func(t *testing.T) {
		f := newFixture()
		f.seedJob("job-1", models.JobStatusActive)
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageApplied)

		_, err := f.handler.HandleApplicationCreated("cand-1", "job-1", "")
		require.Error(t, err)
	})

	t.Run(`notification failure does not fail creation`, func(t *testing.T) {
		f := newFixture()
		f.seedJob("job-1", models.JobStatusActive)
		f.seedCandidate("cand-1")
		f.notifier.err = errors.New("template missing")

		id, err := f.handler.HandleApplicationCreated("cand-1", "job-1", "")
		require.NoError(t, err)
		require.NotEmpty(t, id)
	})
}

func TestHandleCandidateResponded(t *testing.T) {
	t.Run(`unknown token is a not found error`, func(t *testing.T) {
		f := newFixture()
		_, err := f.handler.HandleCandidateResponded("nope", models.ResponseInterested, "")
		require.Error(t, err)
		require.True(t, IsDomainError(err))
	})

	t.Run(`interested moves to shortlisted and provisions the portal`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageApplied)

		result, err := f.handler.HandleCandidateResponded("token-app-1", models.ResponseInterested, "looking forward")
		require.NoError(t, err)
		require.False(t, result.AlreadyResponded)
		require.Equal(t, models.StageShortlisted, result.Stage)
		require.Equal(t, models.StageShortlisted, f.apps.apps["app-1"].Stage)
		require.Equal(t, models.CandidateStatusInterested, f.candidates.candidates["cand-1"].Status)
		require.Equal(t, []string{"cand-1"}, f.portal.ensured)
		require.Equal(t, "http://portal", result.PortalURL)
	})

	t.Run(`not interested rejects the application but keeps the candidate as not interested`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageApplied)

		result, err := f.handler.HandleCandidateResponded("token-app-1", models.ResponseNotInterested, "")
		require.NoError(t, err)
		require.Equal(t, models.StageRejected, result.Stage)
		require.Equal(t, models.CandidateStatusNotInterested, f.candidates.candidates["cand-1"].Status)
		require.Empty(t, f.portal.ensured)
	})

	t.Run(`second click is idempotent`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageApplied)

		_, err := f.handler.HandleCandidateResponded("token-app-1", models.ResponseInterested, "")
		require.NoError(t, err)
		historyLen := len(f.effects.history)

		result, err := f.handler.HandleCandidateResponded("token-app-1", models.ResponseNotInterested, "")
		require.NoError(t, err)
		require.True(t, result.AlreadyResponded)
		require.Equal(t, models.ResponseInterested, result.Response)
		require.Equal(t, models.StageShortlisted, f.apps.apps["app-1"].Stage)
		require.Len(t, f.effects.history, historyLen)
		// the repeated click still reports the portal for an interested candidate
		require.Equal(t, "http://portal", result.PortalURL)
	})

	t.Run(`portal failure does not fail the response`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageApplied)
		f.portal.fail = true

		result, err := f.handler.HandleCandidateResponded("token-app-1", models.ResponseInterested, "")
		require.NoError(t, err)
		require.Equal(t, models.StageShortlisted, result.Stage)
		require.Empty(t, result.PortalURL)
	})

	t.Run(`response against a terminal stage is rejected`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageJoined)

		_, err := f.handler.HandleCandidateResponded("token-app-1", models.ResponseInterested, "")
		require.Error(t, err)
		require.IsType(t, InvalidTransitionError{}, err)
	})
}

func TestHandleInterviewScheduled(t *testing.T) {
	seedInterview := func(f *fixture, mode models.InterviewMode, interviewerEmail string) {
		f.interviews.interviews["int-1"] = &dbmodels.Interview{
			BaseModel:        dbmodels.BaseModel{ID: "int-1"},
			ApplicationID:    "app-1",
			InterviewRound:   models.RoundL1,
			Mode:             mode,
			ScheduledDate:    time.Now().Add(24 * time.Hour),
			DurationMin:      45,
			InterviewerName:  "Grace Hopper",
			InterviewerEmail: interviewerEmail,
			ScheduledBy:      "recruiter@example.com",
			Status:           models.InterviewStatusScheduled,
		}
	}

	t.Run(`moves the application to the round stage`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageShortlisted)
		seedInterview(f, models.ModeOffline, "grace@example.com")

		require.NoError(t, f.handler.HandleInterviewScheduled("int-1"))
		require.Equal(t, models.StageL1Scheduled, f.apps.apps["app-1"].Stage)
		require.Equal(t, 0, f.meetings.calls)

		keys := []string{}
		for _, msg := range f.notifier.sent {
			keys = append(keys, msg.TemplateKey)
		}
		require.Contains(t, keys, models.TplInterviewCandidate)
		require.Contains(t, keys, models.TplInterviewInterviewer)
		require.Contains(t, keys, models.TplInterviewConfirmation)
	})

	t.Run(`teams mode requests a meeting and stores the link`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageShortlisted)
		seedInterview(f, models.ModeTeams, "grace@example.com")
		f.meetings.handle = &teams.MeetingHandle{ID: "meet-1", JoinURL: "https://teams/meet-1"}

		require.NoError(t, f.handler.HandleInterviewScheduled("int-1"))
		require.Equal(t, 1, f.meetings.calls)
		require.Equal(t, "https://teams/meet-1", f.interviews.interviews["int-1"].MeetingLink)
		for _, msg := range f.notifier.sent {
			if msg.TemplateKey == models.TplInterviewCandidate {
				require.Equal(t, "https://teams/meet-1", msg.Data.MeetingLink)
			}
		}
	})

	t.Run(`meeting failure still schedules`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageShortlisted)
		seedInterview(f, models.ModeTeams, "grace@example.com")
		f.meetings.handle = nil

		require.NoError(t, f.handler.HandleInterviewScheduled("int-1"))
		require.Equal(t, models.StageL1Scheduled, f.apps.apps["app-1"].Stage)
		require.Empty(t, f.interviews.interviews["int-1"].MeetingLink)
	})

	t.Run(`unknown interviewer email skips only that notification`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageShortlisted)
		seedInterview(f, models.ModeOffline, "")

		require.NoError(t, f.handler.HandleInterviewScheduled("int-1"))
		for _, msg := range f.notifier.sent {
			require.NotEqual(t, models.TplInterviewInterviewer, msg.TemplateKey)
		}
	})

	t.Run(`invalid stage move is rejected`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageJoined)
		seedInterview(f, models.ModeOffline, "grace@example.com")

		err := f.handler.HandleInterviewScheduled("int-1")
		require.Error(t, err)
		require.IsType(t, InvalidTransitionError{}, err)
	})
}

func TestHandleInterviewFeedback(t *testing.T) {
	seedInterview := func(f *fixture, round models.InterviewRound) {
		f.interviews.interviews["int-1"] = &dbmodels.Interview{
			BaseModel:      dbmodels.BaseModel{ID: "int-1"},
			ApplicationID:  "app-1",
			InterviewRound: round,
			Mode:           models.ModeOffline,
			Status:         models.InterviewStatusScheduled,
		}
	}

	t.Run(`l1 hire advances to l2`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageL1Scheduled)
		seedInterview(f, models.RoundL1)

		require.NoError(t, f.handler.HandleInterviewFeedback("int-1", "hire", "solid"))
		require.Equal(t, models.StageL2Scheduled, f.apps.apps["app-1"].Stage)
		require.Equal(t, models.InterviewStatusCompleted, f.interviews.interviews["int-1"].Status)
		require.Equal(t, models.FeedbackSelected, f.interviews.interviews["int-1"].FeedbackResult)
	})

	t.Run(`hr hire releases the offer`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageHRScheduled)
		seedInterview(f, models.RoundHR)

		require.NoError(t, f.handler.HandleInterviewFeedback("int-1", "hire", ""))
		require.Equal(t, models.StageOfferReleased, f.apps.apps["app-1"].Stage)
		require.Equal(t, models.CandidateStatusOffered, f.candidates.candidates["cand-1"].Status)
		require.Len(t, f.notifier.sent, 1)
		require.Equal(t, models.TplOfferExtended, f.notifier.sent[0].TemplateKey)
	})

	t.Run(`reject ends the application`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageL2Scheduled)
		seedInterview(f, models.RoundL2)

		require.NoError(t, f.handler.HandleInterviewFeedback("int-1", "no hire", ""))
		require.Equal(t, models.StageRejected, f.apps.apps["app-1"].Stage)
		require.Equal(t, models.CandidateStatusRejected, f.candidates.candidates["cand-1"].Status)
		require.Len(t, f.notifier.sent, 1)
		require.Equal(t, models.TplRejection, f.notifier.sent[0].TemplateKey)
	})
}

func TestOfferOutcomes(t *testing.T) {
	t.Run(`accepted joins unconditionally`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		// deliberately not at Offer Released: terminal offer actions bypass the table
		f.seedApplication("app-1", models.StageSelected)

		require.NoError(t, f.handler.HandleOfferAccepted("app-1"))
		require.Equal(t, models.StageJoined, f.apps.apps["app-1"].Stage)
		require.Equal(t, models.CandidateStatusJoined, f.candidates.candidates["cand-1"].Status)
		require.Len(t, f.notifier.sent, 1)
		require.Equal(t, models.TplJoinedWelcome, f.notifier.sent[0].TemplateKey)
	})

	t.Run(`declined closes as not joined`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageOfferReleased)

		require.NoError(t, f.handler.HandleOfferDeclined("app-1"))
		require.Equal(t, models.StageNotJoined, f.apps.apps["app-1"].Stage)
		require.Equal(t, models.CandidateStatusNotJoined, f.candidates.candidates["cand-1"].Status)
		require.Equal(t, models.TplNotJoinedFollowup, f.notifier.sent[0].TemplateKey)
	})
}

func TestChangeStage(t *testing.T) {
	t.Run(`valid manual move`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageApplied)

		require.NoError(t, f.handler.ChangeStage("app-1", models.StageUnderReview))
		require.Equal(t, models.StageUnderReview, f.apps.apps["app-1"].Stage)
	})

	t.Run(`invalid move is rejected`, func(t *testing.T) {
		f := newFixture()
		f.seedCandidate("cand-1")
		f.seedApplication("app-1", models.StageApplied)

		err := f.handler.ChangeStage("app-1", models.StageJoined)
		require.Error(t, err)
		require.IsType(t, InvalidTransitionError{}, err)
		require.Equal(t, models.StageApplied, f.apps.apps["app-1"].Stage)
	})
}

func TestBulkChangeStage(t *testing.T) {
	seed := func(f *fixture) {
		f.seedCandidate("cand-1")
		a := f.seedApplication("app-1", models.StageApplied)
		b := f.seedApplication("app-2", models.StageJoined)
		a.ResponseToken, b.ResponseToken = "t1", "t2"
	}

	t.Run(`without force invalid items are skipped and reported`, func(t *testing.T) {
		f := newFixture()
		seed(f)

		result, err := f.handler.BulkChangeStage([]string{"app-1", "app-2"}, models.StageRejected, false)
		require.NoError(t, err)
		require.Equal(t, []string{"app-1"}, result.Updated)
		require.Len(t, result.Skipped, 1)
		require.Equal(t, "app-2", result.Skipped[0].ID)
		require.Equal(t, models.StageJoined, result.Skipped[0].From)
		require.Equal(t, models.StageJoined, f.apps.apps["app-2"].Stage)
	})

	t.Run(`force bypasses validation`, func(t *testing.T) {
		f := newFixture()
		seed(f)

		result, err := f.handler.BulkChangeStage([]string{"app-1", "app-2"}, models.StageRejected, true)
		require.NoError(t, err)
		require.Len(t, result.Updated, 2)
		require.Empty(t, result.Skipped)
		require.Equal(t, models.StageRejected, f.apps.apps["app-2"].Stage)
	})
}
