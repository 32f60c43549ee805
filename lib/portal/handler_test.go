package portal

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ats-backend/lib/notify"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

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
	if v, exist := updMap["password_hash"]; exist {
		rec.PasswordHash = v.(string)
	}
	if v, exist := updMap["is_portal_active"]; exist {
		rec.IsPortalActive = v.(bool)
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

func (f *fakeCandidateStore) List(search string) ([]dbmodels.Candidate, error) { return nil, nil }

type fakeSessionStore struct {
	sessions map[string]*dbmodels.CandidateSession
}

func (f *fakeSessionStore) Create(rec dbmodels.CandidateSession) (string, error) {
	if rec.ID == "" {
		rec.ID = rec.Token
	}
	f.sessions[rec.Token] = &rec
	return rec.ID, nil
}

func (f *fakeSessionStore) GetByToken(token string) (*dbmodels.CandidateSession, error) {
	rec, ok := f.sessions[token]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeSessionStore) DeleteExpired(now time.Time) (int64, error) {
	var deleted int64
	for token, rec := range f.sessions {
		if rec.IsExpired(now) {
			delete(f.sessions, token)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeSessionStore) DeleteByCandidate(candidateID string) error {
	for token, rec := range f.sessions {
		if rec.CandidateID == candidateID {
			delete(f.sessions, token)
		}
	}
	return nil
}

type fakeNotifier struct {
	sent []models.TemplateData
	keys []string
}

func (f *fakeNotifier) Enqueue(templateKey, recipient string, data models.TemplateData) error {
	f.keys = append(f.keys, templateKey)
	f.sent = append(f.sent, data)
	return nil
}

func (f *fakeNotifier) EnqueueWithAttachment(templateKey, recipient string, data models.TemplateData, attachmentKey string) error {
	return f.Enqueue(templateKey, recipient, data)
}

func (f *fakeNotifier) ListTemplates() ([]dbmodels.MessageTemplate, error)          { return nil, nil }
func (f *fakeNotifier) UpdateTemplate(key string, data notify.TemplateUpdate) error { return nil }

func newFixture() (impl, *fakeCandidateStore, *fakeSessionStore, *fakeNotifier) {
	candidates := &fakeCandidateStore{candidates: map[string]*dbmodels.Candidate{}}
	sessions := &fakeSessionStore{sessions: map[string]*dbmodels.CandidateSession{}}
	notifier := &fakeNotifier{}
	h := impl{
		candidateStore: candidates,
		sessionStore:   sessions,
		notifier:       notifier,
		portalURL:      "http://portal",
		sessionTTL:     time.Hour,
	}
	return h, candidates, sessions, notifier
}

func seedCandidate(candidates *fakeCandidateStore, id string, active bool) {
	candidates.candidates[id] = &dbmodels.Candidate{
		BaseModel:      dbmodels.BaseModel{ID: id},
		FirstName:      "Ada",
		Email:          id + "@example.com",
		IsPortalActive: active,
	}
}

func TestEnsureAccount(t *testing.T) {
	t.Run(`first call provisions and mails the credential`, func(t *testing.T) {
		h, candidates, _, notifier := newFixture()
		seedCandidate(candidates, "cand-1", false)

		result, err := h.EnsureAccount("cand-1")
		require.NoError(t, err)
		require.True(t, result.Success)
		require.True(t, result.Created)
		require.Equal(t, "http://portal", result.PortalURL)

		rec := candidates.candidates["cand-1"]
		require.True(t, rec.IsPortalActive)
		require.NotEmpty(t, rec.PasswordHash)

		require.Equal(t, []string{models.TplPortalWelcome}, notifier.keys)
		require.NotEmpty(t, notifier.sent[0].PortalPassword)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(notifier.sent[0].PortalPassword)))
	})

	t.Run(`active account is a no-op success`, func(t *testing.T) {
		h, candidates, _, notifier := newFixture()
		seedCandidate(candidates, "cand-1", true)
		candidates.candidates["cand-1"].PasswordHash = "existing"

		result, err := h.EnsureAccount("cand-1")
		require.NoError(t, err)
		require.True(t, result.Success)
		require.False(t, result.Created)
		require.Equal(t, "existing", candidates.candidates["cand-1"].PasswordHash)
		require.Empty(t, notifier.keys)
	})

	t.Run(`unknown candidate fails`, func(t *testing.T) {
		h, _, _, _ := newFixture()
		_, err := h.EnsureAccount("nope")
		require.Error(t, err)
	})
}

func TestResendInvitation(t *testing.T) {
	t.Run(`resend rotates the credential even for an active account`, func(t *testing.T) {
		h, candidates, _, notifier := newFixture()
		seedCandidate(candidates, "cand-1", true)
		candidates.candidates["cand-1"].PasswordHash = "old"

		result, err := h.ResendInvitation("cand-1")
		require.NoError(t, err)
		require.True(t, result.Created)
		require.NotEqual(t, "old", candidates.candidates["cand-1"].PasswordHash)
		require.Equal(t, []string{models.TplPortalWelcome}, notifier.keys)
	})
}

func TestLoginAndSessions(t *testing.T) {
	activate := func(h impl, candidates *fakeCandidateStore) string {
		seedCandidate(candidates, "cand-1", false)
		_, err := h.EnsureAccount("cand-1")
		if err != nil {
			panic(err)
		}
		return "cand-1"
	}

	t.Run(`login with the issued credential creates a session`, func(t *testing.T) {
		h, candidates, sessions, notifier := newFixture()
		id := activate(h, candidates)
		password := notifier.sent[0].PortalPassword

		token, err := h.Login(id+"@example.com", password)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Len(t, sessions.sessions, 1)

		candidateID, err := h.ValidateSession(token)
		require.NoError(t, err)
		require.Equal(t, id, candidateID)
	})

	t.Run(`wrong password is rejected`, func(t *testing.T) {
		h, candidates, _, _ := newFixture()
		id := activate(h, candidates)

		_, err := h.Login(id+"@example.com", "wrong")
		require.Error(t, err)
	})

	t.Run(`inactive account cannot log in`, func(t *testing.T) {
		h, candidates, _, _ := newFixture()
		seedCandidate(candidates, "cand-1", false)

		_, err := h.Login("cand-1@example.com", "anything")
		require.Error(t, err)
	})

	t.Run(`expired session is invalid`, func(t *testing.T) {
		h, candidates, sessions, notifier := newFixture()
		id := activate(h, candidates)
		token, err := h.Login(id+"@example.com", notifier.sent[0].PortalPassword)
		require.NoError(t, err)

		sessions.sessions[token].ExpiresAt = time.Now().Add(-time.Minute)
		_, err = h.ValidateSession(token)
		require.Error(t, err)
	})

	t.Run(`logout removes the candidate sessions`, func(t *testing.T) {
		h, candidates, sessions, notifier := newFixture()
		id := activate(h, candidates)
		token, err := h.Login(id+"@example.com", notifier.sent[0].PortalPassword)
		require.NoError(t, err)

		require.NoError(t, h.Logout(token))
		require.Empty(t, sessions.sessions)
		_, err = h.ValidateSession(token)
		require.Error(t, err)
	})
}
