package portal

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"ats-backend/config"
	candidatestore "ats-backend/lib/candidate/store"
	"ats-backend/lib/notify"
	sessionstore "ats-backend/lib/portal/session-store"
	"ats-backend/models"

	"ats-backend/db"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	// EnsureAccount is idempotent: an already active account is a no-op
	// success, so it can be called from both the first-interest response and
	// an explicit resend action.
	EnsureAccount(candidateID string) (result ProvisionResult, err error)
	ResendInvitation(candidateID string) (result ProvisionResult, err error)
	Login(email, password string) (token string, err error)
	ValidateSession(token string) (candidateID string, err error)
	Logout(token string) error
}

type ProvisionResult struct {
	Success   bool   `json:"success"`
	Created   bool   `json:"created"`
	Message   string `json:"message"`
	PortalURL string `json:"portal_url"`
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		candidateStore: candidatestore.NewInstance(db.DB),
		sessionStore:   sessionstore.NewInstance(db.DB),
		notifier:       notify.Instance,
		portalURL:      config.Conf.Portal.BaseURL,
		sessionTTL:     time.Second * time.Duration(config.Conf.Portal.SessionTTLInSec),
	}
}

type impl struct {
	candidateStore candidatestore.Provider
	sessionStore   sessionstore.Provider
	notifier       notify.Provider
	portalURL      string
	sessionTTL     time.Duration
}

func (i impl) EnsureAccount(candidateID string) (ProvisionResult, error) {
	logger := log.WithField("candidate_id", candidateID)
	rec, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		logger.WithError(err).Error("failed to load candidate for provisioning")
		return ProvisionResult{}, err
	}
	if rec == nil {
		return ProvisionResult{}, errors.New("candidate not found")
	}
	if rec.IsPortalActive {
		return ProvisionResult{
			Success:   true,
			Message:   "portal account is already active",
			PortalURL: i.portalURL,
		}, nil
	}
	return i.provision(*rec, logger)
}

func (i impl) ResendInvitation(candidateID string) (ProvisionResult, error) {
	logger := log.WithField("candidate_id", candidateID)
	rec, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		logger.WithError(err).Error("failed to load candidate for invitation resend")
		return ProvisionResult{}, err
	}
	if rec == nil {
		return ProvisionResult{}, errors.New("candidate not found")
	}
	// resend always issues a fresh temporary credential
	return i.provision(*rec, logger)
}

func (i impl) provision(rec dbmodels.Candidate, logger *log.Entry) (ProvisionResult, error) {
	tempPassword := generateTempPassword()
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.WithError(err).Error("failed to hash portal credential")
		return ProvisionResult{}, err
	}
	updMap := map[string]interface{}{
		"password_hash":    string(hash),
		"is_portal_active": true,
	}
	if err = i.candidateStore.Update(rec.ID, updMap); err != nil {
		logger.WithError(err).Error("failed to activate portal account")
		return ProvisionResult{}, err
	}
	// welcome email carries the temporary credential; delivery is best-effort
	err = i.notifier.Enqueue(models.TplPortalWelcome, rec.Email, models.TemplateData{
		CandidateName:  rec.GetFullName(),
		PortalLogin:    rec.Email,
		PortalPassword: tempPassword,
		PortalLink:     i.portalURL,
	})
	if err != nil {
		logger.WithError(err).Error("failed to enqueue portal welcome email")
	}
	return ProvisionResult{
		Success:   true,
		Created:   true,
		Message:   "portal account created",
		PortalURL: i.portalURL,
	}, nil
}

func (i impl) Login(email, password string) (token string, err error) {
	logger := log.WithField("email", email)
	rec, err := i.candidateStore.GetByEmail(email)
	if err != nil {
		logger.WithError(err).Error("failed to load candidate on login")
		return "", err
	}
	if rec == nil || !rec.IsPortalActive || rec.PasswordHash == "" {
		return "", errors.New("invalid login or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return "", errors.New("invalid login or password")
	}
	token = strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	_, err = i.sessionStore.Create(dbmodels.CandidateSession{
		CandidateID: rec.ID,
		Token:       token,
		ExpiresAt:   time.Now().Add(i.sessionTTL),
	})
	if err != nil {
		logger.WithError(err).Error("failed to create portal session")
		return "", err
	}
	return token, nil
}

func (i impl) ValidateSession(token string) (candidateID string, err error) {
	rec, err := i.sessionStore.GetByToken(token)
	if err != nil {
		return "", err
	}
	// a session deleted mid-validation by the sweep is the same outcome as
	// one that never existed
	if rec == nil || rec.IsExpired(time.Now()) {
		return "", errors.New("invalid session")
	}
	return rec.CandidateID, nil
}

func (i impl) Logout(token string) error {
	rec, err := i.sessionStore.GetByToken(token)
	if err != nil || rec == nil {
		return err
	}
	return i.sessionStore.DeleteByCandidate(rec.CandidateID)
}

func generateTempPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
