package notify

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"ats-backend/db"
	outboxstore "ats-backend/lib/notify/outbox-store"
	templatestore "ats-backend/lib/notify/template-store"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

// Provider resolves a template by key, fills placeholders and enqueues the
// message on the outbox. Delivery is owned by the worker; callers treat
// every method as best-effort.
type Provider interface {
	Enqueue(templateKey, recipient string, data models.TemplateData) error
	EnqueueWithAttachment(templateKey, recipient string, data models.TemplateData, attachmentKey string) error
	ListTemplates() (list []dbmodels.MessageTemplate, err error)
	UpdateTemplate(key string, data TemplateUpdate) error
}

type TemplateUpdate struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	IsActive bool   `json:"is_active"`
}

func (t TemplateUpdate) Validate() error {
	if t.Subject == "" {
		return errors.New("template subject is required")
	}
	if t.Body == "" {
		return errors.New("template body is required")
	}
	if _, err := template.New("probe").Parse(t.Subject); err != nil {
		return errors.Wrap(err, "template subject is malformed")
	}
	if _, err := template.New("probe").Parse(t.Body); err != nil {
		return errors.Wrap(err, "template body is malformed")
	}
	return nil
}

var Instance Provider

func NewHandler() {
	h := &impl{
		templateStore: templatestore.NewInstance(db.DB),
		outboxStore:   outboxstore.NewInstance(db.DB),
	}
	if err := h.seedDefaults(); err != nil {
		log.WithError(err).Error("failed to seed default message templates")
	}
	Instance = h
}

type impl struct {
	templateStore templatestore.Provider
	outboxStore   outboxstore.Provider
}

func (i impl) Enqueue(templateKey, recipient string, data models.TemplateData) error {
	return i.EnqueueWithAttachment(templateKey, recipient, data, "")
}

func (i impl) EnqueueWithAttachment(templateKey, recipient string, data models.TemplateData, attachmentKey string) error {
	logger := log.WithFields(log.Fields{
		"template_key": templateKey,
		"recipient":    recipient,
	})
	if recipient == "" {
		logger.Warn("notification skipped, no recipient address")
		return errors.New("no recipient address")
	}
	rec, err := i.templateStore.GetByKey(templateKey)
	if err != nil {
		logger.WithError(err).Error("failed to load message template")
		return err
	}
	if rec == nil || !rec.IsActive {
		logger.Warn("message template is unknown or inactive")
		return errors.Errorf("message template %v is unknown or inactive", templateKey)
	}
	subject, err := bind(rec.Subject, data)
	if err != nil {
		logger.WithError(err).Error("failed to bind template subject")
		return err
	}
	body, err := bind(rec.Body, data)
	if err != nil {
		logger.WithError(err).Error("failed to bind template body")
		return err
	}
	_, err = i.outboxStore.Create(dbmodels.Notification{
		TemplateKey:   templateKey,
		Recipient:     recipient,
		Subject:       subject,
		Body:          body,
		AttachmentKey: attachmentKey,
		Status:        dbmodels.NotificationStatusPending,
	})
	if err != nil {
		logger.WithError(err).Error("failed to enqueue notification")
		return err
	}
	return nil
}

func (i impl) ListTemplates() (list []dbmodels.MessageTemplate, err error) {
	list, err = i.templateStore.List()
	if err != nil {
		log.WithError(err).Error("failed to list message templates")
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateTemplate(key string, data TemplateUpdate) error {
	rec, err := i.templateStore.GetByKey(key)
	if err != nil {
		log.WithError(err).WithField("template_key", key).Error("failed to load message template")
		return err
	}
	if rec == nil {
		return errors.Errorf("message template %v not found", key)
	}
	return i.templateStore.Update(rec.ID, map[string]interface{}{
		"subject":   data.Subject,
		"body":      data.Body,
		"is_active": data.IsActive,
	})
}

func bind(tmpl string, data models.TemplateData) (string, error) {
	tpl, err := template.New("msg_body").Parse(tmpl)
	if err != nil {
		return "", err
	}
	buf := new(bytes.Buffer)
	err = tpl.Execute(buf, data)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
