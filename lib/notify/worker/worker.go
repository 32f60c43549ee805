package notifyworker

import (
	"context"
	"time"

	"ats-backend/config"
	"ats-backend/db"
	"ats-backend/lib/notify/mailer"
	outboxstore "ats-backend/lib/notify/outbox-store"
	"ats-backend/lib/smtp"
	baseworker "ats-backend/lib/utils/base-worker"
	"ats-backend/lib/utils/helpers"
	dbmodels "ats-backend/models/db"
	s3client "ats-backend/s3"
)

const (
	batchSize   = 50
	maxAttempts = 5
)

// StartWorker drains the notification outbox. Delivery failures mark the
// row failed after maxAttempts; nothing here ever propagates back to the
// request that enqueued the message.
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:    *baseworker.NewInstance("NotifyWorker", 15*time.Second, 30*time.Second),
		outboxStore: outboxstore.NewInstance(db.DB),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	outboxStore outboxstore.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.outboxStore.ListPending(batchSize)
	if err != nil {
		logger.WithError(err).Error("failed to load pending notifications")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		i.send(ctx, rec)
	}
}

func (i impl) send(ctx context.Context, rec dbmodels.Notification) {
	logger := i.GetLogger().
		WithField("notification_id", rec.ID).
		WithField("template_key", rec.TemplateKey)
	var err error
	if rec.AttachmentKey != "" {
		err = i.sendWithAttachment(ctx, rec)
	} else {
		err = smtp.Instance.SendEMail(config.Conf.Smtp.SenderEmail, rec.Recipient, rec.Body, rec.Subject)
	}
	if err != nil {
		logger.WithError(err).Error("failed to deliver notification")
		updMap := map[string]interface{}{
			"attempts":   rec.Attempts + 1,
			"last_error": err.Error(),
		}
		if rec.Attempts+1 >= maxAttempts {
			updMap["status"] = dbmodels.NotificationStatusFailed
		}
		if updErr := i.outboxStore.Update(rec.ID, updMap); updErr != nil {
			logger.WithError(updErr).Error("failed to record delivery failure")
		}
		return
	}
	now := time.Now()
	err = i.outboxStore.Update(rec.ID, map[string]interface{}{
		"status":  dbmodels.NotificationStatusSent,
		"sent_at": &now,
	})
	if err != nil {
		logger.WithError(err).Error("failed to mark notification as sent")
	}
}

func (i impl) sendWithAttachment(ctx context.Context, rec dbmodels.Notification) error {
	body, err := s3client.Instance.GetObject(ctx, rec.AttachmentKey)
	if err != nil {
		return err
	}
	return mailer.SendWithAttachment(rec.Recipient, rec.Subject, rec.Body, "offer_letter.pdf", body)
}
