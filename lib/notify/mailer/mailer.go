package mailer

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"

	"ats-backend/config"
)

// SendWithAttachment delivers a message with a file attached. Plain
// notifications go through lib/smtp; gomail is only pulled in for the
// multipart case.
func SendWithAttachment(to, subject, body, fileName string, attachment []byte) error {
	cfg := config.Conf.Smtp
	if cfg.Host == "" || cfg.Port == "" || cfg.SenderEmail == "" {
		return errors.New("smtp client is not configured")
	}
	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return errors.Wrap(err, "invalid smtp port")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SenderEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.Attach(fileName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment)
		return err
	}))

	d := gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Password)
	return d.DialAndSend(m)
}
