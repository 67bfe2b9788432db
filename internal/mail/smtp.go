package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
	log      *zap.Logger
}

func NewSMTPSender(config utils.EmailConfig, log *zap.Logger) (*SMTPSender, error) {
	if config.Host == "" {
		return nil, fmt.Errorf("SMTP_HOST not set")
	}
	if config.Port == "" {
		return nil, fmt.Errorf("SMTP_PORT not set")
	}

	from := config.From
	if from == "" {
		from = config.User
	}

	return &SMTPSender{
		host:     config.Host,
		port:     config.Port,
		username: config.User,
		password: config.Password,
		from:     from,
		log:      log.With(zap.String("component", "mail")),
	}, nil
}

func (s *SMTPSender) SendOTP(_ context.Context, recipient, code string) error {
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	body := fmt.Sprintf("Your OTP for password reset is: %s. It is valid for 5 minutes.", code)
	msg := []byte(
		"From: " + s.from + "\r\n" +
			"To: " + recipient + "\r\n" +
			"Subject: Password Reset OTP\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n" +
			"\r\n" +
			body,
	)

	if err := smtp.SendMail(addr, auth, s.from, []string{recipient}, msg); err != nil {
		s.log.Error("SMTP send failed",
			zap.Error(err),
			zap.String("recipient", recipient),
		)
		return fmt.Errorf("smtp send to %s: %w", recipient, err)
	}

	s.log.Info("OTP email sent", zap.String("recipient", recipient))
	return nil
}
