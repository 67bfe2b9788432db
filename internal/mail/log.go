package mail

import (
	"context"

	"go.uber.org/zap"
)

// LogSender writes the code to the application log instead of sending
// mail. Used in debug mode when no SMTP host is configured.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.With(zap.String("component", "mail"))}
}

func (s *LogSender) SendOTP(_ context.Context, recipient, code string) error {
	s.log.Info("OTP delivery (log only)",
		zap.String("recipient", recipient),
		zap.String("otp_code", code),
	)
	return nil
}
