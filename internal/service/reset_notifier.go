package service

import (
	"context"
	"strings"

	"gramvista/internal/model"

	"github.com/rs/zerolog"
)

// ResetNotifier delivers password-reset requests. No reset token protocol
// exists yet; implementations only learn that a known email asked for one.
type ResetNotifier interface {
	PasswordResetRequested(ctx context.Context, email string, role model.Role) error
}

// LogResetNotifier records reset requests in the log instead of sending mail.
type LogResetNotifier struct {
	log zerolog.Logger
}

func NewLogResetNotifier(log zerolog.Logger) *LogResetNotifier {
	return &LogResetNotifier{log: log}
}

func (n *LogResetNotifier) PasswordResetRequested(ctx context.Context, email string, role model.Role) error {
	n.log.Info().Str("email", MaskEmail(email)).Str("role", role.String()).Msg("password reset requested (delivery not configured)")
	return nil
}

// MaskEmail keeps the first character of the local part and the domain:
// "vendor@x.com" becomes "v***@x.com".
func MaskEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
