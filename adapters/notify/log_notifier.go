package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

// LogNotifier writes reset links to the application log instead of sending mail.
type LogNotifier struct {
	logger logger.Logger
}

var _ service.ResetNotifier = (*LogNotifier)(nil)

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) SendPasswordReset(_ context.Context, email, link string) error {
	n.logger.Info("Password reset requested", zap.String("email", email), zap.String("reset_link", link))
	return nil
}
