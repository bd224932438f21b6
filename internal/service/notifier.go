package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/alpstech-academy-api/pkg/notice"
)

// Notifier surfaces a user-facing message.
type Notifier interface {
	Notify(ctx context.Context, n notice.Notice)
}

// LogNotifier writes notices to the log and attaches them to the request context when it
// carries a collector.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier constructs a LogNotifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, note notice.Notice) {
	n.logger.Info("notice", zap.String("level", string(note.Level)), zap.String("message", note.Message))
	notice.Add(ctx, note)
}

func success(msg string) notice.Notice { return notice.Notice{Level: notice.LevelSuccess, Message: msg} }

func failure(msg string) notice.Notice { return notice.Notice{Level: notice.LevelError, Message: msg} }

func info(msg string) notice.Notice { return notice.Notice{Level: notice.LevelInfo, Message: msg} }
