package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Notifier 通知发送方，邮件的实际投递由外部系统完成
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// LogNotifier 仅打印日志的通知实现，本地开发或未配置 MQ 时使用
type LogNotifier struct {
	logger *logrus.Logger
}

// NewLogNotifier ...
func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send ...
func (n *LogNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	n.logger.WithFields(logrus.Fields{
		"recipient": recipient,
		"subject":   subject,
		"body":      body,
	}).Info("notification (log only)")
	return nil
}
