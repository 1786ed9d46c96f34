package notify

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
)

// Dispatcher 异步通知分发器
//
// 点赞主流程只负责触发，发送在独立 goroutine 中带超时执行，
// 失败只记日志，不回传给调用方
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	logger   *logrus.Logger
	wg       conc.WaitGroup
}

// NewDispatcher ...
func NewDispatcher(notifier Notifier, timeout time.Duration, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{notifier: notifier, timeout: timeout, logger: logger}
}

// Dispatch 触发一次通知发送，立即返回
func (d *Dispatcher) Dispatch(recipient, subject, body string) {
	d.wg.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.notifier.Send(ctx, recipient, subject, body); err != nil {
			d.logger.WithFields(logrus.Fields{
				"recipient": recipient,
				"subject":   subject,
			}).Errorf("failed to send notification: %s", err)
			return
		}
		d.logger.WithFields(logrus.Fields{
			"recipient": recipient,
			"subject":   subject,
		}).Info("notification sent")
	})
}

// Stop 等待在途通知发送完成，发送中的 panic 在此回收
func (d *Dispatcher) Stop() {
	if r := d.wg.WaitAndRecover(); r != nil {
		d.logger.Errorf("notification dispatch panicked: %s", r.String())
	}
}
