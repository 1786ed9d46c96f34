package notify

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// mailEnvelope 投递到队列的邮件内容，由外部邮件 worker 消费发送
type mailEnvelope struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// AMQPNotifier 将通知投递到 RabbitMQ 队列的实现
type AMQPNotifier struct {
	channel *amqp.Channel
	queue   string
}

// NewAMQPNotifier ...
func NewAMQPNotifier(channel *amqp.Channel, queue string) *AMQPNotifier {
	return &AMQPNotifier{channel: channel, queue: queue}
}

// Send ...
func (n *AMQPNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	payload, err := json.Marshal(mailEnvelope{Recipient: recipient, Subject: subject, Body: body})
	if err != nil {
		return errors.Wrap(err, "marshal mail envelope")
	}

	err = n.channel.PublishWithContext(ctx, "", n.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         payload,
	})
	if err != nil {
		return errors.Wrap(err, "publish notification")
	}
	return nil
}
