package mq

import (
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/binjuhor/likepost/pkg/envs"
	"github.com/binjuhor/likepost/pkg/logging"
)

var (
	conn     *amqp.Connection
	channel  *amqp.Channel
	initOnce sync.Once
)

// Channel 获取 RabbitMQ Channel
func Channel() *amqp.Channel {
	if channel == nil {
		log.Fatal("rabbitmq channel not init")
	}
	return channel
}

// Enabled RabbitMQ 是否已配置
func Enabled() bool {
	return envs.RabbitMQUrl != ""
}

// InitRabbitMQ 初始化 RabbitMQ 连接并声明通知队列，未配置时跳过
func InitRabbitMQ() {
	if !Enabled() || channel != nil {
		return
	}
	initOnce.Do(func() {
		c, err := amqp.Dial(envs.RabbitMQUrl)
		if err != nil {
			log.Fatalf("failed to connect rabbitmq: %s", err)
		}

		ch, err := c.Channel()
		if err != nil {
			log.Fatalf("failed to open rabbitmq channel: %s", err)
		}

		// 队列持久化，由外部邮件 worker 消费
		if _, err = ch.QueueDeclare(envs.RabbitMQQueue, true, false, false, false, nil); err != nil {
			log.Fatalf("failed to declare rabbitmq queue %s: %s", envs.RabbitMQQueue, err)
		}

		conn, channel = c, ch
		logging.GetSystemLogger().Infof("rabbitmq connected, queue: %s", envs.RabbitMQQueue)
	})
}

// Close 关闭 RabbitMQ 连接
func Close() {
	if channel != nil {
		_ = channel.Close()
	}
	if conn != nil {
		_ = conn.Close()
	}
}
