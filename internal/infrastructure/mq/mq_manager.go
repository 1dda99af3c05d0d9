// Package mq 提供通知事件的 Kafka 镜像
// 通知以数据库行为准（source of truth）；这里只把新建的通知事件
// 尽力写入 Kafka，供外部推送系统消费。写入失败记日志后忽略，
// 绝不影响触发它的主操作
package mq

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"bookmate_server/internal/config"
)

// EventPublisher 通知事件发布接口
// notifyMode=none 时注入 NoopPublisher，业务代码无需感知差异
type EventPublisher interface {
	// Publish 发布一条事件，key 用于分区路由（通常是接收人id）
	Publish(ctx context.Context, key, value []byte) error
	// Close 关闭底层连接
	Close() error
}

// kafkaPublisher EventPublisher 的 Kafka 实现
type kafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher 根据配置创建 Kafka 发布器
func NewKafkaPublisher(conf *config.KafkaConfig) EventPublisher {
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 10
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(conf.HostPort),
		Topic:                  conf.NotifyTopic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           timeout * time.Second,
		RequiredAcks:           kafka.RequireNone,
		AllowAutoTopicCreation: true,
	}
	zap.L().Info("kafka notify publisher ready", zap.String("addr", conf.HostPort), zap.String("topic", conf.NotifyTopic))
	return &kafkaPublisher{writer: writer}
}

// Publish 发布一条事件
func (k *kafkaPublisher) Publish(ctx context.Context, key, value []byte) error {
	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}

// Close 关闭底层连接
func (k *kafkaPublisher) Close() error {
	return k.writer.Close()
}

// NoopPublisher 空实现，未开启 kafka 模式时使用
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, key, value []byte) error { return nil }
func (NoopPublisher) Close() error                                         { return nil }

// NewPublisher 根据通知镜像模式选择实现
func NewPublisher(conf *config.KafkaConfig) EventPublisher {
	if conf.NotifyMode == "kafka" {
		return NewKafkaPublisher(conf)
	}
	return NoopPublisher{}
}
