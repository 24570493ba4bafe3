// Package kafka Хелпер для работы с кафкой (поток событий о расходах).
package kafka

import (
	"context"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"

	"github.com/sukhendu-chakraborty/telegram-expense-bot/internal/logger"
)

type KafkaConsumer struct {
	ctx      context.Context
	consumer sarama.ConsumerGroup
	topic    string
}

func NewConsumer(ctx context.Context, brokerList []string, topic string) (*KafkaConsumer, error) {

	config := sarama.NewConfig()
	config.Version = sarama.V2_8_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategyRange}

	// Create consumer group
	kafkaConsumerGroup := topic + "-consumer-group"
	consumerGroup, err := sarama.NewConsumerGroup(brokerList, kafkaConsumerGroup, config)
	if err != nil {
		return nil, errors.Wrap(err, "Starting consumer group")
	}

	kafkaConsumer := &KafkaConsumer{
		ctx:      ctx,
		consumer: consumerGroup,
		topic:    topic,
	}

	return kafkaConsumer, nil
}

// RunConsume Запуск чтения топика: каждое сообщение передается в handlerFunc.
// Consume завершается без ошибки при ребалансировке группы, поэтому сессия
// пересоздается в цикле до отмены контекста.
func (c *KafkaConsumer) RunConsume(handlerFunc func(ctx context.Context, key string, value string) error) error {
	consumerGroupHandler := Consumer{
		ctx:         c.ctx,
		handlerFunc: handlerFunc,
	}
	for {
		if err := c.consumer.Consume(c.ctx, []string{c.topic}, &consumerGroupHandler); err != nil {
			if c.ctx.Err() != nil {
				// Остановка по отмене контекста - штатное завершение.
				return nil
			}
			return errors.Wrap(err, "consuming via handler")
		}
		if c.ctx.Err() != nil {
			return nil
		}
	}
}

// Consumer represents a Sarama consumer group consumer.
type Consumer struct {
	ctx         context.Context
	handlerFunc func(ctx context.Context, key string, value string) error
}

// Setup is run at the beginning of a new session, before ConsumeClaim.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		err := consumer.handlerFunc(consumer.ctx, string(message.Key), string(message.Value))
		if err == nil {
			session.MarkMessage(message, "")
		}
	}
	return nil
}
