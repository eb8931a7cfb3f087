package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"bakery/internal/core/application/orderstore"

	"github.com/IBM/sarama"
)

// OrderChangeConsumer subscribes to the order change topic and applies
// each decoded change to the store. Malformed messages are logged and
// skipped so one bad publish cannot stall the feed.
type OrderChangeConsumer struct {
	consumerGroup sarama.ConsumerGroup
	store         *orderstore.Store
	logger        *slog.Logger
	topics        []string
}

type consumerGroupHandler struct {
	store  *orderstore.Store
	logger *slog.Logger
}

// NewOrderChangeConsumer creates a consumer group subscribed to the
// given topic. Brokers is a comma-separated list.
func NewOrderChangeConsumer(
	brokers, groupID, topic string,
	store *orderstore.Store,
	logger *slog.Logger,
) (*OrderChangeConsumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRoundRobin
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Version = sarama.V2_6_0_0

	consumerGroup, err := sarama.NewConsumerGroup(strings.Split(brokers, ","), groupID, config)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &OrderChangeConsumer{
		consumerGroup: consumerGroup,
		store:         store,
		logger:        logger,
		topics:        []string{topic},
	}, nil
}

// Start consumes the change feed until the context is cancelled.
func (c *OrderChangeConsumer) Start(ctx context.Context) error {
	handler := &consumerGroupHandler{
		store:  c.store,
		logger: c.logger,
	}

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("order change consumer stopped")
			return nil
		default:
			if err := c.consumerGroup.Consume(ctx, c.topics, handler); err != nil {
				c.logger.Error("order change consumer failed", "error", err)
				return err
			}
		}
	}
}

// Close shuts the consumer group down.
func (c *OrderChangeConsumer) Close() error {
	return c.consumerGroup.Close()
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error {
	h.logger.Info("order change consumer session setup")
	return nil
}

func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	h.logger.Info("order change consumer session cleanup")
	return nil
}

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			h.handleMessage(message)
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *consumerGroupHandler) handleMessage(message *sarama.ConsumerMessage) {
	var msg OrderChangeMessage
	if err := json.Unmarshal(message.Value, &msg); err != nil {
		h.logger.Error("malformed order change message",
			"topic", message.Topic, "offset", message.Offset, "error", err)
		return
	}

	ev, err := toEvent(msg)
	if err != nil {
		h.logger.Error("unusable order change message",
			"type", msg.Type, "orderId", msg.OrderID, "error", err)
		return
	}

	h.store.Apply(ev)
	h.logger.Info("applied order change", "type", msg.Type, "orderId", msg.OrderID)
}
