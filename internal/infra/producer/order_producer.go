package producer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/riteshp0/DinoKicks/internal/domain/model"
	"github.com/segmentio/kafka-go"
)

type OrderEvent string

var (
	OrderEventPlaced OrderEvent = "order.placed"
)

type orderEventPayload struct {
	Event     OrderEvent   `json:"event"`
	Timestamp int64        `json:"timestamp"`
	Order     *model.Order `json:"order"`
}

type IOrderProducer interface {
	OrderPlaced(ctx context.Context, order *model.Order) error
	Close() error
}

// OrderProducer 訂單事件發布到kafka, 給下游(庫存/通知)消費
type OrderProducer struct {
	writer *kafka.Writer
}

func NewOrderProducer(brokers []string, topic string) *OrderProducer {
	return &OrderProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *OrderProducer) OrderPlaced(ctx context.Context, order *model.Order) error {
	payload := orderEventPayload{
		Event:     OrderEventPlaced,
		Timestamp: time.Now().UnixMilli(),
		Order:     order,
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	// 同一訂單的事件以orderID為key, 保證進同一partition
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(order.ID)),
		Value: value,
	})
}

func (p *OrderProducer) Close() error {
	return p.writer.Close()
}

var _ IOrderProducer = (*OrderProducer)(nil)
