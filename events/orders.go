package events

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/tdat0411/laptopshop-api/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// OrderPlaced is emitted once per successful checkout.
type OrderPlaced struct {
	OrderID    uint      `json:"order_id"`
	OrderRef   string    `json:"order_ref"`
	UserID     uint      `json:"user_id"`
	TotalPrice float64   `json:"total_price"`
	Items      int       `json:"items"`
	PlacedAt   time.Time `json:"placed_at"`
}

type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(writer *kafka.Writer) *Publisher {
	return &Publisher{writer: writer}
}

// PublishOrderPlaced publishes best-effort: the order is already committed,
// a delivery failure is logged and swallowed.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, order models.Order) {
	if p == nil || p.writer == nil {
		return
	}
	ev := OrderPlaced{
		OrderID:    order.ID,
		OrderRef:   order.OrderRef,
		UserID:     order.UserID,
		TotalPrice: order.TotalPrice,
		Items:      len(order.Details),
		PlacedAt:   order.CreatedAt,
	}
	data, err := json.Marshal(ev)
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal order event")
		return
	}
	msg := kafka.Message{
		Key:   []byte(order.OrderRef),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Str("order_ref", order.OrderRef).Msg("failed to publish order event")
	}
}
