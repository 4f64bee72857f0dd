package events

import (
	"context"

	"luxedrive/config"
	"luxedrive/infras/kafka"
	"luxedrive/infras/otel"
	"luxedrive/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
)

// PaymentResult is the message the payment gateway emits once a charge
// settles one way or the other.
type PaymentResult struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

// BookingResolver finalizes a pending booking after payment settles.
type BookingResolver interface {
	Confirm(ctx context.Context, bookingID string) error
	Cancel(ctx context.Context, bookingID string) error
}

type PaymentConsumer struct {
	kafkaClient kafka.Client
	resolver    BookingResolver
	cfg         *config.Config
	otel        otel.Otel
}

func NewPaymentConsumer(kafkaClient kafka.Client, resolver BookingResolver, cfg *config.Config, otel otel.Otel) *PaymentConsumer {
	return &PaymentConsumer{
		kafkaClient: kafkaClient,
		resolver:    resolver,
		cfg:         cfg,
		otel:        otel,
	}
}

// Start consumes payment results until the context is done.
func (c *PaymentConsumer) Start(ctx context.Context) {
	topic := c.cfg.Kafka.Topics.PaymentResults

	log.Info().Str("topic", topic).Msg("Starting payment results consumer.")

	go c.kafkaClient.Consume(ctx, constant.Empty, topic, func(message kafkaGo.Message) {
		c.Handle(ctx, message)
	})
}

func (c *PaymentConsumer) Handle(ctx context.Context, message kafkaGo.Message) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandlePaymentResult")
	defer scope.End()

	decoded, err := kafka.DecodeKafkaMessage[PaymentResult](message)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode payment result")

		return
	}

	result, ok := decoded.Value.(PaymentResult)
	if !ok {
		log.Error().Msg("unexpected payment result payload type")

		return
	}

	scope.SetAttributes(map[string]any{
		"event.booking_id":     result.BookingID,
		"event.payment_status": result.Status,
	})

	switch result.Status {
	case PaymentStatusSucceeded:
		err = c.resolver.Confirm(ctx, result.BookingID)
	case PaymentStatusFailed:
		err = c.resolver.Cancel(ctx, result.BookingID)
	default:
		log.Warn().Str("status", result.Status).Str("booking_id", result.BookingID).Msg("ignoring unknown payment status")

		return
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", result.BookingID).Str("status", result.Status).Msg("failed to resolve booking from payment result")
	}
}
