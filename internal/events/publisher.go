package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"time"

	"luxedrive/config"
	"luxedrive/infras/kafka"
	"luxedrive/infras/otel"
	"luxedrive/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent is the payload published to the booking events topic for
// downstream consumers (notifications, analytics).
type BookingEvent struct {
	Event       string    `json:"event"`
	BookingID   string    `json:"booking_id"`
	CarID       string    `json:"car_id"`
	AgencyID    string    `json:"agency_id"`
	UserID      string    `json:"user_id"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"total_amount"`
	Currency    string    `json:"currency"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}

type publisherImpl struct {
	kafkaClient kafka.Client
	cfg         *config.Config
	otel        otel.Otel
}

func NewPublisher(kafkaClient kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		kafkaClient: kafkaClient,
		cfg:         cfg,
		otel:        otel,
	}
}

func (p *publisherImpl) PublishBookingEvent(ctx context.Context, event BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishBookingEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"event.name":       event.Event,
		"event.booking_id": event.BookingID,
	})

	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	err = p.kafkaClient.SendMessages(ctx, p.cfg.Kafka.Topics.BookingEvents, message)
	if err != nil {
		log.Error().Err(err).Str("event", event.Event).Str("booking_id", event.BookingID).Msg("failed to publish booking event")

		return err
	}

	return nil
}
