package events_test

import (
	"context"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/mock/gomock"

	"luxedrive/config"
	"luxedrive/infras/otel/mocks"
	"luxedrive/internal/events"
	eventMocks "luxedrive/internal/events/mocks"
)

func TestPaymentConsumer_Handle(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		setupMock func(resolver *eventMocks.MockBookingResolver)
	}{
		{
			name:    "succeeded payment confirms booking",
			payload: `{"booking_id":"booking-id-123","status":"succeeded","reference":"pay_abc"}`,
			setupMock: func(resolver *eventMocks.MockBookingResolver) {
				resolver.EXPECT().
					Confirm(gomock.Any(), "booking-id-123").
					Return(nil)
			},
		},
		{
			name:    "failed payment cancels booking",
			payload: `{"booking_id":"booking-id-123","status":"failed","reference":"pay_abc"}`,
			setupMock: func(resolver *eventMocks.MockBookingResolver) {
				resolver.EXPECT().
					Cancel(gomock.Any(), "booking-id-123").
					Return(nil)
			},
		},
		{
			name:      "unknown status is ignored",
			payload:   `{"booking_id":"booking-id-123","status":"refunded"}`,
			setupMock: func(resolver *eventMocks.MockBookingResolver) {},
		},
		{
			name:      "malformed payload is ignored",
			payload:   `not-json`,
			setupMock: func(resolver *eventMocks.MockBookingResolver) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockResolver := eventMocks.NewMockBookingResolver(ctrl)
			tt.setupMock(mockResolver)

			consumer := events.NewPaymentConsumer(nil, mockResolver, &config.Config{}, mocks.NewOtel())

			consumer.Handle(context.Background(), kafkaGo.Message{
				Key:   []byte("booking-id-123"),
				Value: []byte(tt.payload),
			})
		})
	}
}
