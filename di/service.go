package di

import (
	availabilityService "luxedrive/internal/domains/availability/service"
	"luxedrive/internal/events"
	"luxedrive/transport/http"
)

// Service bundles everything main starts: the HTTP transport, the hold
// sweeper, and the payment results consumer.
type Service struct {
	HTTP            *http.HTTP
	Sweeper         availabilityService.Availability
	PaymentConsumer *events.PaymentConsumer
}
