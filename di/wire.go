//go:build wireinject
// +build wireinject

package di

import (
	"luxedrive/config"
	"luxedrive/infras/jwt"
	"luxedrive/infras/kafka"
	"luxedrive/infras/otel"
	"luxedrive/infras/postgres"
	"luxedrive/infras/redis"
	"luxedrive/infras/s3"
	"luxedrive/internal/events"
	"luxedrive/permissions"
	"luxedrive/shared/cache"
	"luxedrive/transport/http"
	"luxedrive/transport/http/middleware"
	"luxedrive/transport/http/router"

	"github.com/google/wire"

	addonRepository "luxedrive/internal/domains/addon/repository"
	authService "luxedrive/internal/domains/auth/service"
	availabilityRepository "luxedrive/internal/domains/availability/repository"
	availabilityService "luxedrive/internal/domains/availability/service"
	bookingRepository "luxedrive/internal/domains/booking/repository"
	bookingService "luxedrive/internal/domains/booking/service"
	carRepository "luxedrive/internal/domains/car/repository"
	carService "luxedrive/internal/domains/car/service"
	pricingService "luxedrive/internal/domains/pricing/service"
	promoRepository "luxedrive/internal/domains/promo/repository"
	promoService "luxedrive/internal/domains/promo/service"
	userRepository "luxedrive/internal/domains/user/repository"

	authHandler "luxedrive/internal/handlers/auth"
	bookingHandler "luxedrive/internal/handlers/booking"
	carHandler "luxedrive/internal/handlers/car"
	pricingHandler "luxedrive/internal/handlers/pricing"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var carDomain = wire.NewSet(
	carRepository.New,
	carService.New,
)

var catalogDomain = wire.NewSet(
	addonRepository.New,
	promoRepository.New,
	promoService.New,
)

var pricingDomain = wire.NewSet(
	pricingService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var eventing = wire.NewSet(
	events.NewPublisher,
	events.NewPaymentConsumer,
	wire.Bind(new(events.BookingResolver), new(bookingService.Booking)),
)

var domains = wire.NewSet(
	authDomain,
	carDomain,
	catalogDomain,
	pricingDomain,
	availabilityDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	carHandler.New,
	pricingHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *Service {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		eventing,
		routing,
		http.New,
		wire.Struct(new(Service), "*"),
	)

	return &Service{}
}
