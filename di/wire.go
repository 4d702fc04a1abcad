//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/singhtechie24/Indiana-Hotels-Final/config"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/jwt"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/kafka"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/postgres"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/redis"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/s3"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/stripe"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/events"
	"github.com/singhtechie24/Indiana-Hotels-Final/permissions"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/cache"
	"github.com/singhtechie24/Indiana-Hotels-Final/transport/http"
	"github.com/singhtechie24/Indiana-Hotels-Final/transport/http/middleware"
	"github.com/singhtechie24/Indiana-Hotels-Final/transport/http/router"

	authService "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/auth/service"
	bookingRepository "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/booking/repository"
	bookingService "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/booking/service"
	notificationRepository "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/notification/repository"
	notificationService "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/notification/service"
	paymentService "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/payment/service"
	roomRepository "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/room/repository"
	roomService "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/room/service"
	servicerequestRepository "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/repository"
	servicerequestService "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/service"
	userRepository "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/user/repository"

	authHandler "github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/auth"
	bookingHandler "github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/booking"
	notificationHandler "github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/notification"
	paymentHandler "github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/payment"
	roomHandler "github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/room"
	servicerequestHandler "github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/servicerequest"
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
	stripe.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var eventBus = wire.NewSet(
	events.NewPublisher,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentService.New,
)

var servicerequestDomain = wire.NewSet(
	servicerequestRepository.New,
	servicerequestService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	bookingDomain,
	paymentDomain,
	servicerequestDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	servicerequestHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		eventBus,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeConsumer() *events.Consumer {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		kafka.New,
		notificationRepository.New,
		userRepository.New,
		events.NewConsumer,
	)

	return &events.Consumer{}
}
