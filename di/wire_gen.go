// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/auth/service"
	repository3 "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/booking/repository"
	service3 "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/booking/service"
	repository5 "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/notification/repository"
	service6 "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/notification/service"
	service4 "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/payment/service"
	repository2 "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/room/repository"
	service2 "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/room/service"
	repository4 "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/repository"
	service5 "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/service"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/user/repository"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/events"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/auth"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/booking"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/notification"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/payment"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/room"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/handlers/servicerequest"
	"github.com/singhtechie24/Indiana-Hotels-Final/permissions"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/cache"
	"github.com/singhtechie24/Indiana-Hotels-Final/transport/http"
	"github.com/singhtechie24/Indiana-Hotels-Final/transport/http/middleware"
	"github.com/singhtechie24/Indiana-Hotels-Final/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	user := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(user, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	repositoryRoom := repository2.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceRoom := service2.New(repositoryRoom, configConfig, redisCache, otelOtel, s3S3)
	roomHandler := room.New(serviceRoom, otelOtel)
	repositoryBooking := repository3.New(connection, otelOtel)
	kafkaClient := kafka.New(configConfig)
	publisher := events.NewPublisher(kafkaClient, configConfig, otelOtel)
	serviceBooking := service3.New(repositoryBooking, repositoryRoom, configConfig, redisCache, otelOtel, publisher)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	gateway := stripe.New(configConfig, otelOtel)
	servicePayment := service4.New(serviceBooking, gateway, configConfig, otelOtel)
	paymentHandler := payment.New(servicePayment, otelOtel)
	serviceRequest := repository4.New(connection, otelOtel)
	serviceServiceRequest := service5.New(serviceRequest, repositoryRoom, configConfig, redisCache, otelOtel, publisher)
	servicerequestHandler := servicerequest.New(serviceServiceRequest, otelOtel)
	repositoryNotification := repository5.New(connection, otelOtel)
	serviceNotification := service6.New(repositoryNotification, configConfig, otelOtel)
	notificationHandler := notification.New(serviceNotification, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:           handler,
		Room:           roomHandler,
		Booking:        bookingHandler,
		Payment:        paymentHandler,
		ServiceRequest: servicerequestHandler,
		Notification:   notificationHandler,
	}
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	routerRouter := router.New(domainHandlers, authRole)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

func InitializeConsumer() *events.Consumer {
	configConfig := config.Get()
	client := kafka.New(configConfig)
	otelOtel := otel.New(configConfig)
	connection := postgres.New(configConfig)
	repositoryNotification := repository5.New(connection, otelOtel)
	user := repository.New(connection, otelOtel)
	consumer := events.NewConsumer(client, configConfig, otelOtel, repositoryNotification, user)
	return consumer
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New, stripe.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var eventBus = wire.NewSet(events.NewPublisher)

var authDomain = wire.NewSet(repository.New, service.New)

var roomDomain = wire.NewSet(repository2.New, service2.New)

var bookingDomain = wire.NewSet(repository3.New, service3.New)

var paymentDomain = wire.NewSet(service4.New)

var servicerequestDomain = wire.NewSet(repository4.New, service5.New)

var notificationDomain = wire.NewSet(repository5.New, service6.New)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	bookingDomain,
	paymentDomain,
	servicerequestDomain,
	notificationDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, room.New, booking.New, payment.New, servicerequest.New, notification.New, router.New)
