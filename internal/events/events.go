package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/singhtechie24/Indiana-Hotels-Final/config"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/kafka"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
)

const (
	TypeBookingStatusUpdate  = "booking_status_update"
	TypeServiceRequestUpdate = "service_request_update"
	TypeNewServiceRequest    = "new_service_request"
)

// BookingEvent is the payload published to the booking events topic whenever
// a booking or service request changes state. The consumer turns these into
// user notifications.
type BookingEvent struct {
	Type             string `json:"type"`
	BookingID        string `json:"booking_id,omitempty"`
	ServiceRequestID string `json:"service_request_id,omitempty"`
	RoomID           string `json:"room_id,omitempty"`
	UserID           string `json:"user_id"`
	Status           string `json:"status"`
	Title            string `json:"title"`
	Message          string `json:"message"`
}

type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

type kafkaPublisher struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, ot otel.Otel) Publisher {
	return &kafkaPublisher{
		client: client,
		cfg:    cfg,
		otel:   ot,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("event.type", event.Type)

	key := event.BookingID
	if key == constant.Empty {
		key = event.ServiceRequestID
	}

	err = p.client.SendMessages(ctx, p.cfg.Kafka.Topics.BookingEvents, kafka.Message{
		Key:   key,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}
