package events

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/singhtechie24/Indiana-Hotels-Final/config"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/kafka"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel"
	notificationModel "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/notification/model"
	notificationRepo "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/notification/repository"
	userModel "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/user/model"
	userRepo "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/user/repository"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	gDto "github.com/singhtechie24/Indiana-Hotels-Final/shared/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/timezone"
)

// Consumer turns booking events into notification rows. Status updates go to
// the booking owner, new service requests fan out to every active staff and
// admin account.
type Consumer struct {
	client           kafka.Client
	cfg              *config.Config
	otel             otel.Otel
	notificationRepo notificationRepo.Notification
	userRepo         userRepo.User
}

func NewConsumer(client kafka.Client, cfg *config.Config, ot otel.Otel, notificationRepo notificationRepo.Notification, userRepo userRepo.User) *Consumer {
	return &Consumer{
		client:           client,
		cfg:              cfg,
		otel:             ot,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.BookingEvents, func(msg kafkaGo.Message) {
		if err := c.handle(ctx, msg); err != nil {
			log.Error().Err(err).Str("key", string(msg.Key)).Msg("failed to handle booking event")
		}
	})
}

func (c *Consumer) handle(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Handle")
	defer scope.End()
	defer scope.TraceIfError(err)

	decoded, err := kafka.DecodeKafkaMessage[BookingEvent](msg)
	if err != nil {
		return fmt.Errorf("failed to decode booking event: %w", err)
	}

	event, ok := decoded.Value.(BookingEvent)
	if !ok {
		return fmt.Errorf("unexpected booking event payload for key %q", decoded.Key)
	}

	scope.SetAttribute("event.type", event.Type)

	switch event.Type {
	case TypeBookingStatusUpdate, TypeServiceRequestUpdate:
		return c.notifyUser(ctx, event)
	case TypeNewServiceRequest:
		return c.notifyStaff(ctx, event)
	default:
		log.Warn().Str("type", event.Type).Msg("ignoring unknown booking event type")

		return nil
	}
}

func (c *Consumer) notifyUser(ctx context.Context, event BookingEvent) error {
	if event.UserID == constant.Empty {
		return nil
	}

	notification := newNotification(event, event.UserID)

	if err := c.notificationRepo.Insert(ctx, notification); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

func (c *Consumer) notifyStaff(ctx context.Context, event BookingEvent) error {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldRole,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{constant.RoleStaff, constant.RoleAdmin},
				Table:    userModel.TableName,
			},
			gDto.Filter{
				Field:    userModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    userModel.TableName,
			},
		},
	}

	staff, err := c.userRepo.GetAll(ctx, gDto.QueryParams{}, filter, userModel.FieldID)
	if err != nil {
		return fmt.Errorf("failed to get staff users: %w", err)
	}

	if len(staff) == 0 {
		return nil
	}

	notifications := make([]notificationModel.Notification, len(staff))
	for i, user := range staff {
		notifications[i] = newNotification(event, user.ID)
	}

	if err := c.notificationRepo.InsertBulk(ctx, notifications); err != nil {
		return fmt.Errorf("failed to insert staff notifications: %w", err)
	}

	return nil
}

func newNotification(event BookingEvent, userID string) notificationModel.Notification {
	referenceID := event.BookingID
	if referenceID == constant.Empty {
		referenceID = event.ServiceRequestID
	}

	return notificationModel.Notification{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        event.Type,
		Title:       event.Title,
		Message:     event.Message,
		ReferenceID: referenceID,
		Status:      event.Status,
		Metadata: model.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.SystemActor,
			ModifiedBy: constant.SystemActor,
		},
	}
}
