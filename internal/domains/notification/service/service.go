package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/singhtechie24/Indiana-Hotels-Final/config"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/notification/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/notification/model/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/notification/repository"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	gDto "github.com/singhtechie24/Indiana-Hotels-Final/shared/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/failure"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/timezone"
)

type Notification interface {
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetNotificationsResponse, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

type serviceImpl struct {
	repo repository.Notification
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Notification, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func userFilter(userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}
}

// GetAll lists the caller's notifications, newest first. Reads go straight
// to the store so a mark-read is never shadowed by a stale cache entry.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.SortBy == constant.Empty {
		req.SortBy = constant.FieldCreatedAt
		req.SortDir = gDto.SortDirDesc
	}

	filter := userFilter(userID)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	unreadFilter := userFilter(userID)
	unreadFilter.Filters = append(unreadFilter.Filters, gDto.Filter{
		Field:    model.FieldRead,
		Operator: gDto.FilterOperatorEq,
		Value:    false,
		Table:    model.TableName,
	})

	unread, err := s.repo.Count(ctx, unreadFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread notifications")

		return res, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, unread, req.Limit)

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	notification, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get notification")

		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.ID == constant.Empty {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	if notification.UserID != userID {
		return failure.ResourceRestrictedError // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldRead:          true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark notification read")

		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

func (s *serviceImpl) MarkAllRead(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAllRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldRead:          true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err := s.repo.Update(ctx, updatedFields, userFilter(userID)); err != nil {
		log.Error().Err(err).Msg("failed to mark notifications read")

		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}
