package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/singhtechie24/Indiana-Hotels-Final/config"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel"
	roomModel "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/room/model"
	roomRepo "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/room/repository"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/model/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/repository"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/events"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/cache"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	gDto "github.com/singhtechie24/Indiana-Hotels-Final/shared/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/failure"
)

const (
	cacheGetServiceRequest    = "service_request:get"
	cacheGetAllServiceRequest = "service_request:gets"
	cacheCountServiceRequest  = "service_request:count"
)

type ServiceRequest interface {
	Create(ctx context.Context, req dto.CreateServiceRequest) (dto.ServiceRequestResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetServiceRequestsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ServiceRequestResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.ServiceRequest
	roomRepo  roomRepo.Room
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher events.Publisher
}

func New(repo repository.ServiceRequest, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, publisher events.Publisher) ServiceRequest {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequest) (res dto.ServiceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	request := req.ToModel(userID)

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create service request")

		return res, fmt.Errorf("failed to create service request: %w", err)
	}

	s.publishEvent(ctx, events.TypeNewServiceRequest, request, "New service request", fmt.Sprintf("A %s request was submitted for room %s.", request.Type, request.RoomID))

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllServiceRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountServiceRequest)
	}()

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetServiceRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllServiceRequest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service requests")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service requests")

		return res, fmt.Errorf("failed to count service requests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service requests")

		return res, fmt.Errorf("failed to get service requests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service requests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountServiceRequest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service requests")

		return res, fmt.Errorf("failed to count service requests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service request count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.getOwned(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.getRequest(ctx, id)
	if err != nil {
		return err
	}

	if !request.CanTransitionTo(req.Status) {
		return failure.PreconditionFailed(fmt.Sprintf("service request cannot move from %q to %q", request.Status, req.Status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update service request status")

		return fmt.Errorf("failed to update service request status: %w", err)
	}

	request.Status = req.Status
	s.publishEvent(ctx, events.TypeServiceRequestUpdate, request, "Service request updated", fmt.Sprintf("Your %s request is now %s.", request.Type, req.Status))
	s.invalidate(ctx, id)

	return nil
}

// Cancel lets the requester withdraw their own request while it is still
// actionable.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.getOwned(ctx, id)
	if err != nil {
		return err
	}

	if !request.CanTransitionTo(model.StatusCancelled) {
		return failure.PreconditionFailed(fmt.Sprintf("service request in status %q cannot be cancelled", request.Status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(dto.UpdateStatusRequest{Status: model.StatusCancelled}, user)
	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel service request")

		return fmt.Errorf("failed to cancel service request: %w", err)
	}

	request.Status = model.StatusCancelled
	s.publishEvent(ctx, events.TypeServiceRequestUpdate, request, "Service request cancelled", fmt.Sprintf("Your %s request has been cancelled.", request.Type))
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) getRequest(ctx context.Context, id string) (model.ServiceRequest, error) {
	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service request")

		return request, fmt.Errorf("failed to get service request: %w", err)
	}

	if request.ID == constant.Empty {
		return request, failure.NotFound("service request not found") // nolint:wrapcheck
	}

	return request, nil
}

func (s *serviceImpl) getOwned(ctx context.Context, id string) (model.ServiceRequest, error) {
	request, err := s.getRequest(ctx, id)
	if err != nil {
		return request, err
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if role == constant.RoleGuest && request.UserID != userID {
		return request, failure.ResourceRestrictedError // nolint:wrapcheck
	}

	return request, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, request model.ServiceRequest, title, message string) {
	event := events.BookingEvent{
		Type:             eventType,
		ServiceRequestID: request.ID,
		RoomID:           request.RoomID,
		UserID:           request.UserID,
		Status:           request.Status,
		Title:            title,
		Message:          message,
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Error().Err(err).Str("requestID", request.ID).Msg("failed to publish service request event")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetServiceRequest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete service request from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllServiceRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountServiceRequest)
	}()
}
