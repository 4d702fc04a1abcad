package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/singhtechie24/Indiana-Hotels-Final/config"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/booking/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/booking/model/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/booking/repository"
	roomModel "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/room/model"
	roomRepo "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/room/repository"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/events"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/cache"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	gDto "github.com/singhtechie24/Indiana-Hotels-Final/shared/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/failure"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.AvailabilityResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	MarkPaid(ctx context.Context, id, paymentIntentID, receiptURL string) error
	MarkPaymentFailed(ctx context.Context, id, paymentIntentID string) error
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher events.Publisher
}

func New(repo repository.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, publisher events.Publisher) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return res, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if checkIn.Before(today) {
		return res, failure.BadRequestFromString("check_in cannot be in the past") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || !room.Active {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if req.Guests > room.Capacity {
		return res, failure.BadRequestFromString(fmt.Sprintf("room sleeps at most %d guests", room.Capacity)) // nolint:wrapcheck
	}

	totalPrice := room.PricePerNight * float64(model.NightsBetween(checkIn, checkOut))

	booking := req.ToModel(userID, checkIn, checkOut, totalPrice)

	if err = s.repo.InsertIfAvailable(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrRoomUnavailable) {
			return res, failure.Conflict("room is not available for the selected dates") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishStatusEvent(ctx, booking.ID, booking.RoomID, booking.UserID, booking.Status, "Booking created", "Your booking has been created and is awaiting payment.")

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

// CheckAvailability reports whether the room is free over the requested
// half-open range. Any lookup failure propagates as an error rather than an
// optimistic "available", callers must treat unknown as unavailable.
func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse availability dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return res, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	exists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	count, err := s.repo.CountOverlapping(ctx, req.RoomID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to count overlapping bookings")

		return res, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return dto.AvailabilityResponse{
		RoomID:    req.RoomID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Available: count == 0,
	}, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusPending && booking.Status != model.StatusConfirmed {
		return failure.PreconditionFailed(fmt.Sprintf("booking in status %q cannot be cancelled", booking.Status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if booking.PaymentStatus == model.PaymentStatusCompleted {
		updatedFields[model.FieldPaymentStatus] = model.PaymentStatusRefunded
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.publishStatusEvent(ctx, booking.ID, booking.RoomID, booking.UserID, model.StatusCancelled, "Booking cancelled", "Your booking has been cancelled.")
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Complete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusConfirmed {
		return failure.PreconditionFailed(fmt.Sprintf("booking in status %q cannot be completed", booking.Status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCompleted,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to complete booking")

		return fmt.Errorf("failed to complete booking: %w", err)
	}

	s.publishStatusEvent(ctx, booking.ID, booking.RoomID, booking.UserID, model.StatusCompleted, "Stay completed", "We hope you enjoyed your stay.")
	s.invalidate(ctx, id)

	return nil
}

// MarkPaid confirms the booking after a successful payment. The receipt URL
// comes from the charge on the gateway's intent and may be empty when the
// gateway did not supply one.
func (s *serviceImpl) MarkPaid(ctx context.Context, id, paymentIntentID, receiptURL string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusPending {
		return failure.PreconditionFailed(fmt.Sprintf("booking in status %q cannot be marked paid", booking.Status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = booking.UserID
	}

	updatedFields := map[string]any{
		model.FieldStatus:          model.StatusConfirmed,
		model.FieldPaymentStatus:   model.PaymentStatusCompleted,
		model.FieldPaymentIntentID: paymentIntentID,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   user,
	}

	if receiptURL != constant.Empty {
		updatedFields[model.FieldReceiptURL] = receiptURL
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark booking paid")

		return fmt.Errorf("failed to mark booking paid: %w", err)
	}

	s.publishStatusEvent(ctx, booking.ID, booking.RoomID, booking.UserID, model.StatusConfirmed, "Booking confirmed", "Payment received, your booking is confirmed.")
	s.invalidate(ctx, id)

	return nil
}

// MarkPaymentFailed records the failed attempt. The booking stays pending so
// the guest can retry payment. Guest callers can only report failures on
// their own bookings; the webhook path carries no guest role and reaches any.
func (s *serviceImpl) MarkPaymentFailed(ctx context.Context, id, paymentIntentID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPaymentFailed")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusPending {
		return failure.PreconditionFailed(fmt.Sprintf("booking in status %q cannot record a payment failure", booking.Status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = booking.UserID
	}

	updatedFields := map[string]any{
		model.FieldPaymentStatus:   model.PaymentStatusFailed,
		model.FieldPaymentIntentID: paymentIntentID,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   user,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark payment failed")

		return fmt.Errorf("failed to mark payment failed: %w", err)
	}

	s.publishStatusEvent(ctx, booking.ID, booking.RoomID, booking.UserID, booking.Status, "Payment failed", "Your payment did not go through, please try again.")
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// getOwned restricts guests to their own bookings. Staff and admin callers
// can reach any booking.
func (s *serviceImpl) getOwned(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return booking, err
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if role == constant.RoleGuest && booking.UserID != userID {
		return booking, failure.ResourceRestrictedError // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) publishStatusEvent(ctx context.Context, bookingID, roomID, userID, status, title, message string) {
	event := events.BookingEvent{
		Type:      events.TypeBookingStatusUpdate,
		BookingID: bookingID,
		RoomID:    roomID,
		UserID:    userID,
		Status:    status,
		Title:     title,
		Message:   message,
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to publish booking status event")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
