package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	stripeGo "github.com/stripe/stripe-go/v79"

	"github.com/singhtechie24/Indiana-Hotels-Final/config"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/stripe"
	bookingModel "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/booking/model"
	bookingSvc "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/booking/service"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/payment/model/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/failure"
)

type Payment interface {
	CreateIntent(ctx context.Context, req dto.CreateIntentRequest) (dto.CreateIntentResponse, error)
	Confirm(ctx context.Context, req dto.ConfirmPaymentRequest) error
	Fail(ctx context.Context, req dto.FailPaymentRequest) error
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type serviceImpl struct {
	bookings bookingSvc.Booking
	gateway  stripe.Gateway
	cfg      *config.Config
	otel     otel.Otel
}

func New(bookings bookingSvc.Booking, gateway stripe.Gateway, cfg *config.Config, otel otel.Otel) Payment {
	return &serviceImpl{
		bookings: bookings,
		gateway:  gateway,
		cfg:      cfg,
		otel:     otel,
	}
}

// CreateIntent opens the payment handshake for a pending booking. The
// returned client secret lets the client collect payment without card data
// ever touching this server.
func (s *serviceImpl) CreateIntent(ctx context.Context, req dto.CreateIntentRequest) (res dto.CreateIntentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookings.Get(ctx, req.BookingID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if booking.Status != bookingModel.StatusPending {
		return res, failure.PreconditionFailed(fmt.Sprintf("booking in status %q cannot be paid", booking.Status)) // nolint:wrapcheck
	}

	if booking.PaymentStatus == bookingModel.PaymentStatusCompleted {
		return res, failure.PreconditionFailed("booking has already been paid") // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	amount := int64(math.Round(booking.TotalPrice * 100))
	currency := strings.ToLower(s.cfg.App.Currency)

	intent, err := s.gateway.CreateIntent(ctx, stripe.CreateIntentRequest{
		Amount:    amount,
		Currency:  currency,
		BookingID: booking.ID,
		UserID:    userID,
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to create payment intent")

		return res, failure.PaymentError("failed to start payment, please try again") // nolint:wrapcheck
	}

	res.FromIntent(intent, s.gateway.PublishableKey(), s.cfg.External.Stripe.MerchantName, booking.TotalPrice)

	return res, nil
}

// Confirm reconciles the client's claim of success against the gateway
// before confirming the booking. The client result alone is never trusted.
func (s *serviceImpl) Confirm(ctx context.Context, req dto.ConfirmPaymentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	intent, err := s.gateway.GetIntent(ctx, req.PaymentIntentID)
	if err != nil {
		log.Error().Err(err).Str("intentID", req.PaymentIntentID).Msg("failed to look up payment intent")

		return failure.PaymentError("failed to verify payment, please try again") // nolint:wrapcheck
	}

	if intent.BookingID != req.BookingID {
		return failure.BadRequestFromString("payment intent does not belong to this booking") // nolint:wrapcheck
	}

	if intent.Status != string(stripeGo.PaymentIntentStatusSucceeded) {
		if markErr := s.bookings.MarkPaymentFailed(ctx, req.BookingID, req.PaymentIntentID); markErr != nil {
			log.Error().Err(markErr).Str("bookingID", req.BookingID).Msg("failed to record payment failure")
		}

		return failure.PaymentError(fmt.Sprintf("payment is in status %q, not succeeded", intent.Status)) // nolint:wrapcheck
	}

	return s.bookings.MarkPaid(ctx, req.BookingID, req.PaymentIntentID, intent.ReceiptURL) // nolint:wrapcheck
}

// Fail records a client-reported payment failure. The booking stays pending
// so the guest can retry; the abandoned intent is cancelled at the gateway so
// it cannot be completed later.
func (s *serviceImpl) Fail(ctx context.Context, req dto.FailPaymentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Fail")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err := s.bookings.MarkPaymentFailed(ctx, req.BookingID, req.PaymentIntentID); err != nil {
		return err // nolint:wrapcheck
	}

	if err := s.gateway.CancelIntent(ctx, req.PaymentIntentID); err != nil {
		log.Warn().Err(err).Str("intentID", req.PaymentIntentID).Msg("failed to cancel abandoned payment intent")
	}

	return nil
}

// HandleWebhook applies gateway-confirmed outcomes. Events for bookings that
// already reached the target state are swallowed so Stripe retries stay
// idempotent.
func (s *serviceImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HandleWebhook")
	defer scope.End()
	defer scope.TraceIfError(err)

	event, err := s.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		return failure.BadRequestFromString("invalid webhook signature") // nolint:wrapcheck
	}

	scope.SetAttribute("event.type", string(event.Type))

	switch event.Type {
	case stripeGo.EventTypePaymentIntentSucceeded, stripeGo.EventTypePaymentIntentPaymentFailed:
	default:
		log.Info().Str("type", string(event.Type)).Msg("ignoring unhandled webhook event")

		return nil
	}

	var intent stripeGo.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		log.Error().Err(err).Msg("failed to decode webhook payment intent")

		return failure.BadRequestFromString("malformed webhook payload") // nolint:wrapcheck
	}

	bookingID := intent.Metadata["booking_id"]
	if bookingID == constant.Empty {
		log.Warn().Str("intentID", intent.ID).Msg("webhook intent has no booking reference")

		return nil
	}

	if event.Type == stripeGo.EventTypePaymentIntentSucceeded {
		receiptURL := constant.Empty
		if intent.LatestCharge != nil {
			receiptURL = intent.LatestCharge.ReceiptURL
		}

		err = s.bookings.MarkPaid(ctx, bookingID, intent.ID, receiptURL)
	} else {
		err = s.bookings.MarkPaymentFailed(ctx, bookingID, intent.ID)
	}

	if err != nil && failure.GetCode(err) == http.StatusPreconditionFailed {
		log.Info().Str("bookingID", bookingID).Msg("webhook event already applied")

		return nil
	}

	return err
}
