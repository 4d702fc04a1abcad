package payment

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/payment/model/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/payment/service"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/failure"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/validator"
	"github.com/singhtechie24/Indiana-Hotels-Final/transport/http/response"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/intent", handler.CreateIntent)
		routerGroup.Post("/confirm", handler.ConfirmPayment)
		routerGroup.Post("/fail", handler.FailPayment)
		routerGroup.Post("/webhook", handler.Webhook)
	})
}

// CreateIntent opens a payment intent for a pending booking and returns the
// client secret for the hosted payment sheet.
func (handler *Handler) CreateIntent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateIntent")
	defer scope.End()

	req := dto.CreateIntentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateIntent(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment intent")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment intent created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// ConfirmPayment reconciles a client-reported payment against the gateway
// before the booking is confirmed.
func (handler *Handler) ConfirmPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmPayment")
	defer scope.End()

	req := dto.ConfirmPaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Confirm(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm payment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment confirmed successfully for booking " + req.BookingID)

	response.WithMessage(writer, http.StatusOK, "Payment confirmed successfully")
}

// FailPayment records a payment failure reported by the client.
func (handler *Handler) FailPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FailPayment")
	defer scope.End()

	req := dto.FailPaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Fail(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment failure")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment failure recorded for booking " + req.BookingID)

	response.WithMessage(writer, http.StatusOK, "Payment failure recorded")
}

// Webhook receives asynchronous gateway events. The raw body is needed for
// signature verification, so it is read before any decoding.
func (handler *Handler) Webhook(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Webhook")
	defer scope.End()

	payload, err := io.ReadAll(request.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read webhook payload")

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	signature := request.Header.Get(constant.RequestHeaderStripeSignature)

	if err := handler.service.HandleWebhook(ctx, payload, signature); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to handle payment webhook")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment webhook handled successfully")

	response.WithMessage(writer, http.StatusOK, "Webhook handled")
}
