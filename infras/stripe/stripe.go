package stripe

//go:generate go run go.uber.org/mock/mockgen -source=./stripe.go -destination=./mocks/stripe_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	stripeGo "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/singhtechie24/Indiana-Hotels-Final/config"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
)

const (
	otelAttrIntentID  = "payment_intent.id"
	otelAttrBookingID = "booking_id"

	metadataBookingID = "booking_id"
	metadataUserID    = "user_id"
)

// Intent is the subset of a Stripe payment intent the application cares about.
// ReceiptURL is the guest-facing receipt on the latest charge and is empty
// until the intent has been charged.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
	BookingID    string
	ReceiptURL   string
}

type CreateIntentRequest struct {
	Amount    int64
	Currency  string
	BookingID string
	UserID    string
}

// Gateway wraps the Stripe API for payment intent management and webhook
// signature verification.
type Gateway interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (*Intent, error)
	GetIntent(ctx context.Context, intentID string) (*Intent, error)
	CancelIntent(ctx context.Context, intentID string) error
	VerifyWebhook(payload []byte, signature string) (stripeGo.Event, error)
	PublishableKey() string
}

type gatewayImpl struct {
	api    *client.API
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Gateway {
	api := &client.API{}
	api.Init(cfg.External.Stripe.SecretKey, nil)

	log.Info().Msg("Stripe client initialized")

	return &gatewayImpl{
		api:    api,
		config: cfg,
		otel:   ot,
	}
}

func (g *gatewayImpl) CreateIntent(ctx context.Context, req CreateIntentRequest) (intent *Intent, err error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelPaymentScopeName, constant.OtelPaymentScopeName+".CreateIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrBookingID, req.BookingID)

	params := &stripeGo.PaymentIntentParams{
		Amount:   stripeGo.Int64(req.Amount),
		Currency: stripeGo.String(req.Currency),
		AutomaticPaymentMethods: &stripeGo.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripeGo.Bool(true),
		},
	}
	params.AddMetadata(metadataBookingID, req.BookingID)
	params.AddMetadata(metadataUserID, req.UserID)

	result, err := g.api.PaymentIntents.New(params)
	if err != nil {
		log.Error().Err(err).Str("bookingID", req.BookingID).Msg("failed to create payment intent")

		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	scope.SetAttribute(otelAttrIntentID, result.ID)

	return fromStripeIntent(result), nil
}

func (g *gatewayImpl) GetIntent(ctx context.Context, intentID string) (intent *Intent, err error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelPaymentScopeName, constant.OtelPaymentScopeName+".GetIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrIntentID, intentID)

	params := &stripeGo.PaymentIntentParams{}
	params.AddExpand("latest_charge")

	result, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		log.Error().Err(err).Str("intentID", intentID).Msg("failed to get payment intent")

		return nil, fmt.Errorf("failed to get payment intent: %w", err)
	}

	return fromStripeIntent(result), nil
}

func (g *gatewayImpl) CancelIntent(ctx context.Context, intentID string) (err error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelPaymentScopeName, constant.OtelPaymentScopeName+".CancelIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrIntentID, intentID)

	_, err = g.api.PaymentIntents.Cancel(intentID, nil)
	if err != nil {
		log.Error().Err(err).Str("intentID", intentID).Msg("failed to cancel payment intent")

		return fmt.Errorf("failed to cancel payment intent: %w", err)
	}

	return nil
}

// VerifyWebhook checks the Stripe-Signature header against the configured
// webhook secret and returns the parsed event.
func (g *gatewayImpl) VerifyWebhook(payload []byte, signature string) (stripeGo.Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.config.External.Stripe.WebhookSecret)
	if err != nil {
		log.Error().Err(err).Msg("failed to verify webhook signature")

		return stripeGo.Event{}, fmt.Errorf("failed to verify webhook signature: %w", err)
	}

	return event, nil
}

func (g *gatewayImpl) PublishableKey() string {
	return g.config.External.Stripe.PublishableKey
}

func fromStripeIntent(pi *stripeGo.PaymentIntent) *Intent {
	intent := &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}

	if pi.Metadata != nil {
		intent.BookingID = pi.Metadata[metadataBookingID]
	}

	if pi.LatestCharge != nil {
		intent.ReceiptURL = pi.LatestCharge.ReceiptURL
	}

	return intent
}
