package dto

import (
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/stripe"
)

type CreateIntentRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
}

// CreateIntentResponse carries everything the client needs to present the
// hosted payment sheet.
type CreateIntentResponse struct {
	PaymentIntentID string  `json:"payment_intent_id"`
	ClientSecret    string  `json:"client_secret"`
	PublishableKey  string  `json:"publishable_key"`
	MerchantName    string  `json:"merchant_name"`
	Amount          int64   `json:"amount"`
	Currency        string  `json:"currency"`
	TotalPrice      float64 `json:"total_price"`
}

func (r *CreateIntentResponse) FromIntent(intent *stripe.Intent, publishableKey, merchantName string, totalPrice float64) {
	r.PaymentIntentID = intent.ID
	r.ClientSecret = intent.ClientSecret
	r.PublishableKey = publishableKey
	r.MerchantName = merchantName
	r.Amount = intent.Amount
	r.Currency = intent.Currency
	r.TotalPrice = totalPrice
}

type ConfirmPaymentRequest struct {
	BookingID       string `json:"booking_id"        validate:"required"`
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

type FailPaymentRequest struct {
	BookingID       string `json:"booking_id"        validate:"required"`
	PaymentIntentID string `json:"payment_intent_id" validate:"omitempty"`
}
