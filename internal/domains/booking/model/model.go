package model

import (
	"time"

	"github.com/singhtechie24/Indiana-Hotels-Final/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldRoomID          = "room_id"
	FieldUserID          = "user_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldGuests          = "guests"
	FieldGuestName       = "guest_name"
	FieldGuestEmail      = "guest_email"
	FieldGuestPhone      = "guest_phone"
	FieldStatus          = "status"
	FieldTotalPrice      = "total_price"
	FieldPaymentStatus   = "payment_status"
	FieldPaymentIntentID = "payment_intent_id"
	FieldReceiptURL      = "receipt_url"
	FieldSpecialRequests = "special_requests"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Booking models a stay over the half-open date range [check_in, check_out):
// the guest occupies the room on check_in night but not on check_out night.
type Booking struct {
	ID              string    `db:"id"`
	RoomID          string    `db:"room_id"`
	UserID          string    `db:"user_id"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	Guests          int       `db:"guests"`
	GuestName       string    `db:"guest_name"`
	GuestEmail      string    `db:"guest_email"`
	GuestPhone      string    `db:"guest_phone"`
	Status          string    `db:"status"`
	TotalPrice      float64   `db:"total_price"`
	PaymentStatus   string    `db:"payment_status"`
	PaymentIntentID *string   `db:"payment_intent_id"`
	ReceiptURL      *string   `db:"receipt_url"`
	SpecialRequests string    `db:"special_requests"`
	model.Metadata
}

// NightsBetween returns the number of nights charged for a stay over
// [checkIn, checkOut), rounding partial nights up.
func NightsBetween(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	if hours <= 0 {
		return 0
	}

	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++
	}

	return nights
}

// Nights returns the number of nights charged for the stay.
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckIn, b.CheckOut)
}
