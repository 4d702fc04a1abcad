package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/booking/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	gDto "github.com/singhtechie24/Indiana-Hotels-Final/shared/dto"
	gModel "github.com/singhtechie24/Indiana-Hotels-Final/shared/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID          string `json:"room_id"          validate:"required"`
	CheckIn         string `json:"check_in"         validate:"required,dateonly"`
	CheckOut        string `json:"check_out"        validate:"required,dateonly"`
	Guests          int    `json:"guests"           validate:"required,min=1"`
	GuestName       string `json:"guest_name"       validate:"required,max=100"`
	GuestEmail      string `json:"guest_email"      validate:"required,email"`
	GuestPhone      string `json:"guest_phone"      validate:"omitempty,max=20"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

// Dates parses the check-in and check-out dates in the application timezone.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateBookingRequest) ToModel(userID string, checkIn, checkOut time.Time, totalPrice float64) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		RoomID:          c.RoomID,
		UserID:          userID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          c.Guests,
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      c.GuestPhone,
		Status:          model.StatusPending,
		TotalPrice:      totalPrice,
		PaymentStatus:   model.PaymentStatusPending,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type CheckAvailabilityRequest struct {
	RoomID   string `json:"room_id"   validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required,dateonly"`
	CheckOut string `json:"check_out" validate:"required,dateonly"`
}

func (c *CheckAvailabilityRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)

	return checkIn, checkOut, err
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	RoomID          string  `json:"room_id"`
	UserID          string  `json:"user_id"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	Guests          int     `json:"guests"`
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      string  `json:"guest_phone,omitempty"`
	Status          string  `json:"status"`
	TotalPrice      float64 `json:"total_price"`
	PaymentStatus   string  `json:"payment_status"`
	PaymentIntentID *string `json:"payment_intent_id,omitempty"`
	ReceiptURL      *string `json:"receipt_url,omitempty"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.UserID = model.UserID
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Guests = model.Guests
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
	r.PaymentStatus = model.PaymentStatus
	r.PaymentIntentID = model.PaymentIntentID
	r.ReceiptURL = model.ReceiptURL
	r.SpecialRequests = model.SpecialRequests
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
