package dto

import (
	"github.com/google/uuid"

	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/servicerequest/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared"
	gDto "github.com/singhtechie24/Indiana-Hotels-Final/shared/dto"
	gModel "github.com/singhtechie24/Indiana-Hotels-Final/shared/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/timezone"
)

type CreateServiceRequest struct {
	RoomID      string  `json:"room_id"              validate:"required"`
	BookingID   *string `json:"booking_id,omitempty" validate:"omitempty"`
	Type        string  `json:"type"                 validate:"required,oneof=housekeeping maintenance room_service"`
	Description string  `json:"description"          validate:"required,max=500"`
}

func (c *CreateServiceRequest) ToModel(userID string) model.ServiceRequest {
	return model.ServiceRequest{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		BookingID:   c.BookingID,
		UserID:      userID,
		Type:        c.Type,
		Description: c.Description,
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdateStatusRequest struct {
	Status     string  `db:"status"      json:"status"                validate:"required,oneof=pending in_progress completed cancelled"`
	AssignedTo *string `db:"assigned_to" json:"assigned_to,omitempty" validate:"omitempty,max=100"`
	Notes      string  `db:"notes"       json:"notes"                 validate:"omitempty,max=500"`
}

type ServiceRequestResponse struct {
	ID          string  `json:"id"`
	RoomID      string  `json:"room_id"`
	BookingID   *string `json:"booking_id,omitempty"`
	UserID      string  `json:"user_id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *ServiceRequestResponse) FromModel(model model.ServiceRequest) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.BookingID = model.BookingID
	r.UserID = model.UserID
	r.Type = model.Type
	r.Description = model.Description
	r.Status = model.Status
	r.AssignedTo = model.AssignedTo
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetServiceRequestsResponse struct {
	Requests  []ServiceRequestResponse `json:"requests"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetServiceRequestsResponse) FromModels(models []model.ServiceRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]ServiceRequestResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}
