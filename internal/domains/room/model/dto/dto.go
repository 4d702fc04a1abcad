package dto

import (
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/room/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared"
	gDto "github.com/singhtechie24/Indiana-Hotels-Final/shared/dto"
	gModel "github.com/singhtechie24/Indiana-Hotels-Final/shared/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/timezone"
)

type CreateRoomRequest struct {
	Number        string                `json:"number"          validate:"required,max=10"`
	Name          string                `json:"name"            validate:"required,max=100"`
	Type          string                `json:"type"            validate:"required,oneof=standard deluxe suite"`
	Floor         int                   `json:"floor"           validate:"omitempty,min=0"`
	Capacity      int                   `json:"capacity"        validate:"required,min=1"`
	PricePerNight float64               `json:"price_per_night" validate:"required,gte=0"`
	Status        string                `json:"status"          validate:"omitempty,oneof=available occupied cleaning maintenance do-not-disturb"`
	Description   string                `json:"description"     validate:"omitempty,max=500"`
	Amenities     []string              `json:"amenities"       validate:"omitempty,dive,max=50"`
	Image         *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
	Active        *bool                 `json:"active"          validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Room{
		ID:            uuid.NewString(),
		Number:        c.Number,
		Name:          c.Name,
		Type:          c.Type,
		Floor:         c.Floor,
		Capacity:      c.Capacity,
		PricePerNight: c.PricePerNight,
		Status:        status,
		Description:   c.Description,
		Amenities:     pq.StringArray(c.Amenities),
		Image:         imageURL,
		Active:        active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number        string                `db:"number"          json:"number"          validate:"omitempty,max=10"`
	Name          string                `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Type          string                `db:"type"            json:"type"            validate:"omitempty,oneof=standard deluxe suite"`
	Floor         *int                  `db:"floor"           json:"floor"           validate:"omitempty,min=0"`
	Capacity      *int                  `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	PricePerNight *float64              `db:"price_per_night" json:"price_per_night" validate:"omitempty,gte=0"`
	Status        string                `db:"status"          json:"status"          validate:"omitempty,oneof=available occupied cleaning maintenance do-not-disturb"`
	Description   string                `db:"description"     json:"description"     validate:"omitempty,max=500"`
	Amenities     pq.StringArray        `db:"amenities"       json:"amenities"       validate:"omitempty,dive,max=50"`
	Image         *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
	Active        *bool                 `db:"active"          json:"active"          validate:"omitempty"`
}

type RoomResponse struct {
	ID            string   `json:"id"`
	Number        string   `json:"number"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Floor         int      `json:"floor"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"price_per_night"`
	Status        string   `json:"status"`
	Description   string   `json:"description"`
	Amenities     []string `json:"amenities"`
	Image         string   `json:"image"`
	Active        bool     `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Name = model.Name
	r.Type = model.Type
	r.Floor = model.Floor
	r.Capacity = model.Capacity
	r.PricePerNight = model.PricePerNight
	r.Status = model.Status
	r.Description = model.Description
	r.Amenities = model.Amenities
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// UpdateStatusRequest changes only the housekeeping status of a room.
type UpdateStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=available occupied cleaning maintenance do-not-disturb"`
}
