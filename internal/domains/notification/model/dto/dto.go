package dto

import (
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/notification/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared"
	gDto "github.com/singhtechie24/Indiana-Hotels-Final/shared/dto"
)

type NotificationResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	ReferenceID string `json:"reference_id,omitempty"`
	Status      string `json:"status,omitempty"`
	Read        bool   `json:"read"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Type = model.Type
	r.Title = model.Title
	r.Message = model.Message
	r.ReferenceID = model.ReferenceID
	r.Status = model.Status
	r.Read = model.Read
	r.Metadata.FromModel(model.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, unread, limit int) {
	r.TotalData = totalData
	r.UnreadCount = unread
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}

type MarkReadRequest struct {
	Read bool `db:"read" json:"read"`
}
