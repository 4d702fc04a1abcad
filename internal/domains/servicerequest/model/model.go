package model

import "github.com/singhtechie24/Indiana-Hotels-Final/shared/model"

const (
	TableName  = "service_requests"
	EntityName = "service_request"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldBookingID   = "booking_id"
	FieldUserID      = "user_id"
	FieldType        = "type"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldAssignedTo  = "assigned_to"
	FieldNotes       = "notes"
)

const (
	TypeHousekeeping = "housekeeping"
	TypeMaintenance  = "maintenance"
	TypeRoomService  = "room_service"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type ServiceRequest struct {
	ID          string  `db:"id"`
	RoomID      string  `db:"room_id"`
	BookingID   *string `db:"booking_id"`
	UserID      string  `db:"user_id"`
	Type        string  `db:"type"`
	Description string  `db:"description"`
	Status      string  `db:"status"`
	AssignedTo  *string `db:"assigned_to"`
	Notes       string  `db:"notes"`
	model.Metadata
}

// CanTransitionTo reports whether a request may move from its current status
// to the target. Completed and cancelled are terminal.
func (s *ServiceRequest) CanTransitionTo(target string) bool {
	switch s.Status {
	case StatusPending:
		return target == StatusInProgress || target == StatusCancelled
	case StatusInProgress:
		return target == StatusCompleted || target == StatusCancelled
	default:
		return false
	}
}
