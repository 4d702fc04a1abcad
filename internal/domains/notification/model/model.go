package model

import "github.com/singhtechie24/Indiana-Hotels-Final/shared/model"

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldType        = "type"
	FieldTitle       = "title"
	FieldMessage     = "message"
	FieldReferenceID = "reference_id"
	FieldStatus      = "status"
	FieldRead        = "read"
)

type Notification struct {
	ID          string `db:"id"`
	UserID      string `db:"user_id"`
	Type        string `db:"type"`
	Title       string `db:"title"`
	Message     string `db:"message"`
	ReferenceID string `db:"reference_id"`
	Status      string `db:"status"`
	Read        bool   `db:"read"`
	model.Metadata
}
