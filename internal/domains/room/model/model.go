package model

import (
	"github.com/lib/pq"

	"github.com/singhtechie24/Indiana-Hotels-Final/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldNumber        = "number"
	FieldName          = "name"
	FieldType          = "type"
	FieldFloor         = "floor"
	FieldCapacity      = "capacity"
	FieldPricePerNight = "price_per_night"
	FieldStatus        = "status"
	FieldDescription   = "description"
	FieldAmenities     = "amenities"
	FieldImage         = "image"
	FieldActive        = "active"
)

const (
	TypeStandard = "standard"
	TypeDeluxe   = "deluxe"
	TypeSuite    = "suite"
)

const (
	StatusAvailable    = "available"
	StatusOccupied     = "occupied"
	StatusCleaning     = "cleaning"
	StatusMaintenance  = "maintenance"
	StatusDoNotDisturb = "do-not-disturb"
)

type Room struct {
	ID            string         `db:"id"`
	Number        string         `db:"number"`
	Name          string         `db:"name"`
	Type          string         `db:"type"`
	Floor         int            `db:"floor"`
	Capacity      int            `db:"capacity"`
	PricePerNight float64        `db:"price_per_night"`
	Status        string         `db:"status"`
	Description   string         `db:"description"`
	Amenities     pq.StringArray `db:"amenities"`
	Image         string         `db:"image"`
	Active        bool           `db:"active"`
	model.Metadata
}
