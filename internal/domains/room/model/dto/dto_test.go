package dto_test

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/room/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/room/model/dto"
	gModel "github.com/singhtechie24/Indiana-Hotels-Final/shared/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/timezone"
)

func TestCreateRoomRequest_ToModel(t *testing.T) {
	req := dto.CreateRoomRequest{
		Number:        "101",
		Name:          "Deluxe Sea View",
		Type:          "deluxe",
		Floor:         1,
		Capacity:      2,
		PricePerNight: 150.0,
		Description:   "Sea view",
		Amenities:     []string{"wifi", "minibar"},
	}

	userID := "staff-user-id"
	room := req.ToModel(userID, "https://cdn.example.com/rooms/101.png")

	assert.NotEmpty(t, room.ID, "expected ID to be generated")
	assert.Equal(t, req.Number, room.Number)
	assert.Equal(t, req.Name, room.Name)
	assert.Equal(t, req.Type, room.Type)
	assert.Equal(t, pq.StringArray(req.Amenities), room.Amenities)
	assert.Equal(t, req.Capacity, room.Capacity)
	assert.Equal(t, req.PricePerNight, room.PricePerNight)
	assert.Equal(t, model.StatusAvailable, room.Status, "expected status to default to available")
	assert.True(t, room.Active, "expected active to default to true")
	assert.Equal(t, "https://cdn.example.com/rooms/101.png", room.Image)
	assert.Equal(t, userID, room.CreatedBy)
	assert.Equal(t, userID, room.ModifiedBy)
	assert.False(t, room.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateRoomRequest_ToModel_ExplicitValues(t *testing.T) {
	inactive := false
	req := dto.CreateRoomRequest{
		Number:        "102",
		Type:          "standard",
		Capacity:      1,
		PricePerNight: 80.0,
		Status:        model.StatusMaintenance,
		Active:        &inactive,
	}

	room := req.ToModel("staff-user-id", "")

	assert.Equal(t, model.StatusMaintenance, room.Status)
	assert.False(t, room.Active)
	assert.Empty(t, room.Image)
}

func TestRoomResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	roomModel := model.Room{
		ID:            "room-1",
		Number:        "101",
		Name:          "Deluxe Sea View",
		Type:          "deluxe",
		Floor:         1,
		Capacity:      2,
		PricePerNight: 150.0,
		Status:        model.StatusAvailable,
		Description:   "Sea view",
		Amenities:     pq.StringArray{"wifi", "minibar"},
		Image:         "https://cdn.example.com/rooms/101.png",
		Active:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "staff-user-id",
			ModifiedBy: "staff-user-id",
		},
	}

	var response dto.RoomResponse
	response.FromModel(roomModel)

	assert.Equal(t, roomModel.ID, response.ID)
	assert.Equal(t, roomModel.Number, response.Number)
	assert.Equal(t, roomModel.Name, response.Name)
	assert.Equal(t, roomModel.Type, response.Type)
	assert.Equal(t, []string(roomModel.Amenities), response.Amenities)
	assert.Equal(t, roomModel.PricePerNight, response.PricePerNight)
	assert.Equal(t, roomModel.Status, response.Status)
	assert.Equal(t, roomModel.Image, response.Image)
	assert.Equal(t, roomModel.Active, response.Active)
	assert.Equal(t, roomModel.CreatedBy, response.CreatedBy)
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	rooms := []model.Room{
		{
			ID:     "room-1",
			Number: "101",
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
			},
		},
		{
			ID:     "room-2",
			Number: "102",
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
			},
		},
	}

	var response dto.GetRoomsResponse
	response.FromModels(rooms, 25, 10)

	assert.Equal(t, 25, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	assert.Len(t, response.Rooms, len(rooms))

	for i, room := range response.Rooms {
		assert.Equal(t, rooms[i].ID, room.ID)
		assert.Equal(t, rooms[i].Number, room.Number)
	}
}
