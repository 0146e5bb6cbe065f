package dto

import (
	"github.com/google/uuid"

	"rri/internal/domains/room/model"
	"rri/shared/constant"
)

type CreateRoomRequest struct {
	Number string   `json:"number"  validate:"required,max=20"`
	TypeID int      `json:"type_id" validate:"required,gte=1"`
	Beds   *int     `json:"beds"    validate:"omitempty,gte=1"`
	Price  *float64 `json:"price"   validate:"omitempty,gte=0"`
	Status string   `json:"status"  validate:"omitempty,oneof=available occupied maintenance"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	beds := 1
	if c.Beds != nil {
		beds = *c.Beds
	}

	price := 0.0
	if c.Price != nil {
		price = *c.Price
	}

	status := constant.RoomStatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:     uuid.NewString(),
		Number: c.Number,
		TypeID: c.TypeID,
		Beds:   beds,
		Price:  price,
		Status: status,
	}
}

type RoomResponse struct {
	ID     string  `json:"id"`
	Number string  `json:"number"`
	Type   string  `json:"type"`
	Beds   int     `json:"beds"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.Number = m.Number
	r.Type = m.Type
	r.Beds = m.Beds
	r.Price = m.Price
	r.Status = m.Status
}

type RoomsOverviewResponse struct {
	Rooms []RoomResponse   `json:"rooms"`
	Types []model.RoomType `json:"types"`
	Stats model.Stats      `json:"stats"`
}
