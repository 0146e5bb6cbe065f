package model

const (
	TableName      = "rooms"
	TypesTableName = "room_types"
	EntityName     = "room"

	FieldID     = "id"
	FieldNumber = "number"
	FieldTypeID = "type_id"
	FieldBeds   = "beds"
	FieldPrice  = "price"
	FieldStatus = "status"
)

type Room struct {
	ID     string  `db:"id"`
	Number string  `db:"number"`
	TypeID int     `db:"type_id"`
	Type   string  `db:"type"`
	Beds   int     `db:"beds"`
	Price  float64 `db:"price"`
	Status string  `db:"status"`
}

type RoomType struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
