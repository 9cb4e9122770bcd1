package model

import "time"

const (
	RoomTypeBedroom    = "bedroom"
	RoomTypeBathroom   = "bathroom"
	RoomTypeKitchen    = "kitchen"
	RoomTypeLivingRoom = "living_room"
	RoomTypeDiningRoom = "dining_room"
	RoomTypeOffice     = "office"
	RoomTypeBasement   = "basement"
	RoomTypeAttic      = "attic"
	RoomTypeGarage     = "garage"
	RoomTypeOther      = "other"
)

type Room struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	RoomType    string    `json:"room_type"`
	Floor       int       `json:"floor"`
	SquareFeet  *float64  `json:"square_feet"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
