package model

import "time"

const (
	ApplianceTypeRefrigerator   = "refrigerator"
	ApplianceTypeOven           = "oven"
	ApplianceTypeDishwasher     = "dishwasher"
	ApplianceTypeWasher         = "washer"
	ApplianceTypeDryer          = "dryer"
	ApplianceTypeMicrowave      = "microwave"
	ApplianceTypeAirConditioner = "air_conditioner"
	ApplianceTypeHeater         = "heater"
	ApplianceTypeWaterHeater    = "water_heater"
	ApplianceTypeFurnace        = "furnace"
	ApplianceTypeOther          = "other"
)

type Appliance struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Brand          string     `json:"brand"`
	ModelNumber    string     `json:"model_number"`
	SerialNumber   string     `json:"serial_number"`
	ApplianceType  string     `json:"appliance_type"`
	RoomID         *int64     `json:"room_id"`
	PurchaseDate   *time.Time `json:"purchase_date"`
	WarrantyExpiry *time.Time `json:"warranty_expiry"`
	PurchasePrice  *float64   `json:"purchase_price"`
	ManualURL      string     `json:"manual_url"`
	ManualText     string     `json:"manual_text,omitempty"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
