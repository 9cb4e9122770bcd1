package model

import "time"

const (
	ServiceTypePlumbing          = "plumbing"
	ServiceTypeElectrical        = "electrical"
	ServiceTypeHVAC              = "hvac"
	ServiceTypeApplianceRepair   = "appliance_repair"
	ServiceTypeCleaning          = "cleaning"
	ServiceTypeLandscaping       = "landscaping"
	ServiceTypeGeneralContractor = "general_contractor"
	ServiceTypeOther             = "other"
)

type Vendor struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Website       string    `json:"website"`
	ServiceType   string    `json:"service_type"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
