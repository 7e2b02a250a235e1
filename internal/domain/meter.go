package domain

import (
	"time"
)

// Meter is a monitored utility consumption point. The MeterID key is unique
// within a tenant and a meter is immutable after registration.
type Meter struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CompanyID string    `json:"company_id" gorm:"index:idx_meters_company_meter,unique"`
	MeterID   string    `json:"meter_id" gorm:"index:idx_meters_company_meter,unique"`
	LoadType  string    `json:"load_type"`
	Location  string    `json:"location"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}
