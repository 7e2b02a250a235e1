package domain

import (
	"time"
)

type AlertStatus string

const (
	AlertStatusOpen         AlertStatus = "OPEN"
	AlertStatusAcknowledged AlertStatus = "ACKNOWLEDGED"
	AlertStatusClosed       AlertStatus = "CLOSED"
)

// Alert is a flagged anomaly raised when a reading's consumption exceeds the
// meter's trailing average by the configured percentage. It snapshots the
// triggering reading's values rather than referencing the reading row.
// Alerts are created only by the anomaly detector and are never deleted.
type Alert struct {
	ID             string      `json:"id" gorm:"primaryKey"`
	CompanyID      string      `json:"company_id" gorm:"index"`
	MeterID        string      `json:"meter_id" gorm:"index"`
	Date           string      `json:"date"`
	Consumption    float64     `json:"consumption"`
	Average        float64     `json:"average"`
	Percentage     float64     `json:"percentage"`
	Status         AlertStatus `json:"status"`
	AcknowledgedBy string      `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *time.Time  `json:"acknowledged_at,omitempty"`
	ClosedBy       string      `json:"closed_by,omitempty"`
	ClosedAt       *time.Time  `json:"closed_at,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}
