package domain

// ReadingDateLayout is the minute-precision timestamp stored on readings.
// It is a plain string column so dashboard rollups can prefix-match on
// calendar day ("2006-01-02") and month ("2006-01").
const ReadingDateLayout = "2006-01-02 15:04"

// Reading is an append-only opening/closing measurement pair for a meter.
// Consumption is fixed at insert time (closing minus opening) and is never
// re-derived, even if later readings are corrected. The serial ID is the
// insertion order the anomaly detector's trailing window is defined over.
type Reading struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	CompanyID   string  `json:"company_id" gorm:"index"`
	MeterID     string  `json:"meter_id" gorm:"index"`
	Date        string  `json:"date"`
	Opening     float64 `json:"opening"`
	Closing     float64 `json:"closing"`
	Consumption float64 `json:"consumption"`
	EnteredBy   string  `json:"entered_by"`
	EmployeeID  string  `json:"employee_id"`
	Image       string  `json:"image,omitempty"`
}
