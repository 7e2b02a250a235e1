package domain

// DailyConsumption is one point of a per-day consumption series. Day is the
// "2006-01-02" prefix of the reading date.
type DailyConsumption struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
}

// DashboardStats is the on-demand KPI snapshot for a tenant. Each field is
// computed by an independent query against current storage state; nothing
// here is cached or transactional across the individual statistics.
type DashboardStats struct {
	OpenAlerts       int64              `json:"open_alerts"`
	TotalMeters      int64              `json:"total_meters"`
	TotalReadings    int64              `json:"total_readings"`
	TodayConsumption float64            `json:"today_consumption"`
	MonthConsumption float64            `json:"month_consumption"`
	Last7Days        []DailyConsumption `json:"last_7_days"`
	MonthByDay       []DailyConsumption `json:"month_by_day"`
}
