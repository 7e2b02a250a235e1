package kpi

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/powerdash/powerdash/internal/domain"
	"github.com/powerdash/powerdash/internal/ports"
)

const chartDays = 7

type Service struct {
	meters   ports.MeterRepository
	readings ports.ReadingRepository
	alerts   ports.AlertRepository
	now      func() time.Time
	log      *zap.Logger
}

func NewService(meters ports.MeterRepository, readings ports.ReadingRepository, alerts ports.AlertRepository, log *zap.Logger) ports.KPIService {
	return &Service{
		meters:   meters,
		readings: readings,
		alerts:   alerts,
		now:      time.Now,
		log:      log,
	}
}

// DashboardStats assembles the tenant's KPI snapshot. Every statistic is an
// independent query against current storage state; there is no caching and
// no transaction spanning the queries, so the snapshot is only as consistent
// as the moment each query ran.
func (s *Service) DashboardStats(ctx context.Context, companyID string) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	now := s.now()

	openAlerts, err := s.alerts.CountOpenByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	stats.OpenAlerts = openAlerts

	totalMeters, err := s.meters.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	stats.TotalMeters = totalMeters

	totalReadings, err := s.readings.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	stats.TotalReadings = totalReadings

	today, err := s.readings.SumConsumptionByDatePrefix(ctx, companyID, now.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	stats.TodayConsumption = round2(today)

	month, err := s.readings.SumConsumptionByDatePrefix(ctx, companyID, now.Format("2006-01"))
	if err != nil {
		return nil, err
	}
	stats.MonthConsumption = round2(month)

	// Fetched newest-day-first, reversed to ascending for charting.
	recent, err := s.readings.DailySums(ctx, companyID, chartDays)
	if err != nil {
		return nil, err
	}
	stats.Last7Days = reverseRounded(recent)

	monthly, err := s.readings.DailySumsForMonth(ctx, companyID, now.Format("2006-01"))
	if err != nil {
		return nil, err
	}
	stats.MonthByDay = rounded(monthly)

	return stats, nil
}

func rounded(in []domain.DailyConsumption) []domain.DailyConsumption {
	out := make([]domain.DailyConsumption, len(in))
	for i, d := range in {
		out[i] = domain.DailyConsumption{Day: d.Day, Total: round2(d.Total)}
	}
	return out
}

func reverseRounded(in []domain.DailyConsumption) []domain.DailyConsumption {
	out := make([]domain.DailyConsumption, len(in))
	for i, d := range in {
		out[len(in)-1-i] = domain.DailyConsumption{Day: d.Day, Total: round2(d.Total)}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
