package ports

import (
	"context"

	"github.com/powerdash/powerdash/internal/domain"
)

type CompanyRepository interface {
	Save(ctx context.Context, company *domain.Company) error
	FindByCode(ctx context.Context, code string) (*domain.Company, error)
	FindByID(ctx context.Context, id string) (*domain.Company, error)
}

type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByCompanyAndUsername(ctx context.Context, companyID, username string) (*domain.User, error)
}

type MeterRepository interface {
	Save(ctx context.Context, meter *domain.Meter) error
	FindByMeterID(ctx context.Context, companyID, meterID string) (*domain.Meter, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]domain.Meter, error)
	CountByCompany(ctx context.Context, companyID string) (int64, error)
}

// ReadingRepository persists readings and serves the queries the anomaly
// detector and KPI aggregator are built on. Readings are append-only; there
// is no update or delete.
type ReadingRepository interface {
	Save(ctx context.Context, reading *domain.Reading) error
	FindAllByCompany(ctx context.Context, companyID string) ([]domain.Reading, error)
	CountByCompany(ctx context.Context, companyID string) (int64, error)

	// FindLatestByMeter returns the most recent reading by insertion order,
	// or nil when the meter has no readings.
	FindLatestByMeter(ctx context.Context, companyID, meterID string) (*domain.Reading, error)

	// FindWindowBeforeLatest returns up to limit readings immediately
	// preceding the latest one, newest first (skip 1, take limit, by
	// insertion order descending).
	FindWindowBeforeLatest(ctx context.Context, companyID, meterID string, limit int) ([]domain.Reading, error)

	// SumConsumptionByDatePrefix sums consumption over readings whose date
	// string starts with prefix ("2006-01-02" for a day, "2006-01" for a
	// month). No matches yields 0, not an error.
	SumConsumptionByDatePrefix(ctx context.Context, companyID, prefix string) (float64, error)

	// DailySums returns per-day consumption totals for the limit most recent
	// distinct calendar days with readings, newest day first.
	DailySums(ctx context.Context, companyID string, limit int) ([]domain.DailyConsumption, error)

	// DailySumsForMonth returns per-day totals for days matching the month
	// prefix, in ascending day order.
	DailySumsForMonth(ctx context.Context, companyID, monthPrefix string) ([]domain.DailyConsumption, error)
}

type AlertRepository interface {
	Save(ctx context.Context, alert *domain.Alert) error
	Update(ctx context.Context, alert *domain.Alert) error
	FindByID(ctx context.Context, companyID, id string) (*domain.Alert, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]domain.Alert, error)
	CountOpenByCompany(ctx context.Context, companyID string) (int64, error)
}
