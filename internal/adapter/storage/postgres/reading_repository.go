package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/powerdash/powerdash/internal/domain"
	"github.com/powerdash/powerdash/internal/ports"
)

type ReadingRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewReadingRepository(db *gorm.DB, log *zap.Logger) ports.ReadingRepository {
	return &ReadingRepository{
		db:  db,
		log: log,
	}
}

func (r *ReadingRepository) Save(ctx context.Context, reading *domain.Reading) error {
	return r.db.WithContext(ctx).Create(reading).Error
}

func (r *ReadingRepository) FindAllByCompany(ctx context.Context, companyID string) ([]domain.Reading, error) {
	var readings []domain.Reading
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("date DESC").
		Find(&readings).Error
	return readings, err
}

func (r *ReadingRepository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Reading{}).
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count, err
}

func (r *ReadingRepository) FindLatestByMeter(ctx context.Context, companyID, meterID string) (*domain.Reading, error) {
	var reading domain.Reading
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND meter_id = ?", companyID, meterID).
		Order("id DESC").
		First(&reading).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reading, nil
}

func (r *ReadingRepository) FindWindowBeforeLatest(ctx context.Context, companyID, meterID string, limit int) ([]domain.Reading, error) {
	var readings []domain.Reading
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND meter_id = ?", companyID, meterID).
		Order("id DESC").
		Offset(1).
		Limit(limit).
		Find(&readings).Error
	return readings, err
}

func (r *ReadingRepository) SumConsumptionByDatePrefix(ctx context.Context, companyID, prefix string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&domain.Reading{}).
		Where("company_id = ? AND date LIKE ?", companyID, prefix+"%").
		Select("COALESCE(SUM(consumption), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ReadingRepository) DailySums(ctx context.Context, companyID string, limit int) ([]domain.DailyConsumption, error) {
	var sums []domain.DailyConsumption
	err := r.db.WithContext(ctx).Raw(
		`SELECT substr(date, 1, 10) AS day, SUM(consumption) AS total
		 FROM readings
		 WHERE company_id = ?
		 GROUP BY substr(date, 1, 10)
		 ORDER BY day DESC
		 LIMIT ?`,
		companyID, limit,
	).Scan(&sums).Error
	return sums, err
}

func (r *ReadingRepository) DailySumsForMonth(ctx context.Context, companyID, monthPrefix string) ([]domain.DailyConsumption, error) {
	var sums []domain.DailyConsumption
	err := r.db.WithContext(ctx).Raw(
		`SELECT substr(date, 1, 10) AS day, SUM(consumption) AS total
		 FROM readings
		 WHERE company_id = ? AND date LIKE ?
		 GROUP BY substr(date, 1, 10)
		 ORDER BY day ASC`,
		companyID, monthPrefix+"%",
	).Scan(&sums).Error
	return sums, err
}
