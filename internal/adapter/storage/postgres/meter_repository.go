package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/powerdash/powerdash/internal/domain"
	"github.com/powerdash/powerdash/internal/ports"
)

type MeterRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMeterRepository(db *gorm.DB, log *zap.Logger) ports.MeterRepository {
	return &MeterRepository{
		db:  db,
		log: log,
	}
}

func (r *MeterRepository) Save(ctx context.Context, meter *domain.Meter) error {
	return r.db.WithContext(ctx).Save(meter).Error
}

func (r *MeterRepository) FindByMeterID(ctx context.Context, companyID, meterID string) (*domain.Meter, error) {
	var meter domain.Meter
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND meter_id = ?", companyID, meterID).
		First(&meter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meter, nil
}

func (r *MeterRepository) FindAllByCompany(ctx context.Context, companyID string) ([]domain.Meter, error) {
	var meters []domain.Meter
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at").
		Find(&meters).Error
	return meters, err
}

func (r *MeterRepository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Meter{}).
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count, err
}
