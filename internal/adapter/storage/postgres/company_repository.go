package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/powerdash/powerdash/internal/domain"
	"github.com/powerdash/powerdash/internal/ports"
)

type CompanyRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCompanyRepository(db *gorm.DB, log *zap.Logger) ports.CompanyRepository {
	return &CompanyRepository{
		db:  db,
		log: log,
	}
}

func (r *CompanyRepository) Save(ctx context.Context, company *domain.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *CompanyRepository) FindByCode(ctx context.Context, code string) (*domain.Company, error) {
	var company domain.Company
	err := r.db.WithContext(ctx).First(&company, "company_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	var company domain.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}
