package meter

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/powerdash/powerdash/internal/domain"
	"github.com/powerdash/powerdash/internal/ports"
)

type Service struct {
	repo ports.MeterRepository
	log  *zap.Logger
}

func NewService(repo ports.MeterRepository, log *zap.Logger) ports.MeterService {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Register creates a meter under the tenant. The meter key must be unique
// within the tenant; meters are immutable after registration.
func (s *Service) Register(ctx context.Context, companyID string, meter *domain.Meter) (*domain.Meter, error) {
	if meter.MeterID == "" {
		return nil, errors.New("meter id is required")
	}

	existing, err := s.repo.FindByMeterID(ctx, companyID, meter.MeterID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("meter already registered")
	}

	meter.ID = uuid.New().String()
	meter.CompanyID = companyID
	meter.CreatedAt = time.Now()

	if err := s.repo.Save(ctx, meter); err != nil {
		return nil, err
	}

	s.log.Info("Meter registered", zap.String("meter_id", meter.MeterID), zap.String("company_id", companyID))
	return meter, nil
}

func (s *Service) List(ctx context.Context, companyID string) ([]domain.Meter, error) {
	return s.repo.FindAllByCompany(ctx, companyID)
}
