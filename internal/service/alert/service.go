package alert

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/powerdash/powerdash/internal/domain"
	"github.com/powerdash/powerdash/internal/ports"
)

type Service struct {
	repo ports.AlertRepository
	log  *zap.Logger
}

func NewService(repo ports.AlertRepository, log *zap.Logger) ports.AlertService {
	return &Service{
		repo: repo,
		log:  log,
	}
}

func (s *Service) List(ctx context.Context, companyID string) ([]domain.Alert, error) {
	return s.repo.FindAllByCompany(ctx, companyID)
}

// Acknowledge marks an alert ACKNOWLEDGED and records who did it and when.
// Transitions are not guarded: an already closed alert can be re-acknowledged
// and the update is applied as-is.
func (s *Service) Acknowledge(ctx context.Context, companyID, alertID, actor string) (*domain.Alert, error) {
	alert, err := s.repo.FindByID(ctx, companyID, alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, errors.New("alert not found")
	}

	now := time.Now()
	alert.Status = domain.AlertStatusAcknowledged
	alert.AcknowledgedBy = actor
	alert.AcknowledgedAt = &now

	if err := s.repo.Update(ctx, alert); err != nil {
		return nil, err
	}

	s.log.Info("Alert acknowledged", zap.String("alert_id", alertID), zap.String("by", actor))
	return alert, nil
}

// Close marks an alert CLOSED and records who closed it and when. Like
// Acknowledge, this applies regardless of the alert's current status.
func (s *Service) Close(ctx context.Context, companyID, alertID, actor string) (*domain.Alert, error) {
	alert, err := s.repo.FindByID(ctx, companyID, alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, errors.New("alert not found")
	}

	now := time.Now()
	alert.Status = domain.AlertStatusClosed
	alert.ClosedBy = actor
	alert.ClosedAt = &now

	if err := s.repo.Update(ctx, alert); err != nil {
		return nil, err
	}

	s.log.Info("Alert closed", zap.String("alert_id", alertID), zap.String("by", actor))
	return alert, nil
}
