package reading

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/powerdash/powerdash/internal/adapter/queue"
	"github.com/powerdash/powerdash/internal/domain"
	"github.com/powerdash/powerdash/internal/observability/telemetry"
	"github.com/powerdash/powerdash/internal/ports"
)

type Service struct {
	readings ports.ReadingRepository
	meters   ports.MeterRepository
	detector ports.AnomalyDetector
	files    ports.FileStore
	mq       queue.MessageQueue
	now      func() time.Time
	log      *zap.Logger
}

func NewService(readings ports.ReadingRepository, meters ports.MeterRepository, detector ports.AnomalyDetector, files ports.FileStore, mq queue.MessageQueue, log *zap.Logger) ports.ReadingService {
	return &Service{
		readings: readings,
		meters:   meters,
		detector: detector,
		files:    files,
		mq:       mq,
		now:      time.Now,
		log:      log,
	}
}

// Record persists a new reading and then synchronously runs the anomaly
// check for the meter. Consumption is fixed here as closing minus opening;
// the opening/closing pair is accepted as-is, without ordering validation.
// The timestamp is server time truncated to the minute.
func (s *Service) Record(ctx context.Context, companyID string, input ports.RecordReadingInput) (*domain.Reading, error) {
	meter, err := s.meters.FindByMeterID(ctx, companyID, input.MeterID)
	if err != nil {
		return nil, err
	}
	if meter == nil {
		return nil, errors.New("meter not found")
	}

	now := s.now()

	image := ""
	if input.Image != nil {
		name := input.MeterID + "_" + now.Format("20060102150405") + filepath.Ext(input.ImageName)
		stored, err := s.files.Save(name, input.Image)
		if err != nil {
			return nil, err
		}
		image = stored
	}

	rd := &domain.Reading{
		CompanyID:   companyID,
		MeterID:     input.MeterID,
		Date:        now.Format(domain.ReadingDateLayout),
		Opening:     input.Opening,
		Closing:     input.Closing,
		Consumption: input.Closing - input.Opening,
		EnteredBy:   input.EnteredBy,
		EmployeeID:  input.EmployeeID,
		Image:       image,
	}

	if err := s.readings.Save(ctx, rd); err != nil {
		return nil, err
	}

	telemetry.ReadingsRecordedTotal.Inc()

	if payload, err := json.Marshal(rd); err == nil {
		if err := s.mq.Publish(queue.SubjectReadingRecorded, payload); err != nil {
			s.log.Warn("Failed to publish reading event", zap.Error(err))
		}
	}

	if _, err := s.detector.CheckLatest(ctx, companyID, input.MeterID); err != nil {
		return nil, err
	}

	return rd, nil
}

func (s *Service) List(ctx context.Context, companyID string) ([]domain.Reading, error) {
	return s.readings.FindAllByCompany(ctx, companyID)
}
