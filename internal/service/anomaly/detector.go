package anomaly

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/powerdash/powerdash/internal/adapter/queue"
	"github.com/powerdash/powerdash/internal/domain"
	"github.com/powerdash/powerdash/internal/observability/telemetry"
	"github.com/powerdash/powerdash/internal/ports"
)

const (
	// trailingWindow is how many readings immediately preceding the latest
	// one form the baseline average.
	trailingWindow = 7

	// thresholdPercent is the upward deviation, in percent of the trailing
	// average, at which an alert is raised.
	thresholdPercent = 30.0
)

type Detector struct {
	readings ports.ReadingRepository
	alerts   ports.AlertRepository
	mq       queue.MessageQueue
	now      func() time.Time
	log      *zap.Logger
}

func NewDetector(readings ports.ReadingRepository, alerts ports.AlertRepository, mq queue.MessageQueue, log *zap.Logger) ports.AnomalyDetector {
	return &Detector{
		readings: readings,
		alerts:   alerts,
		mq:       mq,
		now:      time.Now,
		log:      log,
	}
}

// CheckLatest runs the one-shot anomaly check for a meter's most recent
// reading. It compares the latest consumption against the mean of up to
// trailingWindow readings immediately preceding it (by insertion order) and
// raises an OPEN alert when the upward deviation reaches thresholdPercent.
//
// A meter with fewer than 2 readings never fires: the trailing average
// defaults to 0 and a non-positive average suppresses the check entirely.
// Large drops are deliberately not checked.
func (d *Detector) CheckLatest(ctx context.Context, companyID, meterID string) (*domain.Alert, error) {
	latest, err := d.readings.FindLatestByMeter(ctx, companyID, meterID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, nil
	}

	window, err := d.readings.FindWindowBeforeLatest(ctx, companyID, meterID, trailingWindow)
	if err != nil {
		return nil, err
	}

	average := 0.0
	if len(window) > 0 {
		var sum float64
		for _, r := range window {
			sum += r.Consumption
		}
		average = sum / float64(len(window))
	}
	if average <= 0 {
		return nil, nil
	}

	percentage := ((latest.Consumption - average) / average) * 100
	if percentage < thresholdPercent {
		return nil, nil
	}

	now := d.now()
	alert := &domain.Alert{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		MeterID:     meterID,
		Date:        now.Format(domain.ReadingDateLayout),
		Consumption: latest.Consumption,
		Average:     round2(average),
		Percentage:  round2(percentage),
		Status:      domain.AlertStatusOpen,
		CreatedAt:   now,
	}

	if err := d.alerts.Save(ctx, alert); err != nil {
		return nil, err
	}

	telemetry.AlertsRaisedTotal.Inc()
	d.log.Info("Anomaly alert raised",
		zap.String("meter_id", meterID),
		zap.Float64("consumption", alert.Consumption),
		zap.Float64("average", alert.Average),
		zap.Float64("percentage", alert.Percentage),
	)

	if payload, err := json.Marshal(alert); err == nil {
		if err := d.mq.Publish(queue.SubjectAlertRaised, payload); err != nil {
			d.log.Warn("Failed to publish alert event", zap.Error(err))
		}
	}

	return alert, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
