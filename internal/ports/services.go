package ports

import (
	"context"
	"io"

	"github.com/powerdash/powerdash/internal/domain"
)

type AuthService interface {
	// Login authenticates an operator against a tenant identified by its
	// company code. Returns access token, refresh token.
	Login(ctx context.Context, companyCode, username, password string) (string, string, error)
	Register(ctx context.Context, companyCode string, user *domain.User) error
	RefreshToken(ctx context.Context, token string) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}

type MeterService interface {
	Register(ctx context.Context, companyID string, meter *domain.Meter) (*domain.Meter, error)
	List(ctx context.Context, companyID string) ([]domain.Meter, error)
}

// RecordReadingInput carries one reading submission. Image is optional; when
// present the file is stored and the sanitized filename recorded on the
// reading.
type RecordReadingInput struct {
	MeterID    string
	Opening    float64
	Closing    float64
	EnteredBy  string
	EmployeeID string
	Image      io.Reader
	ImageName  string
}

type ReadingService interface {
	Record(ctx context.Context, companyID string, input RecordReadingInput) (*domain.Reading, error)
	List(ctx context.Context, companyID string) ([]domain.Reading, error)
}

// AnomalyDetector runs the one-shot trailing-average check for a meter's
// latest reading. Returns the raised alert, or nil when nothing fired.
type AnomalyDetector interface {
	CheckLatest(ctx context.Context, companyID, meterID string) (*domain.Alert, error)
}

type KPIService interface {
	DashboardStats(ctx context.Context, companyID string) (*domain.DashboardStats, error)
}

type AlertService interface {
	List(ctx context.Context, companyID string) ([]domain.Alert, error)
	Acknowledge(ctx context.Context, companyID, alertID, actor string) (*domain.Alert, error)
	Close(ctx context.Context, companyID, alertID, actor string) (*domain.Alert, error)
}

type ExportService interface {
	// ReadingsWorkbook renders all of a tenant's readings as an xlsx
	// workbook, one row per reading.
	ReadingsWorkbook(ctx context.Context, companyID string) ([]byte, error)
}
