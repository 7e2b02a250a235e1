package mocks

import (
	"context"

	"github.com/powerdash/powerdash/internal/domain"
)

// MockCompanyRepository is a mock implementation of CompanyRepository
type MockCompanyRepository struct {
	SaveFunc       func(ctx context.Context, company *domain.Company) error
	FindByCodeFunc func(ctx context.Context, code string) (*domain.Company, error)
	FindByIDFunc   func(ctx context.Context, id string) (*domain.Company, error)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *domain.Company) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, company)
	}
	return nil
}

func (m *MockCompanyRepository) FindByCode(ctx context.Context, code string) (*domain.Company, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	SaveFunc                     func(ctx context.Context, user *domain.User) error
	FindByIDFunc                 func(ctx context.Context, id string) (*domain.User, error)
	FindByCompanyAndUsernameFunc func(ctx context.Context, companyID, username string) (*domain.User, error)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByCompanyAndUsername(ctx context.Context, companyID, username string) (*domain.User, error) {
	if m.FindByCompanyAndUsernameFunc != nil {
		return m.FindByCompanyAndUsernameFunc(ctx, companyID, username)
	}
	return nil, nil
}

// MockMeterRepository is a mock implementation of MeterRepository
type MockMeterRepository struct {
	SaveFunc             func(ctx context.Context, meter *domain.Meter) error
	FindByMeterIDFunc    func(ctx context.Context, companyID, meterID string) (*domain.Meter, error)
	FindAllByCompanyFunc func(ctx context.Context, companyID string) ([]domain.Meter, error)
	CountByCompanyFunc   func(ctx context.Context, companyID string) (int64, error)
}

func (m *MockMeterRepository) Save(ctx context.Context, meter *domain.Meter) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, meter)
	}
	return nil
}

func (m *MockMeterRepository) FindByMeterID(ctx context.Context, companyID, meterID string) (*domain.Meter, error) {
	if m.FindByMeterIDFunc != nil {
		return m.FindByMeterIDFunc(ctx, companyID, meterID)
	}
	return nil, nil
}

func (m *MockMeterRepository) FindAllByCompany(ctx context.Context, companyID string) ([]domain.Meter, error) {
	if m.FindAllByCompanyFunc != nil {
		return m.FindAllByCompanyFunc(ctx, companyID)
	}
	return []domain.Meter{}, nil
}

func (m *MockMeterRepository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	if m.CountByCompanyFunc != nil {
		return m.CountByCompanyFunc(ctx, companyID)
	}
	return 0, nil
}

// MockReadingRepository is a mock implementation of ReadingRepository
type MockReadingRepository struct {
	SaveFunc                       func(ctx context.Context, reading *domain.Reading) error
	FindAllByCompanyFunc           func(ctx context.Context, companyID string) ([]domain.Reading, error)
	CountByCompanyFunc             func(ctx context.Context, companyID string) (int64, error)
	FindLatestByMeterFunc          func(ctx context.Context, companyID, meterID string) (*domain.Reading, error)
	FindWindowBeforeLatestFunc     func(ctx context.Context, companyID, meterID string, limit int) ([]domain.Reading, error)
	SumConsumptionByDatePrefixFunc func(ctx context.Context, companyID, prefix string) (float64, error)
	DailySumsFunc                  func(ctx context.Context, companyID string, limit int) ([]domain.DailyConsumption, error)
	DailySumsForMonthFunc          func(ctx context.Context, companyID, monthPrefix string) ([]domain.DailyConsumption, error)
}

func (m *MockReadingRepository) Save(ctx context.Context, reading *domain.Reading) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, reading)
	}
	return nil
}

func (m *MockReadingRepository) FindAllByCompany(ctx context.Context, companyID string) ([]domain.Reading, error) {
	if m.FindAllByCompanyFunc != nil {
		return m.FindAllByCompanyFunc(ctx, companyID)
	}
	return []domain.Reading{}, nil
}

func (m *MockReadingRepository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	if m.CountByCompanyFunc != nil {
		return m.CountByCompanyFunc(ctx, companyID)
	}
	return 0, nil
}

func (m *MockReadingRepository) FindLatestByMeter(ctx context.Context, companyID, meterID string) (*domain.Reading, error) {
	if m.FindLatestByMeterFunc != nil {
		return m.FindLatestByMeterFunc(ctx, companyID, meterID)
	}
	return nil, nil
}

func (m *MockReadingRepository) FindWindowBeforeLatest(ctx context.Context, companyID, meterID string, limit int) ([]domain.Reading, error) {
	if m.FindWindowBeforeLatestFunc != nil {
		return m.FindWindowBeforeLatestFunc(ctx, companyID, meterID, limit)
	}
	return []domain.Reading{}, nil
}

func (m *MockReadingRepository) SumConsumptionByDatePrefix(ctx context.Context, companyID, prefix string) (float64, error) {
	if m.SumConsumptionByDatePrefixFunc != nil {
		return m.SumConsumptionByDatePrefixFunc(ctx, companyID, prefix)
	}
	return 0, nil
}

func (m *MockReadingRepository) DailySums(ctx context.Context, companyID string, limit int) ([]domain.DailyConsumption, error) {
	if m.DailySumsFunc != nil {
		return m.DailySumsFunc(ctx, companyID, limit)
	}
	return []domain.DailyConsumption{}, nil
}

func (m *MockReadingRepository) DailySumsForMonth(ctx context.Context, companyID, monthPrefix string) ([]domain.DailyConsumption, error) {
	if m.DailySumsForMonthFunc != nil {
		return m.DailySumsForMonthFunc(ctx, companyID, monthPrefix)
	}
	return []domain.DailyConsumption{}, nil
}

// MockAlertRepository is a mock implementation of AlertRepository
type MockAlertRepository struct {
	SaveFunc               func(ctx context.Context, alert *domain.Alert) error
	UpdateFunc             func(ctx context.Context, alert *domain.Alert) error
	FindByIDFunc           func(ctx context.Context, companyID, id string) (*domain.Alert, error)
	FindAllByCompanyFunc   func(ctx context.Context, companyID string) ([]domain.Alert, error)
	CountOpenByCompanyFunc func(ctx context.Context, companyID string) (int64, error)
}

func (m *MockAlertRepository) Save(ctx context.Context, alert *domain.Alert) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, alert)
	}
	return nil
}

func (m *MockAlertRepository) Update(ctx context.Context, alert *domain.Alert) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, alert)
	}
	return nil
}

func (m *MockAlertRepository) FindByID(ctx context.Context, companyID, id string) (*domain.Alert, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, companyID, id)
	}
	return nil, nil
}

func (m *MockAlertRepository) FindAllByCompany(ctx context.Context, companyID string) ([]domain.Alert, error) {
	if m.FindAllByCompanyFunc != nil {
		return m.FindAllByCompanyFunc(ctx, companyID)
	}
	return []domain.Alert{}, nil
}

func (m *MockAlertRepository) CountOpenByCompany(ctx context.Context, companyID string) (int64, error) {
	if m.CountOpenByCompanyFunc != nil {
		return m.CountOpenByCompanyFunc(ctx, companyID)
	}
	return 0, nil
}
