package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/powerdash/powerdash/internal/domain"
	"github.com/powerdash/powerdash/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestReadingsWorkbook_HeaderAndRows(t *testing.T) {
	// Arrange
	ctx := context.Background()

	mockReadings := &mocks.MockReadingRepository{
		FindAllByCompanyFunc: func(ctx context.Context, companyID string) ([]domain.Reading, error) {
			return []domain.Reading{
				{
					MeterID:     "MTR-001",
					Date:        "2024-03-15 14:30",
					Opening:     100,
					Closing:     150,
					Consumption: 50,
					EnteredBy:   "jdoe",
					EmployeeID:  "EMP-9",
					Image:       "MTR-001_20240315143045.jpg",
				},
				{
					MeterID:     "MTR-002",
					Date:        "2024-03-15 15:00",
					Opening:     10,
					Closing:     12,
					Consumption: 2,
				},
			}, nil
		},
	}

	service := NewService(mockReadings, newTestLogger())

	// Act
	data, err := service.ReadingsWorkbook(ctx, "company-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("expected a readable workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Meter ID" || rows[0][4] != "Consumption" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "MTR-001" || rows[1][1] != "2024-03-15 14:30" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
	if rows[2][0] != "MTR-002" {
		t.Errorf("unexpected second data row: %v", rows[2])
	}
}

func TestReadingsWorkbook_EmptyTenant(t *testing.T) {
	// Arrange
	ctx := context.Background()

	service := NewService(&mocks.MockReadingRepository{}, newTestLogger())

	// Act
	data, err := service.ReadingsWorkbook(ctx, "company-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("expected a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header row only, got %d rows", len(rows))
	}
}
