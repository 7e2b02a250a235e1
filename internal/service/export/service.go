package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/powerdash/powerdash/internal/ports"
)

var readingColumns = []string{
	"Meter ID", "Date", "Opening", "Closing", "Consumption",
	"Entered By", "Employee ID", "Image",
}

type Service struct {
	readings ports.ReadingRepository
	log      *zap.Logger
}

func NewService(readings ports.ReadingRepository, log *zap.Logger) ports.ExportService {
	return &Service{
		readings: readings,
		log:      log,
	}
}

// ReadingsWorkbook renders every reading of the tenant into an xlsx
// workbook, one row per reading with a header row.
func (s *Service) ReadingsWorkbook(ctx context.Context, companyID string) ([]byte, error) {
	readings, err := s.readings.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, col := range readingColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}

	for row, rd := range readings {
		values := []interface{}{
			rd.MeterID, rd.Date, rd.Opening, rd.Closing, rd.Consumption,
			rd.EnteredBy, rd.EmployeeID, rd.Image,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.log.Debug("Exported readings", zap.String("company_id", companyID), zap.Int("rows", len(readings)))
	return buf.Bytes(), nil
}
