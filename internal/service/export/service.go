package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wmoldes/roster-backend/internal/domain/employee"
	"github.com/wmoldes/roster-backend/internal/domain/export"
	"github.com/wmoldes/roster-backend/internal/pkg/clock"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Funcionarios"

type ExportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewExportService(employeeRepo employee.EmployeeRepository, clk clock.Clock) export.ExportService {
	return &ExportServiceImpl{
		employeeRepo: employeeRepo,
		clock:        clk,
	}
}

// Export implements export.ExportService.
func (s *ExportServiceImpl) Export(ctx context.Context, format export.Format, filter employee.EmployeeFilter) (*export.File, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	now := s.clock.Now()
	employees := make([]employee.Employee, 0, len(all))
	for _, e := range all {
		if filter.Match(e, now) {
			employees = append(employees, e)
		}
	}

	var body []byte
	switch format {
	case export.FormatCSV:
		body = []byte(export.CSV(employees))
	case export.FormatXLSX:
		body, err = renderXLSX(employees)
		if err != nil {
			return nil, fmt.Errorf("render xlsx: %w", err)
		}
	default:
		return nil, export.ErrUnsupportedFormat
	}

	slog.Info("Roster exported", "format", format, "rows", len(employees))

	return &export.File{
		Name:        export.FileName(now, format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func renderXLSX(employees []employee.Employee) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	header := export.Header
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, e := range employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := export.Row(e)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
