package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/unithera/vialscan/internal/entity"
)

// VialLister is the slice of the repository the exporter needs.
type VialLister interface {
	ListVials(ctx context.Context, from, to time.Time) ([]*entity.Vial, error)
}

// Service produces XLSX bytes for vial inventory exports.
type Service struct {
	vials  VialLister
	logger *slog.Logger
}

func NewService(vials VialLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{vials: vials, logger: logger}
}

// ExportVialsXLSX returns an XLSX workbook (as bytes) for the given date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all saved vials.
func (s *Service) ExportVialsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate time.Time
	if from != nil {
		fromDate = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	}
	if to != nil {
		// Inclusive end of day.
		toDate = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
	}
	if !fromDate.IsZero() && toDate.IsZero() {
		today := time.Now().UTC()
		toDate = time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
	}

	vials, err := s.vials.ListVials(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query vials: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Vials"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Entered",
		"RX Number",
		"Patient ID",
		"Radiopharmaceutical",
		"Lot Number",
		"Calibration",
		"Actual Amount",
		"Ordered Amount",
		"Volume",
		"Concentration",
		"Manufacturer",
		"Entered By",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, v := range vials {
		write := func(col int, val any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, val)
		}

		if !v.EnteredDateTime.IsZero() {
			write(1, v.EnteredDateTime.Format("2006-01-02 15:04"))
		} else {
			write(1, "")
		}
		write(2, v.RxNumber)
		write(3, v.PatientID)
		write(4, v.Radiopharmaceutical)
		write(5, v.LotNumber)
		write(6, v.CalibrationDate)
		write(7, v.ActualAmount)
		write(8, v.OrderedAmount)
		write(9, v.Volume)
		write(10, v.RadioactivityConcentration)
		write(11, truncate(v.Manufacturer, 60))
		write(12, v.EnteredBy)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 18) // entered
	_ = f.SetColWidth(sheet, "B", "C", 14) // rx, patient
	_ = f.SetColWidth(sheet, "D", "D", 26) // product
	_ = f.SetColWidth(sheet, "E", "F", 22) // lot, calibration
	_ = f.SetColWidth(sheet, "G", "J", 16) // amounts
	_ = f.SetColWidth(sheet, "K", "K", 28) // manufacturer
	_ = f.SetColWidth(sheet, "L", "L", 16) // entered by

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(vials),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
