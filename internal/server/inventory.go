package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	v1 "github.com/unithera/vialscan/gen/proto/vialscan/v1"
	"github.com/unithera/vialscan/internal/common"
	"github.com/unithera/vialscan/internal/export"
	"github.com/unithera/vialscan/internal/repository"
)

type InventoryService struct {
	v1.UnimplementedInventoryServiceServer
	vials  repository.VialRepository
	export *export.Service
	logger *slog.Logger
}

func NewInventoryService(vials repository.VialRepository, exp *export.Service, logger *slog.Logger) *InventoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InventoryService{vials: vials, export: exp, logger: logger}
}

func (s *InventoryService) ListVials(ctx context.Context, req *v1.ListVialsRequest) (*v1.ListVialsResponse, error) {
	from, to, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	var fromT, toT time.Time
	if from != nil {
		fromT = *from
	}
	if to != nil {
		// Inclusive end of day.
		toT = to.Add(24*time.Hour - time.Second)
	}
	vials, err := s.vials.ListVials(ctx, fromT, toT)
	if err != nil {
		s.logger.Error("list vials failed", "err", err)
		return nil, common.InternalError("list vials failed")
	}

	out := make([]*v1.Vial, 0, len(vials))
	for _, v := range vials {
		out = append(out, &v1.Vial{
			Id:                         v.ID.String(),
			Radiopharmaceutical:        v.Radiopharmaceutical,
			RxNumber:                   int32(v.RxNumber),
			PatientId:                  v.PatientID,
			ActualAmount:               v.ActualAmount,
			CalibrationDate:            v.CalibrationDate,
			LotNumber:                  v.LotNumber,
			EnteredBy:                  v.EnteredBy,
			EnteredDateTime:            v.EnteredDateTime.Format(time.RFC3339),
			OrderedAmount:              v.OrderedAmount,
			Manufacturer:               v.Manufacturer,
			Volume:                     v.Volume,
			RadioactivityConcentration: v.RadioactivityConcentration,
		})
	}
	return &v1.ListVialsResponse{Vials: out}, nil
}

func (s *InventoryService) ExportVials(ctx context.Context, req *v1.ExportVialsRequest) (*v1.ExportVialsResponse, error) {
	from, to, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.export.ExportVialsXLSX(ctx, from, to)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError("export failed")
	}
	return &v1.ExportVialsResponse{Xlsx: xlsx}, nil
}

func parseDateWindow(fromStr, toStr string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if fd := strings.TrimSpace(fromStr); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		from = &t
	}
	if td := strings.TrimSpace(toStr); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		to = &t
	}
	return from, to, nil
}
