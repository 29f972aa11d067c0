package repository

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/unithera/vialscan/constants"
	"github.com/unithera/vialscan/gen/ent"
	entdose "github.com/unithera/vialscan/gen/ent/dosedetail"
	entvial "github.com/unithera/vialscan/gen/ent/vial"
	"github.com/unithera/vialscan/internal/common"
	"github.com/unithera/vialscan/internal/docparse"
	"github.com/unithera/vialscan/internal/entity"
)

// VialRepository persists captured records.
type VialRepository interface {
	// SaveRecord writes the vial row and its dose-detail row in one
	// transaction. The image URLs are keyed by the scan that produced them.
	SaveRecord(ctx context.Context, rec entity.VialRecord, imageURLs map[constants.ScanType]string, actor string) error
	GetVial(ctx context.Context, id string) (*entity.Vial, error)
	ListVials(ctx context.Context, from, to time.Time) ([]*entity.Vial, error)
	ListDoseDetails(ctx context.Context, vialID string) ([]*entity.DoseDetail, error)
}

type vialRepository struct {
	client *ent.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewVialRepository(client *ent.Client, logger *slog.Logger) VialRepository {
	return &vialRepository{
		client: client,
		logger: logger.With("component", "vial_repository"),
		now:    time.Now,
	}
}

func (r *vialRepository) SaveRecord(ctx context.Context, rec entity.VialRecord, imageURLs map[constants.ScanType]string, actor string) error {
	rxNum, err := strconv.Atoi(rec.Rx)
	if err != nil {
		// The RX string is digits-only by the time it reaches us, but an
		// operator-edited value may not be; store zero rather than reject.
		r.logger.Warn("non-numeric rx number, storing zero", "rx", rec.Rx)
		rxNum = 0
	}

	calibration := rec.CalibrationDate
	if normalized, ok := docparse.FormatCalibration(rec.CalibrationDate); ok {
		calibration = normalized
	}
	calDate, calTime := docparse.SplitCalibration(calibration)

	tx, err := r.client.Tx(ctx)
	if err != nil {
		r.logger.Error("failed to begin transaction", "error", err)
		return common.NewAppError(common.ErrCodeDatabaseError, "failed to begin transaction", err)
	}

	enteredAt := r.now()
	v, err := tx.Vial.Create().
		SetRadiopharmaceutical(rec.Radiopharmaceutical).
		SetRxNumber(rxNum).
		SetPatientID(rec.PatientID).
		SetActualAmount(rec.ActualAmount).
		SetCalibrationDate(calibration).
		SetLotNumber(rec.LotNumber).
		SetEnteredBy(actor).
		SetEnteredDateTime(enteredAt).
		SetOrderedAmount(rec.OrderedAmount).
		SetManufacturer(rec.Manufacturer).
		SetVolume(rec.Volume).
		SetRadioactivityConcentration(rec.RadioactivityConcentration).
		SetLabelImageURL(imageURLs[constants.ScanTypeLargeLabel]).
		SetCoaImageURL(imageURLs[constants.ScanTypeCOA]).
		SetVialImageURL(imageURLs[constants.ScanTypeVial]).
		SetNewLabelImageURL(rec.NewLabelImageURL).
		SetNewVialImageURL(rec.NewVialImageURL).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create vial row", "rx", rec.Rx, "error", err)
		return rollback(tx, common.NewAppError(common.ErrCodeDatabaseError, "failed to create vial", err))
	}

	_, err = tx.DoseDetail.Create().
		SetVial(v).
		SetPatientID(rec.PatientID).
		SetStudyName(rec.Radiopharmaceutical).
		SetDateCalibration(calDate).
		SetTimeCalibration(calTime).
		SetRac(rec.RadioactivityConcentration).
		SetManufacturer(rec.Manufacturer).
		SetRxBatch(rxNum).
		SetLotBatch(rec.LotNumber).
		SetVolume(docparse.NumericVolume(rec.Volume)).
		SetDos(enteredAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create dose detail row", "rx", rec.Rx, "error", err)
		return rollback(tx, common.NewAppError(common.ErrCodeDatabaseError, "failed to create dose detail", err))
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit record", "rx", rec.Rx, "error", err)
		return common.NewAppError(common.ErrCodeDatabaseError, "failed to commit record", err)
	}

	r.logger.Info("record saved", "vial_id", v.ID, "rx", rec.Rx, "entered_by", actor)
	return nil
}

func (r *vialRepository) GetVial(ctx context.Context, id string) (*entity.Vial, error) {
	vialID, err := uuid.Parse(id)
	if err != nil {
		return nil, common.NewAppError(common.ErrCodeInvalidInput, "invalid vial ID", err)
	}
	v, err := r.client.Vial.Get(ctx, vialID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError(common.ErrCodeNotFound, "vial not found", err)
		}
		r.logger.Error("failed to get vial", "vial_id", id, "error", err)
		return nil, common.NewAppError(common.ErrCodeDatabaseError, "failed to get vial", err)
	}
	return toVialEntity(v), nil
}

func (r *vialRepository) ListVials(ctx context.Context, from, to time.Time) ([]*entity.Vial, error) {
	q := r.client.Vial.Query()
	if !from.IsZero() {
		q = q.Where(entvial.EnteredDateTimeGTE(from))
	}
	if !to.IsZero() {
		q = q.Where(entvial.EnteredDateTimeLTE(to))
	}
	rows, err := q.Order(ent.Desc(entvial.FieldEnteredDateTime)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list vials", "error", err)
		return nil, common.NewAppError(common.ErrCodeDatabaseError, "failed to list vials", err)
	}
	vials := make([]*entity.Vial, 0, len(rows))
	for _, row := range rows {
		vials = append(vials, toVialEntity(row))
	}
	return vials, nil
}

func (r *vialRepository) ListDoseDetails(ctx context.Context, vialID string) ([]*entity.DoseDetail, error) {
	id, err := uuid.Parse(vialID)
	if err != nil {
		return nil, common.NewAppError(common.ErrCodeInvalidInput, "invalid vial ID", err)
	}
	rows, err := r.client.DoseDetail.Query().
		Where(entdose.HasVialWith(entvial.ID(id))).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list dose details", "vial_id", vialID, "error", err)
		return nil, common.NewAppError(common.ErrCodeDatabaseError, "failed to list dose details", err)
	}
	details := make([]*entity.DoseDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, &entity.DoseDetail{
			ID:              row.ID,
			PatientID:       row.PatientID,
			StudyName:       row.StudyName,
			DateCalibration: row.DateCalibration,
			TimeCalibration: row.TimeCalibration,
			RAC:             row.Rac,
			Manufacturer:    row.Manufacturer,
			RxBatch:         row.RxBatch,
			LotBatch:        row.LotBatch,
			Volume:          row.Volume,
			DOS:             row.Dos,
		})
	}
	return details, nil
}

func toVialEntity(v *ent.Vial) *entity.Vial {
	return &entity.Vial{
		ID:                         v.ID,
		Radiopharmaceutical:        v.Radiopharmaceutical,
		RxNumber:                   v.RxNumber,
		PatientID:                  v.PatientID,
		ActualAmount:               v.ActualAmount,
		CalibrationDate:            v.CalibrationDate,
		LotNumber:                  v.LotNumber,
		EnteredBy:                  v.EnteredBy,
		EnteredDateTime:            v.EnteredDateTime,
		OrderedAmount:              v.OrderedAmount,
		Manufacturer:               v.Manufacturer,
		Volume:                     v.Volume,
		RadioactivityConcentration: v.RadioactivityConcentration,
		LabelImageURL:              v.LabelImageURL,
		COAImageURL:                v.CoaImageURL,
		VialImageURL:               v.VialImageURL,
		NewLabelImageURL:           v.NewLabelImageURL,
		NewVialImageURL:            v.NewVialImageURL,
		CreatedAt:                  v.CreatedAt,
	}
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return common.NewAppError(common.ErrCodeDatabaseError, "rollback failed", rerr)
	}
	return err
}
