package server

import (
	v1 "github.com/unithera/vialscan/gen/proto/vialscan/v1"
	"github.com/unithera/vialscan/internal/entity"
)

func toProtoRecord(rec entity.VialRecord) *v1.VialRecord {
	return &v1.VialRecord{
		Radiopharmaceutical:        rec.Radiopharmaceutical,
		Rx:                         rec.Rx,
		VialRx:                     rec.VialRx,
		PatientId:                  rec.PatientID,
		ActualAmount:               rec.ActualAmount,
		CalibrationDate:            rec.CalibrationDate,
		LotNumber:                  rec.LotNumber,
		OrderedAmount:              rec.OrderedAmount,
		Volume:                     rec.Volume,
		Manufacturer:               rec.Manufacturer,
		RadioactivityConcentration: rec.RadioactivityConcentration,
	}
}
