package entity

import (
	"time"

	"github.com/google/uuid"
)

// VialRecord is the in-progress capture record for one vial, built up
// incrementally as the label, certificate of analysis and vial are scanned.
// All values are kept as the raw strings the scanner produced; normalization
// happens at persistence time.
type VialRecord struct {
	Radiopharmaceutical        string `json:"radiopharmaceutical"`
	Rx                         string `json:"rx"`      // digits only, from the label
	VialRx                     string `json:"vial_rx"` // digits only, from the vial
	PatientID                  string `json:"patient_id"`
	ActualAmount               string `json:"actual_amount"`
	CalibrationDate            string `json:"calibration_date"` // raw, e.g. "05Feb2025 10:30 ET"
	LotNumber                  string `json:"lot_number"`
	OrderedAmount              string `json:"ordered_amount"`
	Volume                     string `json:"volume"`
	Manufacturer               string `json:"manufacturer"`
	RadioactivityConcentration string `json:"radioactivity_concentration"`
	NewLabelImageURL           string `json:"new_label_image_url,omitempty"`
	NewVialImageURL            string `json:"new_vial_image_url,omitempty"`
}

// Reconciled reports whether the label-side and vial-side prescription
// numbers are both present and agree.
func (r *VialRecord) Reconciled() bool {
	return r.Rx != "" && r.Rx == r.VialRx
}

// Vial is a persisted vial row for transfer between layers.
type Vial struct {
	ID                         uuid.UUID `json:"id"`
	Radiopharmaceutical        string    `json:"radiopharmaceutical"`
	RxNumber                   int       `json:"rx_number"`
	PatientID                  string    `json:"patient_id"`
	ActualAmount               string    `json:"actual_amount"`
	CalibrationDate            string    `json:"calibration_date"`
	LotNumber                  string    `json:"lot_number"`
	EnteredBy                  string    `json:"entered_by"`
	EnteredDateTime            time.Time `json:"entered_date_time"`
	OrderedAmount              string    `json:"ordered_amount"`
	Manufacturer               string    `json:"manufacturer"`
	Volume                     string    `json:"volume"`
	RadioactivityConcentration string    `json:"radioactivity_concentration"`
	LabelImageURL              string    `json:"label_image_url,omitempty"`
	COAImageURL                string    `json:"coa_image_url,omitempty"`
	VialImageURL               string    `json:"vial_image_url,omitempty"`
	NewLabelImageURL           string    `json:"new_label_image_url,omitempty"`
	NewVialImageURL            string    `json:"new_vial_image_url,omitempty"`
	CreatedAt                  time.Time `json:"created_at"`
}

// DoseDetail is the dosing-system projection of a saved vial record.
type DoseDetail struct {
	ID              uuid.UUID `json:"id"`
	PatientID       string    `json:"patient_id"`
	StudyName       string    `json:"study_name"`
	DateCalibration string    `json:"date_calibration"` // YYYY-MM-DD
	TimeCalibration string    `json:"time_calibration"` // HH:MM:SS
	RAC             string    `json:"rac"`
	Manufacturer    string    `json:"manufacturer"`
	RxBatch         int       `json:"rx_batch"`
	LotBatch        string    `json:"lot_batch"`
	Volume          string    `json:"volume"` // numeric characters only
	DOS             time.Time `json:"dos"`
}
