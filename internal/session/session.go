// Package session holds the single in-progress capture record and applies
// parser results, user edits and reconciliation decisions to it. All record
// mutation goes through a CaptureSession so asynchronous scan completions
// never interleave writes.
package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unithera/vialscan/constants"
	"github.com/unithera/vialscan/internal/docparse"
	"github.com/unithera/vialscan/internal/entity"
)

// AutoRxPrefix marks autogenerated prescription numbers; the remainder is the
// Unix timestamp of generation.
const AutoRxPrefix = "999"

// Saver persists a finished, validated record together with the uploaded
// image URLs. Implemented by the vial repository.
type Saver interface {
	Save(ctx context.Context, rec entity.VialRecord, imageURLs map[constants.ScanType]string, actor string) error
}

// Attestation carries the three independent operator acknowledgements
// required before a record may be saved.
type Attestation struct {
	LabelRxCorrect   bool
	VialRxCorrect    bool
	PatientIDCorrect bool
}

// All reports whether every acknowledgement has been given.
func (a Attestation) All() bool {
	return a.LabelRxCorrect && a.VialRxCorrect && a.PatientIDCorrect
}

// CaptureSession owns one user's in-progress vial record.
type CaptureSession struct {
	id    uuid.UUID
	actor string

	mu           sync.Mutex
	record       entity.VialRecord
	imageURLs    map[constants.ScanType]string
	attest       Attestation
	needsReprint bool

	now func() time.Time
}

// New creates an empty capture session for the given operator.
func New(actor string) *CaptureSession {
	return &CaptureSession{
		id:        uuid.New(),
		actor:     actor,
		imageURLs: make(map[constants.ScanType]string),
		now:       time.Now,
	}
}

func (s *CaptureSession) ID() uuid.UUID { return s.id }

func (s *CaptureSession) Actor() string { return s.actor }

// Record returns a snapshot of the in-progress record.
func (s *CaptureSession) Record() entity.VialRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// ImageURLs returns a copy of the uploaded image URLs by scan type.
func (s *CaptureSession) ImageURLs() map[constants.ScanType]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[constants.ScanType]string, len(s.imageURLs))
	for k, v := range s.imageURLs {
		out[k] = v
	}
	return out
}

// ApplyLabel replaces the record with the fields of a fresh label scan.
// A label scan starts the record over; values from earlier scans of any
// document type are discarded.
func (s *CaptureSession) ApplyLabel(f docparse.LabelFields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = entity.VialRecord{
		Radiopharmaceutical: f.Radiopharmaceutical,
		Rx:                  f.Rx,
		PatientID:           f.PatientID,
		ActualAmount:        f.ActualAmount,
		CalibrationDate:     f.CalibrationDate,
		LotNumber:           f.LotNumber,
		OrderedAmount:       f.OrderedAmount,
		Volume:              f.Volume,
		Manufacturer:        f.Manufacturer,
	}
	s.attest = Attestation{}
}

// ApplyCertificate merges certificate-of-analysis fields into the record.
// Only values the parser actually found overwrite what is already there.
func (s *CaptureSession) ApplyCertificate(f docparse.CertificateFields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.TimeOfCalibration != "" {
		s.record.CalibrationDate = f.TimeOfCalibration
	}
	if f.RadioactivityConcentration != "" {
		s.record.RadioactivityConcentration = f.RadioactivityConcentration
	}
}

// ApplyVialScan records the vial-side RX candidate and decides the
// reconciliation outcome against the label-side RX currently on the record.
// The vial RX is reset on every scan so a failed re-scan does not keep a
// stale candidate around.
func (s *CaptureSession) ApplyVialScan(candidate string, found bool) docparse.Reconciliation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.VialRx = ""
	if found {
		s.record.VialRx = candidate
	}
	return docparse.Reconcile(s.record.Rx, candidate, found)
}

// CopyVialRxToLabel accepts the "copy vial RX" prompt: the vial-side number
// becomes the label-side number too.
func (s *CaptureSession) CopyVialRxToLabel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.Rx = s.record.VialRx
}

// ResolveManualRx applies an operator-typed prescription number to both
// sides. Non-digits are stripped first.
func (s *CaptureSession) ResolveManualRx(value string) error {
	digits := docparse.DigitsOnly(value)
	if digits == "" {
		return ErrEmptyRx
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.Rx = digits
	s.record.VialRx = digits
	return nil
}

// AutogenerateRx synthesizes a prescription number (prefix + Unix seconds),
// applies it to both sides and flags that a fresh QR label must be printed,
// attached and re-photographed.
func (s *CaptureSession) AutogenerateRx() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	rx := AutoRxPrefix + strconv.FormatInt(s.now().Unix(), 10)
	s.record.Rx = rx
	s.record.VialRx = rx
	s.needsReprint = true
	return rx
}

// NeedsReprint reports whether an autogenerated RX still awaits its
// re-photographed label.
func (s *CaptureSession) NeedsReprint() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.needsReprint
}

// SetImageURL stores the uploaded image URL for a scan type.
func (s *CaptureSession) SetImageURL(st constants.ScanType, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imageURLs[st] = url
}

// SetReplacementImageURL stores the URL of a replacement photo taken after a
// reprint. A replacement label photo clears the reprint flag.
func (s *CaptureSession) SetReplacementImageURL(st constants.ScanType, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch st {
	case constants.ScanTypeLargeLabel:
		s.record.NewLabelImageURL = url
		s.needsReprint = false
	case constants.ScanTypeVial:
		s.record.NewVialImageURL = url
	}
}

// EditField applies an operator correction to a single record field.
func (s *CaptureSession) EditField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch field {
	case "radiopharmaceutical":
		s.record.Radiopharmaceutical = value
	case "rx":
		s.record.Rx = docparse.DigitsOnly(value)
	case "vial_rx":
		s.record.VialRx = docparse.DigitsOnly(value)
	case "patient_id":
		s.record.PatientID = value
	case "actual_amount":
		s.record.ActualAmount = value
	case "calibration_date":
		s.record.CalibrationDate = value
	case "lot_number":
		s.record.LotNumber = value
	case "ordered_amount":
		s.record.OrderedAmount = value
	case "volume":
		s.record.Volume = value
	case "manufacturer":
		s.record.Manufacturer = value
	case "radioactivity_concentration":
		s.record.RadioactivityConcentration = value
	default:
		return &UnknownFieldError{Field: field}
	}
	return nil
}

// SetAttestation records the operator acknowledgements.
func (s *CaptureSession) SetAttestation(a Attestation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attest = a
}

// Attestation returns the current acknowledgements.
func (s *CaptureSession) Attestation() Attestation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attest
}

// Validate checks the data gate: RX, patient ID and radiopharmaceutical must
// be present and the two RX numbers must agree.
func (s *CaptureSession) Validate() error {
	s.mu.Lock()
	rec := s.record
	s.mu.Unlock()
	return validateRecord(rec)
}

func validateRecord(rec entity.VialRecord) error {
	var missing []string
	if rec.Rx == "" {
		missing = append(missing, "rx")
	}
	if rec.PatientID == "" {
		missing = append(missing, "patient_id")
	}
	if rec.Radiopharmaceutical == "" {
		missing = append(missing, "radiopharmaceutical")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	if rec.Rx != rec.VialRx {
		return ErrRxMismatch
	}
	return nil
}

// Save runs the validation gate and the attestation gate, then hands the
// record to the saver. On success the session resets for the next vial; on
// failure the record is left untouched so the operator can retry.
func (s *CaptureSession) Save(ctx context.Context, saver Saver) error {
	s.mu.Lock()
	rec := s.record
	urls := make(map[constants.ScanType]string, len(s.imageURLs))
	for k, v := range s.imageURLs {
		urls[k] = v
	}
	attest := s.attest
	s.mu.Unlock()

	if err := validateRecord(rec); err != nil {
		return err
	}
	if !attest.All() {
		return ErrNotAttested
	}

	if err := saver.Save(ctx, rec, urls, s.actor); err != nil {
		return err
	}

	s.Reset()
	return nil
}

// Reset clears the record, image URLs and acknowledgements.
func (s *CaptureSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = entity.VialRecord{}
	s.imageURLs = make(map[constants.ScanType]string)
	s.attest = Attestation{}
	s.needsReprint = false
}
