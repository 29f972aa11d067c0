package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unithera/vialscan/constants"
	"github.com/unithera/vialscan/internal/docparse"
	"github.com/unithera/vialscan/internal/entity"
)

type fakeSaver struct {
	err   error
	calls int
	rec   entity.VialRecord
	urls  map[constants.ScanType]string
	actor string
}

func (f *fakeSaver) Save(_ context.Context, rec entity.VialRecord, urls map[constants.ScanType]string, actor string) error {
	f.calls++
	f.rec = rec
	f.urls = urls
	f.actor = actor
	return f.err
}

func completeSession() *CaptureSession {
	s := New("tech1")
	s.ApplyLabel(docparse.LabelFields{
		Radiopharmaceutical: "Lutathera",
		Rx:                  "445566",
		PatientID:           "A1023",
	})
	s.ApplyVialScan("445566", true)
	s.SetAttestation(Attestation{LabelRxCorrect: true, VialRxCorrect: true, PatientIDCorrect: true})
	return s
}

func TestApplyLabelReplacesRecord(t *testing.T) {
	t.Parallel()

	s := New("tech1")
	s.ApplyCertificate(docparse.CertificateFields{RadioactivityConcentration: "370 MBq/mL"})
	s.SetAttestation(Attestation{LabelRxCorrect: true, VialRxCorrect: true, PatientIDCorrect: true})

	s.ApplyLabel(docparse.LabelFields{Rx: "123", PatientID: "A1"})

	rec := s.Record()
	assert.Equal(t, "123", rec.Rx)
	assert.Equal(t, "A1", rec.PatientID)
	// A label scan starts the record over and voids the acknowledgements.
	assert.Empty(t, rec.RadioactivityConcentration)
	assert.Equal(t, Attestation{}, s.Attestation())
}

func TestApplyCertificateMergesOnlyFoundValues(t *testing.T) {
	t.Parallel()

	s := New("tech1")
	s.ApplyLabel(docparse.LabelFields{CalibrationDate: "from label"})

	s.ApplyCertificate(docparse.CertificateFields{RadioactivityConcentration: "370 MBq/mL"})
	rec := s.Record()
	assert.Equal(t, "from label", rec.CalibrationDate)
	assert.Equal(t, "370 MBq/mL", rec.RadioactivityConcentration)

	s.ApplyCertificate(docparse.CertificateFields{TimeOfCalibration: "05Feb2025 10:30 ET"})
	assert.Equal(t, "05Feb2025 10:30 ET", s.Record().CalibrationDate)
}

func TestApplyVialScanResetsStaleCandidate(t *testing.T) {
	t.Parallel()

	s := New("tech1")
	s.ApplyLabel(docparse.LabelFields{Rx: "123"})

	r := s.ApplyVialScan("123", true)
	assert.Equal(t, docparse.ReconcileMatch, r.State)
	assert.Equal(t, "123", s.Record().VialRx)

	// A failed re-scan clears the previous candidate.
	r = s.ApplyVialScan("", false)
	assert.Equal(t, docparse.ReconcileLabelOnly, r.State)
	assert.Empty(t, s.Record().VialRx)
}

func TestCopyVialRxToLabel(t *testing.T) {
	t.Parallel()

	s := New("tech1")
	r := s.ApplyVialScan("998877", true)
	assert.Equal(t, docparse.ReconcileVialOnly, r.State)
	assert.Equal(t, docparse.PromptCopyVialRx, r.Prompt)

	s.CopyVialRxToLabel()
	rec := s.Record()
	assert.Equal(t, "998877", rec.Rx)
	assert.Equal(t, "998877", rec.VialRx)
}

func TestResolveManualRx(t *testing.T) {
	t.Parallel()

	s := New("tech1")
	require.NoError(t, s.ResolveManualRx("44-55 66"))
	rec := s.Record()
	assert.Equal(t, "445566", rec.Rx)
	assert.Equal(t, "445566", rec.VialRx)

	assert.ErrorIs(t, s.ResolveManualRx("no digits"), ErrEmptyRx)
}

func TestAutogenerateRx(t *testing.T) {
	t.Parallel()

	s := New("tech1")
	s.now = func() time.Time { return time.Unix(1738750200, 0) }

	rx := s.AutogenerateRx()
	assert.Equal(t, "9991738750200", rx)
	rec := s.Record()
	assert.Equal(t, rx, rec.Rx)
	assert.Equal(t, rx, rec.VialRx)
	assert.True(t, s.NeedsReprint())

	// Photographing the reprinted label clears the flag.
	s.SetReplacementImageURL(constants.ScanTypeLargeLabel, "s3://bucket/largeLabel/new.jpg")
	assert.False(t, s.NeedsReprint())
	assert.Equal(t, "s3://bucket/largeLabel/new.jpg", s.Record().NewLabelImageURL)
}

func TestEditField(t *testing.T) {
	t.Parallel()

	s := New("tech1")
	require.NoError(t, s.EditField("patient_id", "B77"))
	require.NoError(t, s.EditField("rx", "12a34"))
	assert.Equal(t, "B77", s.Record().PatientID)
	assert.Equal(t, "1234", s.Record().Rx)

	err := s.EditField("bogus", "x")
	var unknown *UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "bogus", unknown.Field)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	s := New("tech1")
	err := s.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"rx", "patient_id", "radiopharmaceutical"}, verr.Missing)

	s.ApplyLabel(docparse.LabelFields{
		Radiopharmaceutical: "Lutathera",
		Rx:                  "123",
		PatientID:           "A1",
	})
	assert.ErrorIs(t, s.Validate(), ErrRxMismatch)

	s.ApplyVialScan("123", true)
	assert.NoError(t, s.Validate())
}

func TestSaveRequiresAttestation(t *testing.T) {
	t.Parallel()

	s := completeSession()
	s.SetAttestation(Attestation{LabelRxCorrect: true, VialRxCorrect: true})

	saver := &fakeSaver{}
	assert.ErrorIs(t, s.Save(context.Background(), saver), ErrNotAttested)
	assert.Zero(t, saver.calls)
}

func TestSaveResetsOnSuccess(t *testing.T) {
	t.Parallel()

	s := completeSession()
	s.SetImageURL(constants.ScanTypeLargeLabel, "s3://bucket/largeLabel/rx_445566_1.jpg")

	saver := &fakeSaver{}
	require.NoError(t, s.Save(context.Background(), saver))
	assert.Equal(t, 1, saver.calls)
	assert.Equal(t, "445566", saver.rec.Rx)
	assert.Equal(t, "tech1", saver.actor)
	assert.Equal(t, "s3://bucket/largeLabel/rx_445566_1.jpg", saver.urls[constants.ScanTypeLargeLabel])

	// Session is ready for the next vial.
	assert.Equal(t, entity.VialRecord{}, s.Record())
	assert.Empty(t, s.ImageURLs())
	assert.Equal(t, Attestation{}, s.Attestation())
}

func TestSaveFailureKeepsRecord(t *testing.T) {
	t.Parallel()

	s := completeSession()
	saver := &fakeSaver{err: errors.New("db down")}
	err := s.Save(context.Background(), saver)
	require.Error(t, err)
	assert.Equal(t, 1, saver.calls)

	// The operator can retry without re-scanning.
	assert.Equal(t, "445566", s.Record().Rx)
	assert.Equal(t, Attestation{LabelRxCorrect: true, VialRxCorrect: true, PatientIDCorrect: true}, s.Attestation())
}
