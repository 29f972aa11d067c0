package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/unithera/vialscan/constants"
	"github.com/unithera/vialscan/internal/docparse"
	"github.com/unithera/vialscan/internal/imagestore"
	"github.com/unithera/vialscan/internal/ocr"
	"github.com/unithera/vialscan/internal/repository"
	"github.com/unithera/vialscan/internal/session"
)

// ScanStage coordinates one capture: OCR the image, parse the recognized
// lines for the scan type, fold the fields into the session, and archive
// the image.
type ScanStage struct {
	Logger     *slog.Logger
	Jobs       repository.ScanJobRepository
	Recognizer ocr.Recognizer
	Store      imagestore.Uploader
}

func NewScanStage(jobs repository.ScanJobRepository, rec ocr.Recognizer, store imagestore.Uploader, logger *slog.Logger) *ScanStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScanStage{Logger: logger, Jobs: jobs, Recognizer: rec, Store: store}
}

// ScanResult summarizes one completed scan.
type ScanResult struct {
	JobID uuid.UUID
	Lines []string
	// Reconciliation is populated for vial scans only.
	Reconciliation docparse.Reconciliation
	ImageURL       string
}

// Run processes one captured image end to end. The parsed fields are applied
// to the session even when archival fails, so a storage outage never costs
// the operator a successful read.
func (p *ScanStage) Run(ctx context.Context, sess *session.CaptureSession, scanType constants.ScanType, image []byte) (ScanResult, error) {
	var res ScanResult

	job, err := p.Jobs.Start(ctx, sess.ID(), scanType, sess.Actor())
	if err != nil {
		return res, err
	}
	res.JobID = job.ID

	lines, err := p.Recognizer.Recognize(ctx, image)
	if err != nil {
		p.Logger.Error("scan.ocr.failed", "job_id", job.ID, "scan_type", scanType, "err", err)
		_ = p.Jobs.FinishFailure(ctx, job.ID, err)
		return res, fmt.Errorf("recognize: %w", err)
	}
	res.Lines = lines
	if err := p.Jobs.FinishOCR(ctx, job.ID, lines); err != nil {
		return res, err
	}
	p.Logger.Info("scan.ocr.ok", "job_id", job.ID, "scan_type", scanType, "lines", len(lines))

	switch scanType {
	case constants.ScanTypeLargeLabel:
		fields := docparse.ParseLabel(lines)
		sess.ApplyLabel(fields)
		p.Logger.Info("scan.parse.ok", "job_id", job.ID, "scan_type", scanType,
			"rx", fields.Rx, "patient_id", fields.PatientID, "product", fields.Radiopharmaceutical)
	case constants.ScanTypeCOA:
		fields := docparse.ParseCertificate(lines)
		sess.ApplyCertificate(fields)
		p.Logger.Info("scan.parse.ok", "job_id", job.ID, "scan_type", scanType,
			"calibration", fields.TimeOfCalibration, "rac", fields.RadioactivityConcentration)
	case constants.ScanTypeVial:
		candidate, found := docparse.ParseVial(lines)
		res.Reconciliation = sess.ApplyVialScan(candidate, found)
		p.Logger.Info("scan.parse.ok", "job_id", job.ID, "scan_type", scanType,
			"vial_rx", candidate, "found", found, "state", res.Reconciliation.State.String())
	default:
		err := fmt.Errorf("unsupported scan type: %s", scanType)
		_ = p.Jobs.FinishFailure(ctx, job.ID, err)
		return res, err
	}

	snapshot := sess.Record()
	extracted, err := json.Marshal(snapshot)
	if err != nil {
		return res, fmt.Errorf("marshal record snapshot: %w", err)
	}
	// Mid-capture snapshots legitimately have empty fields; a shape violation
	// here means the parser produced something malformed, not that the
	// operator is mid-workflow.
	if verr := ValidateJSONAgainstSchema(BuildRecordJSONSchema(), extracted); verr != nil {
		p.Logger.Warn("scan.snapshot.invalid", "job_id", job.ID, "err", verr)
	}

	url, err := p.Store.Upload(ctx, image, snapshot.Rx, scanType)
	if err != nil {
		p.Logger.Error("scan.archive.failed", "job_id", job.ID, "scan_type", scanType, "err", err)
		_ = p.Jobs.FinishFailure(ctx, job.ID, err)
		return res, fmt.Errorf("archive image: %w", err)
	}
	res.ImageURL = url
	sess.SetImageURL(scanType, url)

	if err := p.Jobs.FinishParse(ctx, job.ID, extracted, url); err != nil {
		return res, err
	}
	return res, nil
}
