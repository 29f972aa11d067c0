package repository

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/unithera/vialscan/constants"
	"github.com/unithera/vialscan/gen/ent"
	entjob "github.com/unithera/vialscan/gen/ent/scanjob"
	"github.com/unithera/vialscan/internal/common"
	"github.com/unithera/vialscan/internal/entity"
)

// ScanJobRepository tracks the lifecycle of individual scan attempts so a
// failed capture can be diagnosed after the fact.
type ScanJobRepository interface {
	Start(ctx context.Context, sessionID uuid.UUID, scanType constants.ScanType, actor string) (*entity.ScanJob, error)
	FinishOCR(ctx context.Context, jobID uuid.UUID, lines []string) error
	FinishParse(ctx context.Context, jobID uuid.UUID, extracted []byte, imageURL string) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, cause error) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.ScanJob, error)
}

type scanJobRepository struct {
	client *ent.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewScanJobRepository(client *ent.Client, logger *slog.Logger) ScanJobRepository {
	return &scanJobRepository{
		client: client,
		logger: logger.With("component", "scan_job_repository"),
		now:    time.Now,
	}
}

func (r *scanJobRepository) Start(ctx context.Context, sessionID uuid.UUID, scanType constants.ScanType, actor string) (*entity.ScanJob, error) {
	row, err := r.client.ScanJob.Create().
		SetSessionID(sessionID).
		SetScanType(string(scanType)).
		SetStatus(string(constants.JobStatusRunning)).
		SetStartedAt(r.now()).
		SetActor(actor).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create scan job", "session_id", sessionID, "scan_type", scanType, "error", err)
		return nil, common.NewAppError(common.ErrCodeDatabaseError, "failed to create scan job", err)
	}
	r.logger.Info("scan job started", "job_id", row.ID, "scan_type", scanType, "actor", actor)
	return toScanJobEntity(row), nil
}

func (r *scanJobRepository) FinishOCR(ctx context.Context, jobID uuid.UUID, lines []string) error {
	err := r.client.ScanJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusOCROK)).
		SetLineCount(len(lines)).
		SetOcrText(strings.Join(lines, "\n")).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to record recognized text", "job_id", jobID, "error", err)
		return common.NewAppError(common.ErrCodeDatabaseError, "failed to update scan job", err)
	}
	return nil
}

func (r *scanJobRepository) FinishParse(ctx context.Context, jobID uuid.UUID, extracted []byte, imageURL string) error {
	q := r.client.ScanJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusParseOK)).
		SetExtractedJSON(extracted).
		SetFinishedAt(r.now())
	if imageURL != "" {
		q = q.SetImageURL(imageURL)
	}
	if err := q.Exec(ctx); err != nil {
		r.logger.Error("failed to finish scan job", "job_id", jobID, "error", err)
		return common.NewAppError(common.ErrCodeDatabaseError, "failed to update scan job", err)
	}
	r.logger.Info("scan job completed", "job_id", jobID)
	return nil
}

func (r *scanJobRepository) FinishFailure(ctx context.Context, jobID uuid.UUID, cause error) error {
	err := r.client.ScanJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(cause.Error()).
		SetFinishedAt(r.now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark scan job failed", "job_id", jobID, "error", err)
		return common.NewAppError(common.ErrCodeDatabaseError, "failed to update scan job", err)
	}
	return nil
}

func (r *scanJobRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.ScanJob, error) {
	rows, err := r.client.ScanJob.Query().
		Where(entjob.SessionID(sessionID)).
		Order(ent.Asc(entjob.FieldStartedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list scan jobs", "session_id", sessionID, "error", err)
		return nil, common.NewAppError(common.ErrCodeDatabaseError, "failed to list scan jobs", err)
	}
	jobs := make([]*entity.ScanJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, toScanJobEntity(row))
	}
	return jobs, nil
}

func toScanJobEntity(j *ent.ScanJob) *entity.ScanJob {
	return &entity.ScanJob{
		ID:            j.ID,
		SessionID:     j.SessionID,
		ScanType:      j.ScanType,
		Status:        j.Status,
		StartedAt:     j.StartedAt,
		FinishedAt:    j.FinishedAt,
		LineCount:     j.LineCount,
		OCRText:       j.OcrText,
		ExtractedJSON: j.ExtractedJSON,
		ImageURL:      j.ImageURL,
		ErrorMessage:  j.ErrorMessage,
		Actor:         j.Actor,
	}
}
