package server

import (
	"context"
	"errors"
	"strings"

	"log/slog"

	"github.com/google/uuid"

	"github.com/unithera/vialscan/constants"
	v1 "github.com/unithera/vialscan/gen/proto/vialscan/v1"
	"github.com/unithera/vialscan/internal/common"
	"github.com/unithera/vialscan/internal/docparse"
	"github.com/unithera/vialscan/internal/entity"
	processor "github.com/unithera/vialscan/internal/pipeline"
	"github.com/unithera/vialscan/internal/repository"
	"github.com/unithera/vialscan/internal/session"
)

type CaptureService struct {
	v1.UnimplementedCaptureServiceServer
	sessions *SessionRegistry
	stage    *processor.ScanStage
	vials    repository.VialRepository
	logger   *slog.Logger
}

func NewCaptureService(sessions *SessionRegistry, stage *processor.ScanStage, vials repository.VialRepository, logger *slog.Logger) *CaptureService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CaptureService{sessions: sessions, stage: stage, vials: vials, logger: logger}
}

func (s *CaptureService) StartSession(_ context.Context, req *v1.StartSessionRequest) (*v1.StartSessionResponse, error) {
	validator := common.NewValidator()
	validator.Field("actor", req.GetActor(), common.Required)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	actor := strings.TrimSpace(req.GetActor())
	sess := s.sessions.Start(actor)
	s.logger.Info("session started", "session_id", sess.ID(), "actor", actor)
	return &v1.StartSessionResponse{SessionId: sess.ID().String()}, nil
}

func (s *CaptureService) ScanDocument(ctx context.Context, req *v1.ScanDocumentRequest) (*v1.ScanDocumentResponse, error) {
	sess, err := s.lookup(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	scanType, ok := fromProtoScanType(req.GetScanType())
	if !ok {
		return nil, common.InvalidArgumentError("scan_type is required")
	}
	if len(req.GetImage()) == 0 {
		return nil, common.InvalidArgumentError("image is required")
	}

	res, err := s.stage.Run(ctx, sess, scanType, req.GetImage())
	if err != nil {
		s.logger.Error("scan failed", "session_id", sess.ID(), "scan_type", scanType, "err", err)
		return nil, common.InternalError("scan failed")
	}

	resp := &v1.ScanDocumentResponse{
		Record:   toProtoRecord(sess.Record()),
		Lines:    res.Lines,
		ImageUrl: res.ImageURL,
	}
	if scanType == constants.ScanTypeVial {
		resp.Reconciliation = toProtoReconciliation(res.Reconciliation.State)
		resp.Prompt = res.Reconciliation.Prompt.String()
	}
	return resp, nil
}

func (s *CaptureService) GetRecord(_ context.Context, req *v1.GetRecordRequest) (*v1.GetRecordResponse, error) {
	sess, err := s.lookup(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	return &v1.GetRecordResponse{
		Record:       toProtoRecord(sess.Record()),
		NeedsReprint: sess.NeedsReprint(),
	}, nil
}

func (s *CaptureService) UpdateField(_ context.Context, req *v1.UpdateFieldRequest) (*v1.UpdateFieldResponse, error) {
	sess, err := s.lookup(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	validator := common.NewValidator()
	validator.Field("field", req.GetField(), common.Required)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	if err := sess.EditField(req.GetField(), req.GetValue()); err != nil {
		var unknown *session.UnknownFieldError
		if errors.As(err, &unknown) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		return nil, common.InternalError(err.Error())
	}
	return &v1.UpdateFieldResponse{Record: toProtoRecord(sess.Record())}, nil
}

func (s *CaptureService) ResolveRx(_ context.Context, req *v1.ResolveRxRequest) (*v1.ResolveRxResponse, error) {
	sess, err := s.lookup(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	if manual := strings.TrimSpace(req.GetManualRx()); manual != "" {
		if err := sess.ResolveManualRx(manual); err != nil {
			return nil, common.InvalidArgumentError(err.Error())
		}
		return &v1.ResolveRxResponse{Rx: sess.Record().Rx, NeedsReprint: sess.NeedsReprint()}, nil
	}
	rx := sess.AutogenerateRx()
	s.logger.Info("rx autogenerated", "session_id", sess.ID(), "rx", rx)
	return &v1.ResolveRxResponse{Rx: rx, NeedsReprint: sess.NeedsReprint()}, nil
}

func (s *CaptureService) SetAttestation(_ context.Context, req *v1.SetAttestationRequest) (*v1.SetAttestationResponse, error) {
	sess, err := s.lookup(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	sess.SetAttestation(session.Attestation{
		LabelRxCorrect:   req.GetLabelRxCorrect(),
		VialRxCorrect:    req.GetVialRxCorrect(),
		PatientIDCorrect: req.GetPatientIdCorrect(),
	})
	return &v1.SetAttestationResponse{}, nil
}

func (s *CaptureService) SaveRecord(ctx context.Context, req *v1.SaveRecordRequest) (*v1.SaveRecordResponse, error) {
	sess, err := s.lookup(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	if err := sess.Save(ctx, recordSaver{repo: s.vials}); err != nil {
		var verr *session.ValidationError
		switch {
		case errors.As(err, &verr):
			return nil, common.InvalidArgumentError(err.Error())
		case errors.Is(err, session.ErrRxMismatch), errors.Is(err, session.ErrNotAttested):
			return nil, common.FailedPreconditionError(err.Error())
		default:
			s.logger.Error("save failed", "session_id", sess.ID(), "err", err)
			return nil, common.InternalError("save failed")
		}
	}
	s.logger.Info("record saved", "session_id", sess.ID())
	return &v1.SaveRecordResponse{}, nil
}

func (s *CaptureService) lookup(id string) (*session.CaptureSession, error) {
	sessionID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, common.InvalidArgumentError("session_id must be a UUID")
	}
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, common.NotFoundError("session not found")
	}
	return sess, nil
}

// recordSaver bridges the capture session to the vial repository.
type recordSaver struct {
	repo repository.VialRepository
}

func (r recordSaver) Save(ctx context.Context, rec entity.VialRecord, imageURLs map[constants.ScanType]string, actor string) error {
	return r.repo.SaveRecord(ctx, rec, imageURLs, actor)
}

func fromProtoScanType(st v1.ScanType) (constants.ScanType, bool) {
	switch st {
	case v1.ScanType_SCAN_TYPE_LARGE_LABEL:
		return constants.ScanTypeLargeLabel, true
	case v1.ScanType_SCAN_TYPE_COA:
		return constants.ScanTypeCOA, true
	case v1.ScanType_SCAN_TYPE_VIAL:
		return constants.ScanTypeVial, true
	default:
		return "", false
	}
}

func toProtoReconciliation(state docparse.ReconciliationState) v1.ReconciliationState {
	switch state {
	case docparse.ReconcileBothMissing:
		return v1.ReconciliationState_RECONCILIATION_STATE_BOTH_MISSING
	case docparse.ReconcileLabelOnly:
		return v1.ReconciliationState_RECONCILIATION_STATE_LABEL_ONLY
	case docparse.ReconcileVialOnly:
		return v1.ReconciliationState_RECONCILIATION_STATE_VIAL_ONLY
	case docparse.ReconcileMatch:
		return v1.ReconciliationState_RECONCILIATION_STATE_MATCH
	case docparse.ReconcileMismatch:
		return v1.ReconciliationState_RECONCILIATION_STATE_MISMATCH
	default:
		return v1.ReconciliationState_RECONCILIATION_STATE_UNSPECIFIED
	}
}
