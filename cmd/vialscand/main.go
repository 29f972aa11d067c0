package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unithera/vialscan/gen/ent"
	v1 "github.com/unithera/vialscan/gen/proto/vialscan/v1"
	"github.com/unithera/vialscan/internal/common"
	"github.com/unithera/vialscan/internal/export"
	"github.com/unithera/vialscan/internal/imagestore"
	"github.com/unithera/vialscan/internal/ocr"
	processor "github.com/unithera/vialscan/internal/pipeline"
	repo "github.com/unithera/vialscan/internal/repository"
	svc "github.com/unithera/vialscan/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if cfg.Database.DSN != "" {
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
	} else {
		entc, err = repo.OpenSQLite(cfg.Database.LocalPath, logger)
	}
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if pool != nil {
		if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	vialsRepo := repo.NewVialRepository(entc, logger)
	jobsRepo := repo.NewScanJobRepository(entc, logger)

	recognizer, closeOCR, err := buildRecognizer(ctx, cfg.OCR, logger)
	if err != nil {
		logger.Error("failed to initialize OCR backend", "backend", cfg.OCR.Backend, "error", err)
		os.Exit(1)
	}
	defer closeOCR()

	store, err := imagestore.NewS3(ctx, imagestore.Config{
		Bucket: cfg.Storage.Bucket,
		Region: cfg.Storage.Region,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize image store", "error", err)
		os.Exit(1)
	}

	stage := processor.NewScanStage(jobsRepo, recognizer, store, logger)

	sessions := svc.NewSessionRegistry()
	captureService := svc.NewCaptureService(sessions, stage, vialsRepo, logger)
	v1.RegisterCaptureServiceServer(grpcServer, captureService)

	exportService := export.NewService(vialsRepo, logger)
	inventoryService := svc.NewInventoryService(vialsRepo, exportService, logger)
	v1.RegisterInventoryServiceServer(grpcServer, inventoryService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("vialscand listening", "addr", addr, "ocr_backend", cfg.OCR.Backend)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}

func buildRecognizer(ctx context.Context, cfg common.OCRConfig, logger *slog.Logger) (ocr.Recognizer, func(), error) {
	switch cfg.Backend {
	case "tesseract":
		t := ocr.NewTesseract(ocr.Config{
			Backend:       cfg.Backend,
			Tesseract:     cfg.TesseractPath,
			TesseractLang: cfg.TesseractLang,
			TessdataDir:   cfg.TessdataDir,
			PSM:           cfg.PSM,
			OEM:           cfg.OEM,
		}, logger)
		return t, func() {}, nil
	default:
		v, err := ocr.NewVision(ctx, logger)
		if err != nil {
			return nil, nil, err
		}
		return v, func() { _ = v.Close() }, nil
	}
}
