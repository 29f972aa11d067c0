package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/unithera/vialscan/internal/async"
	"github.com/unithera/vialscan/internal/common"
	"github.com/unithera/vialscan/internal/ingest"
	"github.com/unithera/vialscan/internal/ocr"
	"github.com/unithera/vialscan/internal/session"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir...]",
	Short: "Watch drop folders and parse captured images as they arrive",
	Long: `Watch one or more directories for new image files. Each file is
recognized and parsed according to --type, and the running capture record is
printed after every scan. Useful when the scanner station saves captures to a
shared folder.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("type", "t", "label", "Document type: label, coa or vial")
	watchCmd.Flags().Bool("initial-scan", false, "Process files already present at startup")
	watchCmd.Flags().Duration("debounce", 500*time.Millisecond, "Coalesce rapid file events")
	watchCmd.Flags().Int("workers", 2, "Worker count")
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := slog.Default()
	typeFlag, _ := cmd.Flags().GetString("type")
	initialScan, _ := cmd.Flags().GetBool("initial-scan")
	debounce, _ := cmd.Flags().GetDuration("debounce")
	workers, _ := cmd.Flags().GetInt("workers")

	scanType, ok := parseDocType(typeFlag)
	if !ok {
		return fmt.Errorf("unknown document type %q", typeFlag)
	}

	cfg := common.LoadConfig()
	recognizer := ocr.NewTesseract(ocr.Config{
		Backend:       "tesseract",
		Tesseract:     cfg.OCR.TesseractPath,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)

	proc := &offlineProcessor{
		recognizer:  recognizer,
		sess:        session.New("cli"),
		printRecord: true,
	}
	queue := async.NewScanQueue(proc, logger,
		async.WithWorkers(workers),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	ctx := cmd.Context()
	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       args,
		InitialScan: initialScan,
		Debounce:    debounce,
	})
	if err != nil {
		return err
	}

	logger.Info("watching for captures", "roots", args, "type", scanType)
	for {
		select {
		case <-ctx.Done():
			queue.Shutdown(ctx)
			return nil
		case path, open := <-events:
			if !open {
				queue.Shutdown(ctx)
				return nil
			}
			_ = queue.Enqueue(ctx, async.Job{
				Path:        path,
				ScanType:    scanType,
				Actor:       "cli",
				SubmittedAt: time.Now(),
			})
		case werr := <-errs:
			if werr != nil {
				logger.Error("watch error", "error", werr)
			}
		}
	}
}
