package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/unithera/vialscan/constants"
	"github.com/unithera/vialscan/internal/async"
	"github.com/unithera/vialscan/internal/common"
	"github.com/unithera/vialscan/internal/docparse"
	"github.com/unithera/vialscan/internal/ocr"
	"github.com/unithera/vialscan/internal/session"
)

var scanCmd = &cobra.Command{
	Use:   "scan [image...]",
	Short: "OCR one or more captured images and print the extracted fields",
	Long: `Recognize text in the given image files and parse it according to the
document type. All images in one invocation feed the same capture record, so
scanning a label and then a vial reconciles the prescription numbers.

Runs fully offline using the tesseract backend; nothing is uploaded or saved.`,
	Example: `  # Parse a pharmacy label
  vialscan scan --type label shield.jpg

  # Reconcile a label against its vial
  vialscan scan --type label shield.jpg --then-type vial vial.jpg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringP("type", "t", "label", "Document type: label, coa or vial")
	scanCmd.Flags().String("then-type", "", "Document type for the second and later images")
	scanCmd.Flags().Int("workers", 1, "Worker count for batch scanning")
	scanCmd.Flags().Bool("lines", false, "Also print the recognized text lines")
}

func runScan(cmd *cobra.Command, args []string) error {
	logger := slog.Default()
	typeFlag, _ := cmd.Flags().GetString("type")
	thenType, _ := cmd.Flags().GetString("then-type")
	workers, _ := cmd.Flags().GetInt("workers")
	printLines, _ := cmd.Flags().GetBool("lines")

	first, ok := parseDocType(typeFlag)
	if !ok {
		return fmt.Errorf("unknown document type %q", typeFlag)
	}
	rest := first
	if thenType != "" {
		if rest, ok = parseDocType(thenType); !ok {
			return fmt.Errorf("unknown document type %q", thenType)
		}
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

	sess := session.New("cli")
	proc := &offlineProcessor{
		recognizer: recognizer,
		sess:       sess,
		printLines: printLines,
	}

	ctx := cmd.Context()
	if workers > 1 && len(args) > 1 {
		queue := async.NewScanQueue(proc, logger, async.WithWorkers(workers))
		for i, path := range args {
			st := first
			if i > 0 {
				st = rest
			}
			_ = queue.Enqueue(ctx, async.Job{Path: path, ScanType: st, Actor: "cli"})
		}
		queue.Shutdown(ctx)
	} else {
		for i, path := range args {
			st := first
			if i > 0 {
				st = rest
			}
			if err := proc.ProcessImage(ctx, path, st, "cli"); err != nil {
				return err
			}
		}
	}

	out, err := json.MarshalIndent(sess.Record(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// offlineProcessor runs OCR and parsing without the persistence side of the
// pipeline, for ad-hoc use against local files.
type offlineProcessor struct {
	recognizer  ocr.Recognizer
	sess        *session.CaptureSession
	printLines  bool
	printRecord bool
}

func (p *offlineProcessor) ProcessImage(ctx context.Context, path string, scanType constants.ScanType, _ string) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	lines, err := p.recognizer.Recognize(ctx, image)
	if err != nil {
		return fmt.Errorf("recognize %s: %w", path, err)
	}
	if p.printLines {
		for _, line := range lines {
			fmt.Println(line)
		}
	}

	switch scanType {
	case constants.ScanTypeLargeLabel:
		p.sess.ApplyLabel(docparse.ParseLabel(lines))
	case constants.ScanTypeCOA:
		p.sess.ApplyCertificate(docparse.ParseCertificate(lines))
	case constants.ScanTypeVial:
		candidate, found := docparse.ParseVial(lines)
		rec := p.sess.ApplyVialScan(candidate, found)
		fmt.Printf("reconciliation: %s (%s)\n", rec.State, rec.Prompt)
	}

	if p.printRecord {
		out, err := json.MarshalIndent(p.sess.Record(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", path, out)
	}
	return nil
}

func parseDocType(s string) (constants.ScanType, bool) {
	switch s {
	case "label":
		return constants.ScanTypeLargeLabel, true
	case "coa":
		return constants.ScanTypeCOA, true
	case "vial":
		return constants.ScanTypeVial, true
	default:
		return "", false
	}
}
