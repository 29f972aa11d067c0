package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Tesseract recognizes text by shelling out to the tesseract binary.
type Tesseract struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

// NewTesseract builds a tesseract-backed recognizer. Missing config values
// fall back to the binary on PATH and English.
func NewTesseract(cfg Config, logger *slog.Logger) *Tesseract {
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tesseract{cfg: cfg, runner: execRunner{}, logger: logger}
}

func (t *Tesseract) Recognize(ctx context.Context, image []byte) ([]string, error) {
	tmp, err := os.CreateTemp("", "vialscan-*.img")
	if err != nil {
		return nil, fmt.Errorf("ocr temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(image); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("ocr temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("ocr temp file: %w", err)
	}

	args := []string{tmp.Name(), "stdout", "-l", t.cfg.TesseractLang}
	if t.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", t.cfg.PSM))
	}
	if t.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", t.cfg.OEM))
	}
	if t.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", t.cfg.TessdataDir)
	}

	out, errb, err := t.runner.Run(ctx, t.cfg.Tesseract, args...)
	if err != nil {
		return nil, fmt.Errorf("tesseract: %w: %s", err, truncate(string(errb), 512))
	}

	lines := SplitLines(string(out))
	t.logger.Debug("tesseract recognized", "lines", len(lines))
	return lines, nil
}
