package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScanJob records one OCR pass over a captured image for transfer between layers.
type ScanJob struct {
	ID            uuid.UUID  `json:"id"`
	SessionID     uuid.UUID  `json:"session_id"`
	ScanType      string     `json:"scan_type"`
	Status        string     `json:"status"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
	LineCount     int        `json:"line_count"`
	OCRText       *string    `json:"ocr_text,omitempty"`
	ExtractedJSON []byte     `json:"extracted_json,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	Actor         string     `json:"actor"`
}
