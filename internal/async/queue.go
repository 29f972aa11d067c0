package async

import (
	"context"
	"time"

	"github.com/unithera/vialscan/constants"
)

// Job is one captured image waiting to be scanned, used by the batch path
// when a backlog of images is reprocessed.
type Job struct {
	Path        string
	ScanType    constants.ScanType
	Actor       string
	SubmittedAt time.Time
	TraceID     string
}

// Processor runs the scan pipeline for a single image file.
type Processor interface {
	ProcessImage(ctx context.Context, path string, scanType constants.ScanType, actor string) error
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
