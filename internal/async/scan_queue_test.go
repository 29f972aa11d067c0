package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unithera/vialscan/constants"
)

type countingProcessor struct {
	mu    sync.Mutex
	paths []string
}

func (p *countingProcessor) ProcessImage(_ context.Context, path string, _ constants.ScanType, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paths = append(p.paths, path)
	return nil
}

func TestScanQueueProcessesAllJobs(t *testing.T) {
	t.Parallel()

	proc := &countingProcessor{}
	q := NewScanQueue(proc, slog.Default(), WithWorkers(3), WithQueueSize(8))

	ctx := context.Background()
	for _, p := range []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"} {
		require.NoError(t, q.Enqueue(ctx, Job{Path: p, ScanType: constants.ScanTypeLargeLabel, Actor: "cli"}))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	q.Shutdown(shutdownCtx)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.ElementsMatch(t, []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"}, proc.paths)
}

func TestScanQueueEnqueueAfterShutdownIsDropped(t *testing.T) {
	t.Parallel()

	proc := &countingProcessor{}
	q := NewScanQueue(proc, slog.Default(), WithWorkers(1))
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "late.jpg"}))

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Empty(t, proc.paths)
}

func TestScanQueueShutdownIsIdempotent(t *testing.T) {
	t.Parallel()

	q := NewScanQueue(&countingProcessor{}, slog.Default(), WithWorkers(1))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}
