package ocr

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	stdout []byte
	stderr []byte
	err    error

	name string
	args []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.name = name
	f.args = args
	return f.stdout, f.stderr, f.err
}

func TestTesseractRecognize(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{stdout: []byte("Product: Lutathera\n\n  RX# 445566  \n")}
	tess := NewTesseract(Config{PSM: 6, OEM: 1, TessdataDir: "/opt/tessdata"}, slog.Default())
	tess.runner = runner

	lines, err := tess.Recognize(context.Background(), []byte("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Product: Lutathera", "RX# 445566"}, lines)

	assert.Equal(t, "tesseract", runner.name)
	assert.Contains(t, runner.args, "stdout")
	assert.Contains(t, runner.args, "eng")
	assert.Contains(t, runner.args, "--psm")
	assert.Contains(t, runner.args, "--oem")
	assert.Contains(t, runner.args, "--tessdata-dir")
}

func TestTesseractRecognizeFailure(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{stderr: []byte("could not read image"), err: errors.New("exit status 1")}
	tess := NewTesseract(Config{}, slog.Default())
	tess.runner = runner

	_, err := tess.Recognize(context.Background(), []byte("bad"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read image")
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b"}, SplitLines(" a \n\n b \n"))
	assert.Nil(t, SplitLines("\n \n"))
	assert.Nil(t, SplitLines(""))
}
