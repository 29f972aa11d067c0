package export

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/unithera/vialscan/internal/entity"
)

type fakeLister struct {
	vials []*entity.Vial
	err   error
	from  time.Time
	to    time.Time
}

func (f *fakeLister) ListVials(_ context.Context, from, to time.Time) ([]*entity.Vial, error) {
	f.from, f.to = from, to
	return f.vials, f.err
}

func TestExportVialsXLSX(t *testing.T) {
	t.Parallel()

	entered := time.Date(2025, 2, 5, 10, 30, 0, 0, time.UTC)
	lister := &fakeLister{vials: []*entity.Vial{
		{
			Radiopharmaceutical: "Lutathera",
			RxNumber:            445566,
			PatientID:           "A1023",
			LotNumber:           "LU-7789",
			CalibrationDate:     "2025-02-05 10:30:00",
			EnteredBy:           "tech1",
			EnteredDateTime:     entered,
		},
	}}

	svc := NewService(lister, slog.Default())
	out, err := svc.ExportVialsXLSX(context.Background(), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Vials")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "RX Number", rows[0][1])
	assert.Equal(t, "2025-02-05 10:30", rows[1][0])
	assert.Equal(t, "445566", rows[1][1])
	assert.Equal(t, "A1023", rows[1][2])
	assert.Equal(t, "Lutathera", rows[1][3])
	assert.Equal(t, "tech1", rows[1][11])
}

func TestExportVialsXLSXOnlyFromExtendsToToday(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{}
	svc := NewService(lister, slog.Default())

	from := time.Date(2025, 2, 1, 15, 0, 0, 0, time.UTC)
	_, err := svc.ExportVialsXLSX(context.Background(), &from, nil)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), lister.from)
	assert.False(t, lister.to.IsZero())
	assert.True(t, lister.to.After(lister.from))
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "a", truncate("abc", 1))

	// Multibyte manufacturer names must not be split mid-rune.
	got := truncate("Isotopen Technologien München AG", 29)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Isotopen Technologien Münche…", got)
	assert.Equal(t, 29, len([]rune(got)))
}

func TestExportVialsXLSXPropagatesQueryError(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeLister{err: errors.New("db down")}, slog.Default())
	_, err := svc.ExportVialsXLSX(context.Background(), nil, nil)
	assert.Error(t, err)
}
