package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoragePrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "largeLabel/", ScanTypeLargeLabel.StoragePrefix())
	assert.Equal(t, "coa/", ScanTypeCOA.StoragePrefix())
	assert.Equal(t, "pharma-documents/", ScanTypeVial.StoragePrefix())
}

func TestParseScanType(t *testing.T) {
	t.Parallel()

	st, ok := ParseScanType("LARGE_LABEL")
	require.True(t, ok)
	assert.Equal(t, ScanTypeLargeLabel, st)

	_, ok = ParseScanType("RECEIPT")
	assert.False(t, ok)
}

func TestIsAllowedExt(t *testing.T) {
	t.Parallel()

	assert.True(t, IsAllowedExt(".JPG"))
	assert.True(t, IsAllowedExt("heic"))
	assert.False(t, IsAllowedExt("pdf"))
}
