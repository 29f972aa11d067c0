package imagestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/unithera/vialscan/constants"
)

func TestObjectKey(t *testing.T) {
	t.Parallel()

	at := time.Unix(1738750200, 0)

	assert.Equal(t, "largeLabel/rx_445566_1738750200.jpg",
		ObjectKey(constants.ScanTypeLargeLabel, "445566", at))
	assert.Equal(t, "coa/rx_445566_1738750200.jpg",
		ObjectKey(constants.ScanTypeCOA, "445566", at))
	assert.Equal(t, "pharma-documents/rx_445566_1738750200.jpg",
		ObjectKey(constants.ScanTypeVial, "445566", at))

	// Before an RX is known the key carries a placeholder.
	assert.Equal(t, "largeLabel/rx_pending_1738750200.jpg",
		ObjectKey(constants.ScanTypeLargeLabel, "", at))
}
