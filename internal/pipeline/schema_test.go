package processor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unithera/vialscan/internal/entity"
)

func TestRecordSchemaAcceptsMidCaptureSnapshot(t *testing.T) {
	t.Parallel()

	// Only the label has been scanned so far.
	data, err := json.Marshal(entity.VialRecord{
		Radiopharmaceutical: "Lutathera",
		Rx:                  "445566",
		PatientID:           "A1023",
	})
	require.NoError(t, err)

	assert.NoError(t, ValidateJSONAgainstSchema(BuildRecordJSONSchema(), data))
}

func TestRecordSchemaRejectsNonDigitRx(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(entity.VialRecord{Rx: "44a566"})
	require.NoError(t, err)

	assert.Error(t, ValidateJSONAgainstSchema(BuildRecordJSONSchema(), data))
}

func TestRecordSchemaRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidateJSONAgainstSchema(BuildRecordJSONSchema(),
		[]byte(`{"rx":"1","vial_rx":"1","patient_id":"p","radiopharmaceutical":"x","surprise":true}`)))
}
