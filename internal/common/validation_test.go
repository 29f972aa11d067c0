package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestValidatorCollectsErrors(t *testing.T) {
	t.Parallel()

	v := NewValidator()
	v.Field("actor", "", Required)
	v.Field("manual_rx", "12a456", DigitsOnly)

	require.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)
	assert.Contains(t, v.ErrorMessage(), "actor")
	assert.Contains(t, v.ErrorMessage(), "manual_rx")
}

func TestRequired(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Required("actor", "tech-01"))
	assert.NotNil(t, Required("actor", ""))
	assert.NotNil(t, Required("actor", "   "))
	assert.NotNil(t, Required("actor", nil))

	empty := " "
	assert.NotNil(t, Required("actor", &empty))
	set := "tech-01"
	assert.Nil(t, Required("actor", &set))
}

func TestDigitsOnly(t *testing.T) {
	t.Parallel()

	assert.Nil(t, DigitsOnly("rx", "123456"))
	assert.NotNil(t, DigitsOnly("rx", ""))
	assert.NotNil(t, DigitsOnly("rx", "12a456"))
	assert.NotNil(t, DigitsOnly("rx", "123 456"))
	assert.NotNil(t, DigitsOnly("rx", 123456))
}

func TestMaxLength(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MaxLength("manufacturer", "AAA", 5))
	assert.NotNil(t, MaxLength("manufacturer", "Advanced Accelerator Applications", 5))
	// Runes, not bytes.
	assert.Nil(t, MaxLength("unit", "μCi/mL", 6))
}

func TestUUIDRule(t *testing.T) {
	t.Parallel()

	assert.Nil(t, UUID("session_id", "9f4c5c2e-0c3a-4a9e-9a6e-1c8b2d3e4f5a"))
	assert.NotNil(t, UUID("session_id", "not-a-uuid"))
	assert.NotNil(t, UUID("session_id", 42))
}

func TestValidateAndReturnError(t *testing.T) {
	t.Parallel()

	clean := NewValidator()
	clean.Field("rx", "999123", DigitsOnly)
	assert.NoError(t, ValidateAndReturnError(clean))

	bad := NewValidator()
	bad.Field("rx", "rx-123", DigitsOnly)
	err := ValidateAndReturnError(bad)
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}
