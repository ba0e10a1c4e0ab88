package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelChecks(t *testing.T) {
	t.Run("wrapped missing input is detected", func(t *testing.T) {
		err := Wrap(ErrMissingInput, "countries directory not found")
		assert.True(t, IsMissingInput(err))
		assert.False(t, IsUsage(err))
	})

	t.Run("usage error constructor preserves sentinel", func(t *testing.T) {
		err := NewUsageError("invalid formats: %s", "xml")
		assert.True(t, IsUsage(err))
		assert.Contains(t, err.Error(), "xml")
	})

	t.Run("missing input constructor preserves sentinel", func(t *testing.T) {
		err := NewMissingInputError("blocktypes file not found: %s", "/tmp/x.yaml")
		assert.True(t, IsMissingInput(err))
		assert.Contains(t, err.Error(), "/tmp/x.yaml")
	})

	t.Run("schema conversion wraps across layers", func(t *testing.T) {
		inner := Wrap(ErrSchemaConversion, "countries")
		outer := Wrap(inner, "parquet export")
		assert.True(t, IsSchemaConversion(outer))
	})

	t.Run("nil is never a sentinel", func(t *testing.T) {
		assert.False(t, IsMissingInput(nil))
		assert.False(t, IsUsage(nil))
		assert.False(t, IsSchemaConversion(nil))
	})
}

func TestStackTraces(t *testing.T) {
	err := New("boom")
	assert.NotNil(t, GetStack(err), "errors created here should carry a stack trace")
}
