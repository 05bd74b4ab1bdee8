package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsAsSuccess(t *testing.T) {
	r := New[string]()
	assert.True(t, r.IsSuccess())
	assert.Equal(t, Success, r.Type())
	assert.Empty(t, r.Messages())
	assert.Nil(t, r.Payload())
}

func TestAddMessageDowngrades(t *testing.T) {
	r := New[string]()
	r.AddMessage("bad input", Invalid)

	assert.False(t, r.IsSuccess())
	assert.Equal(t, Invalid, r.Type())
	assert.Equal(t, []string{"bad input"}, r.Messages())
}

func TestLastFailureDecidesType(t *testing.T) {
	r := New[string]()
	r.AddMessage("taken", Duplicate)
	r.AddMessage("too short", Invalid)

	// Diagnostics accumulate in order; the classification follows the
	// last appended failure.
	assert.Equal(t, []string{"taken", "too short"}, r.Messages())
	assert.Equal(t, Invalid, r.Type())
}

func TestMessagesReturnsCopy(t *testing.T) {
	r := New[int]()
	r.AddMessage("first", NotFound)

	got := r.Messages()
	got[0] = "mutated"
	assert.Equal(t, []string{"first"}, r.Messages())
}

func TestSetPayload(t *testing.T) {
	r := New[int]()
	r.SetPayload(42)

	require.NotNil(t, r.Payload())
	assert.Equal(t, 42, *r.Payload())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "invalid", Invalid.String())
	assert.Equal(t, "duplicate", Duplicate.String())
	assert.Equal(t, "not_found", NotFound.String())
}
