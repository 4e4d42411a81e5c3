package validate

import (
	"strings"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid text", "Buy milk", false},
		{"padded text", "  Buy milk  ", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
		{"newlines", "\n\r\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TaskText(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "TaskText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestMaxLength(t *testing.T) {
	assert.NoError(t, MaxLength(0)(strings.Repeat("x", 10_000)))
	assert.NoError(t, MaxLength(3)("abc"))
	assert.NoError(t, MaxLength(3)("  abc  "), "surrounding whitespace is not counted")
	assert.NoError(t, MaxLength(3)("日本語"), "runes, not bytes")
	assert.Error(t, MaxLength(3)("abcd"))
}

func TestTaskTextField(t *testing.T) {
	require.NoError(t, TaskTextField("text", "Buy milk", 280))

	err := TaskTextField("text", "   ", 280)
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.NotEmpty(t, fieldErrs)
	assert.Equal(t, "text", fieldErrs[0].Field)
}
