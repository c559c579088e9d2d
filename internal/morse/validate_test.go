package morse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n "} {
		_, err := Validate(in)
		require.Error(t, err, "Validate(%q)", in)

		reason, ok := ReasonOf(err)
		require.True(t, ok)
		assert.Equal(t, ReasonEmptyInput, reason)
		assert.True(t, errors.Is(err, ErrEmptyInput))
		assert.False(t, errors.Is(err, ErrUnsupportedCharacter))
	}
}

func TestValidate_Accepts(t *testing.T) {
	for _, in := range []string{"hello!", "SOS", "Mixed Case 123", "a.b,c?d!e@f"} {
		got, err := Validate(in)
		require.NoError(t, err, "Validate(%q)", in)
		assert.Equal(t, in, got)
	}
}

func TestValidate_UnsupportedCharacter(t *testing.T) {
	_, err := Validate("hello#")
	require.Error(t, err)

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, ReasonUnsupportedCharacter, convErr.Reason)
	assert.Equal(t, []rune{'#'}, convErr.Characters)
	assert.True(t, errors.Is(err, ErrUnsupportedCharacter))
	assert.False(t, errors.Is(err, ErrEmptyInput))
}

func TestValidate_ReportsDistinctCharactersInOrder(t *testing.T) {
	_, err := Validate("a#b$c#d")

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, []rune{'#', '$'}, convErr.Characters)
	assert.Contains(t, err.Error(), `'#', '$'`)
}

// Only the emptiness check trims. Surrounding whitespace is returned
// untouched, and any non-space whitespace at the edges is still checked.
func TestValidate_DoesNotTrimForMembership(t *testing.T) {
	got, err := Validate("  sos  ")
	require.NoError(t, err)
	assert.Equal(t, "  sos  ", got)

	_, err = Validate("sos\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedCharacter))
}

func TestValidate_EmptyTakesPrecedence(t *testing.T) {
	// Whitespace-only input with unsupported whitespace is still empty.
	_, err := Validate("\t")
	assert.True(t, errors.Is(err, ErrEmptyInput))
}
