package shortener

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "A"},
		{1, "B"},
		{57, "9"},
		{58, "BA"},
		{59, "BB"},
		{3364, "BAA"},
		{12345, "Dp1"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Encode(test.input), "Encode(%d)", test.input)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"A", 0},
		{"B", 1},
		{"9", 57},
		{"BA", 58},
		{"Dp1", 12345},
		{"AAAAB", 1}, // leading zero digits don't change the value
	}

	for _, test := range tests {
		value, err := Decode(test.input)
		require.NoError(t, err, "Decode(%q)", test.input)
		assert.Equal(t, test.expected, value, "Decode(%q)", test.input)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := []int64{0, 1, 57, 58, 100, 3363, 3364, 999999, 1<<40 + 7}

	for _, value := range values {
		decoded, err := Decode(Encode(value))
		require.NoError(t, err)
		assert.Equal(t, value, decoded)
	}
}

func TestDecodeRejectsInvalidCharacters(t *testing.T) {
	// 0, O, I and l are excluded from the alphabet.
	for _, code := range []string{"abc0", "O", "III", "xyzl", "code with space"} {
		_, err := Decode(code)
		require.Error(t, err, "Decode(%q)", code)
		assert.True(t, IsKind(err, KindInvalidCodeFormat))
	}
}

func TestDecodeRejectsEmptyCode(t *testing.T) {
	_, err := Decode("")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidCodeFormat))
}
