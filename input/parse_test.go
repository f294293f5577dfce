package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		want Command
	}{
		{"3 4", Command{Row: 3, Col: 4}},
		{"3 4 x", Command{Row: 3, Col: 4, Flag: true}},
		{"3 4 F", Command{Row: 3, Col: 4, Flag: true}},
		{"  12\t\t7  \n", Command{Row: 12, Col: 7}},
		{"-1 0", Command{Row: -1, Col: 0}},
		{"1 1 anything-goes", Command{Row: 1, Col: 1, Flag: true}},
	}

	for _, tc := range cases {
		got, err := Parse(tc.line)
		require.NoError(t, err, "line %q", tc.line)
		assert.Equal(t, tc.want, got, "line %q", tc.line)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		line string
		want error
	}{
		{"", ErrTokenCount},
		{"3", ErrTokenCount},
		{"3 4 5 6", ErrTokenCount},
		{"a b", ErrNotInteger},
		{"3 b", ErrNotInteger},
		{"3.5 4", ErrNotInteger},
		{"a 4 F", ErrNotInteger},
	}

	for _, tc := range cases {
		_, err := Parse(tc.line)
		assert.ErrorIs(t, err, tc.want, "line %q", tc.line)
	}
}

func TestCommandIndex(t *testing.T) {
	row, col := Command{Row: 3, Col: 4}.Index()
	assert.Equal(t, 2, row)
	assert.Equal(t, 3, col)

	row, col = Command{Row: 0, Col: 1}.Index()
	assert.Equal(t, -1, row)
	assert.Equal(t, 0, col)
}
