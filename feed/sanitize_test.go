package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean string unchanged",
			input:    "Test Artist",
			expected: "Test Artist",
		},
		{
			name:     "embedded NUL removed",
			input:    "Test\x00Artist",
			expected: "TestArtist",
		},
		{
			name:     "vertical tab removed",
			input:    "Test\vArtist",
			expected: "TestArtist",
		},
		{
			name:     "newline and tab removed",
			input:    "Test\n\tArtist",
			expected: "TestArtist",
		},
		{
			name:     "delete character removed",
			input:    "Test\x7fArtist",
			expected: "TestArtist",
		},
		{
			name:     "non-control unicode kept",
			input:    "Tëst Ärtíst 音楽",
			expected: "Tëst Ärtíst 音楽",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only control characters",
			input:    "\x00\x01\x02",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}
