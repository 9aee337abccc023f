package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		input    string
		fallback int
		want     int
		wantOK   bool
	}{
		{input: "3", fallback: 1, want: 3, wantOK: true},
		{input: " 12 ", fallback: 1, want: 12, wantOK: true},
		{input: "", fallback: 9, want: 9, wantOK: false},
		{input: "0", fallback: 9, want: 9, wantOK: false},
		{input: "-5", fallback: 9, want: 9, wantOK: false},
		{input: "abc", fallback: 9, want: 9, wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ParsePositiveInt(tt.input, tt.fallback)
		assert.Equal(t, tt.want, got, "input=%q", tt.input)
		assert.Equal(t, tt.wantOK, ok, "input=%q", tt.input)
	}
}
