package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"   \t\n ", 0},
		{"hello", 1},
		{"a  b\nc", 3},
		{"  leading and trailing  ", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountWords(tt.content), "content %q", tt.content)
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	in := time.Date(2025, 6, 15, 23, 45, 12, 99, loc)

	got := DateOnly(in)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2025-06-15", got.Format(DateFormat))
}
