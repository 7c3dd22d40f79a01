package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMemberID(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"12345", "12345"},
		{"12345.0", "12345"},
		{" 12345 ", "12345"},
		{" 12345 ", "12345"},
		{"123.5", "123.5"},
		{"A-17", "A-17"},
		{"nan", ""},
		{"None", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeMemberID(tc.in), "input %q", tc.in)
	}
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Ops", CleanText(" Ops "))
	assert.Equal(t, "الموارد البشرية", CleanText(" الموارد البشرية "))
	assert.Equal(t, "", CleanText("  "))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.5, Round2(90.0/60.0))
	assert.Equal(t, 0.33, Round2(20.0/60.0))
	assert.Equal(t, 2.67, Round2(160.0/60.0))
}
