package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMatricule(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ETU-2021-0042", true},
		{"etu-2021-0042", false},
		{"ET-2021-0042", false},
		{"ETU-21-0042", false},
		{"ETU-2021-0042X", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidMatricule(tt.in), tt.in)
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"771234567", true},
		{"701234567", true},
		{"781234567", true},
		{"671234567", false},
		{"7712345678", false},
		{"77123456", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidPhone(tt.in), tt.in)
	}
}

func TestIsValidTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"23:59", true},
		{"08:30", true},
		{"24:00", false},
		{"12:60", false},
		{"8:30", false},
		{"0830", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidTime(tt.in), tt.in)
	}
}

func TestIsValidNote(t *testing.T) {
	assert.True(t, IsValidNote(0))
	assert.True(t, IsValidNote(20))
	assert.True(t, IsValidNote(12.5))
	assert.False(t, IsValidNote(-0.5))
	assert.False(t, IsValidNote(20.5))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2021-03-01"))
	assert.False(t, IsValidDate("01/03/2021"))
	assert.False(t, IsValidDate("2021-13-01"))
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Informatique", CleanString("  Informatique "))
	assert.Equal(t, "info@example.com", CleanString("  INFO@Example.Com ", true))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "INFO", NormalizeCode(" info "))
}
