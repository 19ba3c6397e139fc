package updatecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionKey(t *testing.T) {
	tests := []struct {
		version string
		want    float64
	}{
		{"1.2.3/4", 10203.004},
		{"0.1.0/10", 100.010},
		{"1.10.0", 11000},
		{"1.9.0", 10900},
		{"2", 2},
		{"1.2.beta", 10200},
		{"1.2.", 102},
		{"1.2/x", 102},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.InDelta(t, tt.want, VersionKey(tt.version), 1e-9)
		})
	}
}

func TestVersionKey_Ordering(t *testing.T) {
	assert.Greater(t, VersionKey("1.2.3/4"), VersionKey("1.2.2/9"))
	assert.Greater(t, VersionKey("1.10.0"), VersionKey("1.9.0"))
	assert.Greater(t, VersionKey("1.2.3/10"), VersionKey("1.2.3/9"))
	assert.Greater(t, VersionKey("1.2.3/1"), VersionKey("1.2.3"))
}

func TestNewerThan(t *testing.T) {
	tests := []struct {
		name          string
		last, current string
		want          bool
	}{
		{"newer", "1.2.0", "1.1.0", true},
		{"older", "1.0.0", "1.1.0", false},
		{"same", "1.1.0", "1.1.0", false},
		{"same ignoring case", "1.1.0-BETA", "1.1.0-beta", false},
		{"no last version", "", "1.1.0", false},
		{"no current version", "1.2.0", "", false},
		{"segment widths", "1.10.0", "1.9.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newerThan(tt.last, tt.current))
		})
	}
}
