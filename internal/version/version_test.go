package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIDFor(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch date", date: "2026-01-01", expected: 0},
		{name: "next day after epoch", date: "2026-01-02", expected: 1},
		{name: "one year later", date: "2027-01-01", expected: 365},
		{name: "across a leap year", date: "2029-01-01", expected: 1096},
		{name: "invalid format", date: "invalid", wantError: true},
		{name: "empty date", date: "", wantError: true},
		{name: "before epoch", date: "2025-12-31", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildIDFor(tt.date)

			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// withBuild подменяет переменные сборки на время теста
func withBuild(t *testing.T, date, commit string) {
	t.Helper()
	oldDate, oldCommit := BuildDate, BuildCommit
	BuildDate, BuildCommit = date, commit
	t.Cleanup(func() {
		BuildDate, BuildCommit = oldDate, oldCommit
	})
}

func TestInfoAndString(t *testing.T) {
	withBuild(t, "2026-01-11", "0123456789abcdef")

	info := Info()
	assert.True(t, info.Calculated)
	assert.Equal(t, 10, info.BuildID)
	assert.Equal(t, "Build 10 (2026-01-11) commit[0123456789abcdef] branch[unknown] ci[local]", String())
	assert.Equal(t, "b10-0123456", Short())
}

func TestUnknownBuild(t *testing.T) {
	withBuild(t, "", "")

	info := Info()
	assert.False(t, info.Calculated)
	assert.NotEmpty(t, info.Error)
	assert.Equal(t, "Build unknown (BuildDate is empty)", String())
	assert.Equal(t, "dev", Short())
}
