package pantry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_AcceptedLayouts(t *testing.T) {
	want := time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2025-11-25", "25/11/2025", "25-11-2025"} {
		got, ok := ParseDate(s)
		require.True(t, ok, s)
		assert.True(t, got.Equal(want), s)
	}
}

func TestParseDate_FailsClosed(t *testing.T) {
	for _, s := range []string{"", "  ", "none", "soon", "2025/11/25", "11-25-2025", "25th Nov"} {
		_, ok := ParseDate(s)
		assert.False(t, ok, "%q should not parse", s)
	}
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2025, 11, 25, 13, 45, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
}
