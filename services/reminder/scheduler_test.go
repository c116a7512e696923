package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerAtOneDayBefore(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 5, 0, time.UTC)

	got, err := TriggerAt("2026-09-07", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 6, 14, 30, 5, 0, time.UTC), got)
}

func TestTriggerAtPastDateIsReturnedAsIs(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	got, err := TriggerAt("2026-08-20", now)
	require.NoError(t, err)
	assert.True(t, got.Before(now), "past triggers are not clamped to now")
	assert.Equal(t, time.Date(2026, 8, 19, 8, 0, 0, 0, time.UTC), got)
}

func TestTriggerAtKeepsLocation(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	now := time.Date(2026, 9, 1, 9, 15, 0, 0, loc)

	got, err := TriggerAt("2026-09-07", now)
	require.NoError(t, err)
	assert.Equal(t, loc, got.Location())
}

func TestTriggerAtRejectsBadDate(t *testing.T) {
	_, err := TriggerAt("07.09.2026", time.Now())
	assert.Error(t, err)
}
