package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTimeSlots(t *testing.T) {
	slots := GenerateTimeSlots()

	assert.Len(t, slots, 17)
	assert.Equal(t, "9:00", slots[0])
	assert.Equal(t, "9:30", slots[1])
	assert.Equal(t, "17:00", slots[len(slots)-1])
	assert.NotContains(t, slots, "17:30")
	assert.NotContains(t, slots, "09:00", "hours are not zero padded")
}

func TestFormatDateForBackend(t *testing.T) {
	formatted, err := FormatDateForBackend("2030-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2030-01-01 00:00:00", formatted)

	_, err = FormatDateForBackend("01/01/2030")
	require.Error(t, err)
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2030, 6, 15, 12, 0, 0, 0, time.UTC)

	past, err := IsDateInPast("2030-06-14", now)
	require.NoError(t, err)
	assert.True(t, past)

	past, err = IsDateInPast("2030-06-16", now)
	require.NoError(t, err)
	assert.False(t, past)

	// The current date's midnight is before noon, so today counts as past.
	past, err = IsDateInPast("2030-06-15", now)
	require.NoError(t, err)
	assert.True(t, past)

	_, err = IsDateInPast("not-a-date", now)
	require.Error(t, err)
}

func TestCanonicalTimeSlot(t *testing.T) {
	slot, err := CanonicalTimeSlot("09:00")
	require.NoError(t, err)
	assert.Equal(t, "9:00", slot)

	slot, err = CanonicalTimeSlot("9:00")
	require.NoError(t, err)
	assert.Equal(t, "9:00", slot)

	slot, err = CanonicalTimeSlot("17:30")
	require.NoError(t, err)
	assert.Equal(t, "17:30", slot)

	_, err = CanonicalTimeSlot("25:00")
	require.Error(t, err)
	_, err = CanonicalTimeSlot("mediodía")
	require.Error(t, err)
}

func TestContainsTime(t *testing.T) {
	occupied := []string{"9:00", "10:30", "16:00"}

	assert.True(t, ContainsTime(occupied, "10:30"))
	assert.False(t, ContainsTime(occupied, "10:00"))
	assert.False(t, ContainsTime(nil, "10:00"))

	// Zero-padded representations name the same wall-clock slot.
	assert.True(t, ContainsTime(occupied, "09:00"))
	assert.True(t, ContainsTime([]string{"09:00"}, "9:00"))
}
