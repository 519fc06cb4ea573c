package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayWindow(t *testing.T) {
	noon := time.Date(2024, 3, 15, 12, 34, 56, 0, time.UTC)

	start, end := DayWindow(noon)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.True(t, end.After(start))
	assert.Equal(t, start.Day(), end.Day())
}

func TestDayWindowContainsWholeDay(t *testing.T) {
	day := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	start, end := DayWindow(day)

	earliest := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	latest := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)

	assert.False(t, earliest.Before(start))
	assert.False(t, latest.After(end))

	nextMidnight := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	assert.True(t, nextMidnight.After(end))
}

func TestDayWindowIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC)

	mStart, mEnd := DayWindow(morning)
	eStart, eEnd := DayWindow(evening)

	assert.Equal(t, mStart, eStart)
	assert.Equal(t, mEnd, eEnd)
}
