package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBirthdayWindow(t *testing.T) {
	t.Run("plain range", func(t *testing.T) {
		w := BirthdayWindow(date(2024, time.March, 1), 10)
		// 2024 високосный: 1 марта = 61-й день
		assert.Equal(t, 61, w.StartDay)
		assert.Equal(t, 71, w.EndDay)
		assert.False(t, w.Wraps())
	})

	t.Run("wraps over new year", func(t *testing.T) {
		w := BirthdayWindow(date(2024, time.December, 28), 7)
		assert.Equal(t, 363, w.StartDay)
		assert.Equal(t, 4, w.EndDay)
		assert.True(t, w.Wraps())
	})

	t.Run("zero gap is a single day", func(t *testing.T) {
		today := date(2025, time.June, 15)
		w := BirthdayWindow(today, 0)
		assert.Equal(t, w.StartDay, w.EndDay)
		assert.Equal(t, today.YearDay(), w.StartDay)
		assert.False(t, w.Wraps())
	})

	t.Run("negative gap treated as zero", func(t *testing.T) {
		today := date(2025, time.June, 15)
		assert.Equal(t, BirthdayWindow(today, 0), BirthdayWindow(today, -5))
	})

	t.Run("window ending on dec 31 does not wrap", func(t *testing.T) {
		w := BirthdayWindow(date(2025, time.December, 24), 7)
		assert.Equal(t, 358, w.StartDay)
		assert.Equal(t, 365, w.EndDay)
		assert.False(t, w.Wraps())
	})
}

func TestWindowContains(t *testing.T) {
	t.Run("plain range is a closed interval", func(t *testing.T) {
		w := Window{StartDay: 61, EndDay: 71}
		assert.True(t, w.Contains(61))
		assert.True(t, w.Contains(65))
		assert.True(t, w.Contains(71))
		assert.False(t, w.Contains(60))
		assert.False(t, w.Contains(72))
	})

	t.Run("wrapped range matches both tails", func(t *testing.T) {
		w := Window{StartDay: 363, EndDay: 4}
		require.True(t, w.Wraps())
		assert.True(t, w.Contains(363))
		assert.True(t, w.Contains(366))
		assert.True(t, w.Contains(1))
		assert.True(t, w.Contains(4))
		assert.False(t, w.Contains(5))
		assert.False(t, w.Contains(362))
		assert.False(t, w.Contains(180))
	})
}

func TestDayOfYear(t *testing.T) {
	assert.Equal(t, 1, DayOfYear(date(2025, time.January, 1)))
	assert.Equal(t, 365, DayOfYear(date(2025, time.December, 31)))
	// в високосном году всё после 29 февраля сдвинуто на единицу
	assert.Equal(t, 61, DayOfYear(date(2024, time.March, 1)))
	assert.Equal(t, 60, DayOfYear(date(2025, time.March, 1)))
	assert.Equal(t, 366, DayOfYear(date(2024, time.December, 31)))
}
