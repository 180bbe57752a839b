// file: internals/features/tutoring/jadwal/service/day_resolver_test.go
package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDayNums(t *testing.T) {
	t.Run("indonesia dan inggris campur, case-insensitive", func(t *testing.T) {
		nums, err := ResolveDayNums([]string{"Senin", "WEDNESDAY", " jumat "})
		require.NoError(t, err)
		assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, nums)
	})

	t.Run("daftar kosong ditolak", func(t *testing.T) {
		_, err := ResolveDayNums(nil)
		require.Error(t, err)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	})

	t.Run("nama hari tak dikenal ditolak", func(t *testing.T) {
		_, err := ResolveDayNums([]string{"Senin", "Lusa"})
		require.Error(t, err)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Contains(t, fe.Message, "Lusa")
	})
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Minggu", WeekdayName(time.Sunday))
	assert.Equal(t, "Senin", WeekdayName(time.Monday))
	assert.Equal(t, "Sabtu", WeekdayName(time.Saturday))
}

func TestNextMatchingDate(t *testing.T) {
	// Kamis 2 Jan 2025
	start := time.Date(2025, 1, 2, 15, 30, 0, 0, time.UTC)
	monWed := []time.Weekday{time.Monday, time.Wednesday}

	t.Run("maju ke hari target terdekat", func(t *testing.T) {
		got := NextMatchingDate(start, monWed, true)
		assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), got) // Senin
	})

	t.Run("same-day hanya bila diizinkan", func(t *testing.T) {
		monday := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)

		same := NextMatchingDate(monday, monWed, true)
		assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), same)

		next := NextMatchingDate(monday, monWed, false)
		assert.Equal(t, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), next) // Rabu
	})

	t.Run("komponen jam dipangkas ke tengah malam", func(t *testing.T) {
		got := NextMatchingDate(start, monWed, true)
		assert.Zero(t, got.Hour())
		assert.Zero(t, got.Minute())
	})
}
