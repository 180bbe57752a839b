// file: internals/features/tutoring/jadwal/service/day_resolver.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Nama hari diterima case-insensitive, Indonesia maupun Inggris.
var dayNameToNum = map[string]time.Weekday{
	"minggu": time.Sunday, "senin": time.Monday, "selasa": time.Tuesday,
	"rabu": time.Wednesday, "kamis": time.Thursday, "jumat": time.Friday,
	"sabtu": time.Saturday,

	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
	"wednesday": time.Wednesday, "thursday": time.Thursday,
	"friday": time.Friday, "saturday": time.Saturday,
}

// weekdayNames nama hari yang DISIMPAN selalu versi Indonesia, diturunkan
// dari tanggal hasil resolve (0=Minggu … 6=Sabtu).
var weekdayNames = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// WeekdayName mengembalikan nama hari Indonesia untuk sebuah weekday.
func WeekdayName(w time.Weekday) string { return weekdayNames[int(w)] }

// ResolveDayNums memetakan daftar nama hari order ke time.Weekday.
// Daftar kosong atau nama tak dikenal = ValidationError.
func ResolveDayNums(days []string) ([]time.Weekday, error) {
	if len(days) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Kolom meetingDay kosong / tidak valid")
	}
	nums := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		num, ok := dayNameToNum[strings.ToLower(strings.TrimSpace(d))]
		if !ok {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Hari tidak valid: "+d)
		}
		nums = append(nums, num)
	}
	return nums, nil
}

// NextMatchingDate mencari tanggal paling awal ≥ start (atau > start bila
// allowSameDay false) yang jatuh pada salah satu weekday target.
// Murni, deterministik, tanpa I/O.
func NextMatchingDate(start time.Time, dayNums []time.Weekday, allowSameDay bool) time.Time {
	d := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	if allowSameDay && containsWeekday(dayNums, d.Weekday()) {
		return d
	}
	for {
		d = d.AddDate(0, 0, 1)
		if containsWeekday(dayNums, d.Weekday()) {
			return d
		}
	}
}

func containsWeekday(nums []time.Weekday, w time.Weekday) bool {
	for _, n := range nums {
		if n == w {
			return true
		}
	}
	return false
}
