// file: internals/features/calendar/dto/common.go
package dto

import (
	"strings"
	"time"
)

/* =========================================================
   Shared helpers (date & clock)
   ========================================================= */

const dateKeyLayout = "2006-01-02"

// ParseDateKey: "YYYY-MM-DD" → time.Time (UTC midnight).
// Tanggal adalah identifier opaque; tidak pernah digeser timezone.
func ParseDateKey(s string) (time.Time, bool) {
	t, err := time.Parse(dateKeyLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

// DateKey: time.Time → "YYYY-MM-DD".
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// FormatClock: render jam sebagai "HH:MM".
// Detik dari storage ("HH:MM:SS") dipotong, bukan dibulatkan.
func FormatClock(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 5 {
		return s[:5]
	}
	return s
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
