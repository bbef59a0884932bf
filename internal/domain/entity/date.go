package entity

import (
	"fmt"
	"time"
)

// DateLayout formato de fecha (sin hora) usado en toda la API.
const DateLayout = "2006-01-02"

// ParseDate interpreta "YYYY-MM-DD" como medianoche UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate formatea una fecha como "YYYY-MM-DD"; la fecha cero se devuelve vacía.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// DateOf trunca t al día (UTC).
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
