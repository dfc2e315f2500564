package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate принимает дату в формате YYYY-MM-DD либо полный RFC3339.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("неверный формат даты: %q", value)
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func FormatDateTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
