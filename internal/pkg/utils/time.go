package utils

import (
	"citamed-service/internal/pkg/constvars"
	"fmt"
	"time"
)

// ParseBareDate parses a YYYY-MM-DD calendar date as UTC midnight. The
// backend's timezone convention is undocumented, so the conversion is pinned
// to UTC instead of inheriting the process timezone.
func ParseBareDate(date string) (time.Time, error) {
	return time.ParseInLocation(constvars.BareDateLayout, date, time.UTC)
}

// FormatDateForBackend expands a bare calendar date into the backend's
// timestamp format with an explicit zero clock portion.
func FormatDateForBackend(date string) (string, error) {
	parsed, err := ParseBareDate(date)
	if err != nil {
		return "", err
	}
	return parsed.Format(constvars.BackendDateTimeLayout), nil
}

// IsDateInPast reports whether the date's UTC-midnight instant is strictly
// earlier than now.
func IsDateInPast(date string, now time.Time) (bool, error) {
	parsed, err := ParseBareDate(date)
	if err != nil {
		return false, err
	}
	return parsed.Before(now), nil
}

// GenerateTimeSlots returns the bookable slot grid: every half hour from 9:00
// through 17:00, without a 17:30 slot. Hours are not zero padded, matching the
// schedule service's time strings.
func GenerateTimeSlots() []string {
	slots := make([]string, 0, 2*(constvars.SlotGridEndHour-constvars.SlotGridStartHour)+1)
	for hour := constvars.SlotGridStartHour; hour <= constvars.SlotGridEndHour; hour++ {
		slots = append(slots, fmt.Sprintf("%d:00", hour))
		if hour != constvars.SlotGridEndHour {
			slots = append(slots, fmt.Sprintf("%d:30", hour))
		}
	}
	return slots
}

// CanonicalTimeSlot normalizes a clock time to the schedule service's
// non-padded form: "09:00" and "9:00" name the same slot.
func CanonicalTimeSlot(t string) (string, error) {
	parsed, err := time.Parse(constvars.OccupiedTimeSlotLayout, t)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d:%02d", parsed.Hour(), parsed.Minute()), nil
}

// ContainsTime reports whether a time is present in an occupied set. Both
// sides are compared canonically, so a zero-padded representation still
// matches its grid form. Unparseable entries fall back to literal comparison.
func ContainsTime(times []string, t string) bool {
	target, err := CanonicalTimeSlot(t)
	if err != nil {
		target = t
	}
	for _, each := range times {
		member, err := CanonicalTimeSlot(each)
		if err != nil {
			member = each
		}
		if member == target {
			return true
		}
	}
	return false
}
