package doctor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Calendar generates candidate booking dates and time-of-day slots. Its
// outputs are pure functions of the reference time and the configured
// constants; nothing is cached between calls.
type Calendar struct {
	HorizonDays  int
	WorkdayStart string
	WorkdayEnd   string
	SlotMinutes  int
}

// CandidateDates returns the ordered booking horizon: tomorrow through
// now+HorizonDays, one entry per day, truncated to midnight local time.
func (cal Calendar) CandidateDates(now time.Time) []time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dates := make([]time.Time, 0, cal.HorizonDays)
	for i := 1; i <= cal.HorizonDays; i++ {
		dates = append(dates, day.AddDate(0, 0, i))
	}
	return dates
}

// DaySlots returns the ordered HH:MM start times for a single day: every
// SlotMinutes step within [WorkdayStart, WorkdayEnd).
func (cal Calendar) DaySlots() []string {
	start, err := ParseClock(cal.WorkdayStart)
	if err != nil {
		return nil
	}
	end, err := ParseClock(cal.WorkdayEnd)
	if err != nil || cal.SlotMinutes <= 0 {
		return nil
	}

	var slots []string
	for m := start; m < end; m += cal.SlotMinutes {
		slots = append(slots, FormatClock(m))
	}
	return slots
}

// BookableTimes intersects a doctor's weekly availability templates with a
// concrete date. Only active slots whose day-of-week matches count; each
// contributes start times at its own duration granularity within
// [StartTime, EndTime). Overlapping templates are unioned and
// deduplicated, and the result is sorted. A doctor with no matching slot
// yields an empty set, never an error.
func BookableTimes(slots []AvailabilitySlot, date time.Time) []string {
	weekday := int(date.Weekday())
	seen := make(map[string]struct{})

	var times []string
	for _, slot := range slots {
		if !slot.IsActive || slot.DayOfWeek != weekday {
			continue
		}
		start, err := ParseClock(slot.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseClock(slot.EndTime)
		if err != nil || slot.SlotDuration <= 0 {
			continue
		}
		for m := start; m < end; m += slot.SlotDuration {
			clock := FormatClock(m)
			if _, dup := seen[clock]; dup {
				continue
			}
			seen[clock] = struct{}{}
			times = append(times, clock)
		}
	}

	sort.Strings(times)
	return times
}

// ParseClock converts an HH:MM string to minutes since midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("clock time %q out of range", clock)
	}
	return hours*60 + mins, nil
}

// FormatClock converts minutes since midnight to an HH:MM string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
