package brackets

import "time"

// ScheduleDate spreads matches two days apart from the start date (or from
// tomorrow when there is none), kicking off between 14:00 and 19:00.
func ScheduleDate(start *time.Time, now time.Time, matchNumber int) time.Time {
	base := now.AddDate(0, 0, 1)
	if start != nil && !start.IsZero() {
		base = *start
	}
	day := base.AddDate(0, 0, (matchNumber-1)*2)
	return time.Date(day.Year(), day.Month(), day.Day(), 14+matchNumber%6, 0, 0, 0, day.Location())
}
