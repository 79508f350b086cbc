package i18n

import "time"

// Relative renders a message timestamp as "just now" / "5m ago" / "3h ago" /
// "2d ago" in the table's own phrasing.
func (t *TimeStrings) Relative(createdAt, now time.Time) string {
	mins := int(now.Sub(createdAt).Minutes())
	switch {
	case mins < 1:
		return t.JustNow
	case mins < 60:
		return t.MinutesAgo(mins)
	case mins < 24*60:
		return t.HoursAgo(mins / 60)
	default:
		return t.DaysAgo(mins / (24 * 60))
	}
}
