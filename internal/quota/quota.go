package quota

import "time"

// DailyLimit is the number of generation attempts a user gets per calendar day.
const DailyLimit = 2

// Counter tracks a user's generation attempts for the current calendar day.
// The reset happens lazily when the counter is next inspected, there is no
// scheduled job.
type Counter struct {
	Used    int
	ResetAt time.Time
}

// Rollover zeroes the counter when now falls on a different calendar day
// (year, month or day differs, server local time) than ResetAt. Reports
// whether a reset happened.
func (c *Counter) Rollover(now time.Time) bool {
	ry, rm, rd := c.ResetAt.Date()
	ny, nm, nd := now.Date()

	if ry == ny && rm == nm && rd == nd {
		return false
	}

	c.Used = 0
	c.ResetAt = now

	return true
}

// Exceeded reports whether the counter has reached the daily limit.
// Callers must Rollover first so a stale day is never evaluated.
func (c Counter) Exceeded() bool {
	return c.Used >= DailyLimit
}

// Remaining returns how many attempts are left for the day after rollover.
func (c Counter) Remaining(now time.Time) int {
	c.Rollover(now)

	left := DailyLimit - c.Used
	if left < 0 {
		return 0
	}

	return left
}
