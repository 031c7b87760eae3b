package vacation

import "time"

// UpcomingWindowDays is how far ahead a vacation month counts as upcoming.
const UpcomingWindowDays = 60

// Classify reports the status of raw relative to now.
//
// The first day of the vacation month is taken at local midnight in now's
// location. A month equal to now's month is current. A first day strictly
// after now and at most UpcomingWindowDays away is upcoming. A first day
// before now is overdue. Everything else, including unparseable input and
// months further than the window, is unspecified.
func Classify(raw string, now time.Time) Status {
	d, ok := Parse(raw)
	if !ok {
		return StatusUnspecified
	}

	if d.Month == now.Month() && d.Year == now.Year() {
		return StatusCurrent
	}

	first := d.FirstDay(now.Location())
	diffDays := float64(first.Sub(now)) / float64(24*time.Hour)
	if diffDays > 0 && diffDays <= UpcomingWindowDays {
		return StatusUpcoming
	}

	if first.Before(now) {
		return StatusOverdue
	}

	return StatusUnspecified
}
