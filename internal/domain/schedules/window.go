package schedules

import "time"

// windowDays is how far either side of the anchor date a baseball schedule query reaches.
const windowDays = 10

// Window is an inclusive date range for a schedule query.
type Window struct {
	Start time.Time
	End   time.Time
}

// Season holds the boundaries the provider reports for one season.
type Season struct {
	ID    string
	Start time.Time
	End   time.Time
}

// SelectWindow picks the schedule range to show.
//
//   - current season over and next season started: today ± 10 days
//   - current season over, next not started: the last 10 days of the current season
//   - current season still running: today ± 10 days
//
// A zero nextStart means the provider does not know the next season yet and counts as not started.
func SelectWindow(now, currentEnd, nextStart time.Time) Window {
	today := truncateDay(now)
	around := Window{
		Start: today.AddDate(0, 0, -windowDays),
		End:   today.AddDate(0, 0, windowDays),
	}

	if now.Before(currentEnd) {
		return around
	}
	if !nextStart.IsZero() && !now.Before(nextStart) {
		return around
	}
	end := truncateDay(currentEnd)
	return Window{
		Start: end.AddDate(0, 0, -windowDays),
		End:   end,
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
