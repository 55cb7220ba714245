package session

import "fmt"

// Rest rule: MinRestMinutes of rest at least, plus RestPerBlockMinutes for
// every full WorkBlockMinutes worked.
const (
	MinRestMinutes      = 5
	RestPerBlockMinutes = 5
	WorkBlockMinutes    = 25
)

// ComputeRestSeconds returns the rest earned by workSeconds of work.
// Partial work blocks earn nothing beyond the minimum.
func ComputeRestSeconds(workSeconds int) int {
	if workSeconds < 0 {
		workSeconds = 0
	}
	workMinutes := workSeconds / 60
	restMinutes := (workMinutes / WorkBlockMinutes) * RestPerBlockMinutes
	if restMinutes < MinRestMinutes {
		restMinutes = MinRestMinutes
	}
	return restMinutes * 60
}

// FormatClock renders seconds as HH:MM:SS. Hours are not wrapped.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

func HoursText(hours int) string {
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
