package utils

import "fmt"

// WorkdayBaselineMinutes is the reference day length used when expressing a
// captured session as a percentage of a full workday.
const WorkdayBaselineMinutes = 480

// FormatHMS renders a second count as "HH:MM:SS". Negative input is clamped
// to zero, matching how the legacy snapshots rendered bad session data.
func FormatHMS(totalSeconds int64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// WorkdayPercentage expresses seconds worked against the baseline workday,
// rounded to two decimals. Capped at 100.
func WorkdayPercentage(totalSeconds int64) float64 {
	if totalSeconds <= 0 {
		return 0
	}
	pct := float64(totalSeconds) / float64(WorkdayBaselineMinutes*60) * 100
	if pct > 100 {
		pct = 100
	}
	return float64(int(pct*100+0.5)) / 100
}
