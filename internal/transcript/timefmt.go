package transcript

import (
	"fmt"
	"math"
)

// FormatShort renders seconds as "M:SS" with no leading zero on the minutes.
// Non-finite input maps to "0:00".
func FormatShort(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "0:00"
	}
	m := int(math.Floor(seconds / 60))
	s := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatClock renders seconds as "H:MM:SS" once the value reaches an hour,
// otherwise "M:SS". Used for full transcript displays.
func FormatClock(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "0:00"
	}
	if seconds < 3600 {
		return FormatShort(seconds)
	}
	h := int(math.Floor(seconds / 3600))
	m := int(math.Floor(math.Mod(seconds, 3600) / 60))
	s := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// FormatDuration renders the span between start and end as "Xm Ys", or just
// "Ys" when it is under a minute.
func FormatDuration(start, end float64) string {
	total := int(math.Floor(end - start))
	if total < 0 {
		total = 0
	}
	if m := total / 60; m > 0 {
		return fmt.Sprintf("%dm %ds", m, total%60)
	}
	return fmt.Sprintf("%ds", total)
}
