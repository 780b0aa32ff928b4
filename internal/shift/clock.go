package shift

import (
	"fmt"
	"time"
)

// FormatClock renders d as zero-padded HH:MM. Seconds are dropped, and
// hours keep counting past 24.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
