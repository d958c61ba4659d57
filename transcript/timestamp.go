package transcript

import (
	"fmt"
	"math"

	"github.com/kbukum/ytdiarize/util"
)

// FormatTimestamp formats a value in seconds as zero-padded HH:MM:SS.mmm.
// Missing, non-numeric, or negative input formats as 00:00:00.000; the
// function is total over its input domain. Rounds to the nearest
// millisecond rather than truncating.
func FormatTimestamp(seconds any) string {
	f, ok := util.Float(seconds)
	if !ok || f < 0 {
		f = 0
	}
	totalMS := int64(math.Round(f * 1000))
	if totalMS < 0 {
		totalMS = 0
	}
	hours := totalMS / (3600 * 1000)
	rem := totalMS % (3600 * 1000)
	minutes := rem / (60 * 1000)
	rem %= 60 * 1000
	secs := rem / 1000
	ms := rem % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, ms)
}
