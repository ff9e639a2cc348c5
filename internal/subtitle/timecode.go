package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
)

var srtTimestampRegex = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`)

// converts an SRT timestamp (HH:MM:SS,mmm) into an ASS timestamp
// (H:MM:SS.CC). Milliseconds round half-up to centiseconds and a
// result of 100 carries into the seconds field.
func ToASSTimestamp(t string) (string, error) {
	matches := srtTimestampRegex.FindStringSubmatch(t)
	if len(matches) != 5 {
		return "", fmt.Errorf("invalid SRT timestamp %q", t)
	}

	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	seconds, _ := strconv.Atoi(matches[3])
	millis, _ := strconv.Atoi(matches[4])

	centis := (millis + 5) / 10
	if centis == 100 {
		centis = 0
		seconds++
		if seconds == 60 {
			seconds = 0
			minutes++
			if minutes == 60 {
				minutes = 0
				hours++
			}
		}
	}

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis), nil
}

// ASS timestamp for t, or t unchanged when it is not a valid SRT timestamp
func formatASSTime(t string) string {
	ts, err := ToASSTimestamp(t)
	if err != nil {
		return t
	}
	return ts
}
