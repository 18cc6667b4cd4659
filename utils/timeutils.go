package utils

import (
	"regexp"
	"strconv"
)

// DefaultTZOffset is the local UTC offset applied to run-id timestamps.
const DefaultTZOffset = "+10:00"

var runIDStamp = regexp.MustCompile(`(\d{8})_(\d{4})`)

// RunIDTimestamp extracts a YYYYMMDD_HHMM stamp from a run id and returns it as
// "YYYY-MM-DDTHH:MM:00<offset>". It returns "" when the run id carries no stamp.
// Digits are copied as-is; no calendar validation is done.
func RunIDTimestamp(runID, offset string) string {
	m := runIDStamp.FindStringSubmatch(runID)
	if m == nil {
		return ""
	}
	if offset == "" {
		offset = DefaultTZOffset
	}
	ymd, hm := m[1], m[2]
	return ymd[0:4] + "-" + ymd[4:6] + "-" + ymd[6:8] + "T" + hm[0:2] + ":" + hm[2:4] + ":00" + offset
}

// Round1 rounds to one decimal place. Ties are decided on the exact decimal
// value of v and go to the even digit, so 6.25 becomes 6.2.
func Round1(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}

// Percent returns 100*part/whole rounded to one decimal place, or 0 when whole is 0.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return Round1(100 * float64(part) / float64(whole))
}
