package domain

import "time"

// JST is the fixed reference zone for audit timestamps (UTC+9, no DST).
var JST = time.FixedZone("JST", 9*60*60)

// Now reads the current time in JST and returns it as UTC.
func Now() time.Time {
	return time.Now().In(JST).UTC()
}
