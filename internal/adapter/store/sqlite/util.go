package sqlite

import "time"

// unixTime converts a stored epoch-seconds value back into a time.Time.
func unixTime(ts int64) time.Time {
	return time.Unix(ts, 0).UTC()
}
