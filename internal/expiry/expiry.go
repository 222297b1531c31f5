package expiry

import (
	"math"
	"time"
)

const Day = 24 * time.Hour

func Calculate(now time.Time, days int) time.Time {
	return now.Add(time.Duration(days) * Day)
}

func IsExpired(now, expiresAt time.Time) bool {
	return expiresAt.Before(now)
}

// DaysUntil rounds up, so anything left of a day counts as one.
// Past expiry dates yield zero or negative values.
func DaysUntil(now, expiresAt time.Time) int {
	return int(math.Ceil(float64(expiresAt.Sub(now)) / float64(Day)))
}
