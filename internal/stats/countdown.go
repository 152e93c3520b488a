package stats

import (
	"math"
	"time"
)

// DaysLeft counts whole days from now until midnight of the wedding
// date, rounded up and floored at 0 so a past date reads as 0 rather
// than a negative countdown. An unparseable date also reads as 0.
func DaysLeft(weddingDate string, now time.Time) int {
	wedding, err := time.ParseInLocation("2006-01-02", weddingDate, now.Location())
	if err != nil {
		return 0
	}
	days := int(math.Ceil(wedding.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
