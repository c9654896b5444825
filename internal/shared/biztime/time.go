// Package biztime keeps storage in UTC and renders dates in the business
// timezone.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is used when Init receives an empty name.
const DefaultTimezone = "America/Sao_Paulo"

// DisplayLayout is the day/month/year layout shown to users.
const DisplayLayout = "02/01/2006 15:04"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init loads the business timezone once.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone, initializing the default on
// first use.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to load default timezone: %v", err))
		}
	}
	return bizLocation
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToBizTimezone converts t for display.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}

func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// ParseDateInBizTimezone parses YYYY-MM-DD as business midnight and
// returns the UTC instant.
func ParseDateInBizTimezone(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}
