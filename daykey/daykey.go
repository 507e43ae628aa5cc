// Package daykey provides the calendar-day key the aggregator
// deduplicates and aligns activity dates on. The key is an explicit
// (year, month, day) value, deliberately decoupled from the display
// format, so a formatting change can never change aggregation.
package daykey

import (
	"cmp"
	"fmt"
	"time"
)

type Key struct {
	Year  int
	Month time.Month
	Day   int
}

// FromTime truncates an instant to its calendar day, in the
// instant's own location.
func FromTime(t time.Time) Key {
	y, m, d := t.Date()
	return Key{Year: y, Month: m, Day: d}
}

func Compare(a, b Key) int {
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(int(a.Month), int(b.Month)); c != 0 {
		return c
	}
	return cmp.Compare(a.Day, b.Day)
}

func (k Key) Before(other Key) bool {
	return Compare(k, other) < 0
}

// String renders the German dashboard date format, DD.MM.YYYY.
func (k Key) String() string {
	return fmt.Sprintf("%02d.%02d.%04d", k.Day, int(k.Month), k.Year)
}

// Short renders the chart axis tick format, DD.MM.
func (k Key) Short() string {
	return fmt.Sprintf("%02d.%02d.", k.Day, int(k.Month))
}
