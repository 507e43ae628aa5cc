package daykey_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fury1991/my-sport-challenge/daykey"
)

func TestFromTime(t *testing.T) {
	morning := time.Date(2024, 9, 6, 7, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 9, 6, 21, 15, 0, 0, time.UTC)

	assert.Equal(t, daykey.FromTime(morning), daykey.FromTime(evening),
		"two instants on the same calendar day map to the same key")

	nextDay := time.Date(2024, 9, 7, 0, 0, 0, 0, time.UTC)
	assert.NotEqual(t, daykey.FromTime(morning), daykey.FromTime(nextDay))
}

func TestCompare(t *testing.T) {
	a := daykey.Key{Year: 2024, Month: time.September, Day: 6}
	b := daykey.Key{Year: 2024, Month: time.September, Day: 10}
	c := daykey.Key{Year: 2025, Month: time.January, Day: 1}

	assert.Negative(t, daykey.Compare(a, b))
	assert.Positive(t, daykey.Compare(b, a))
	assert.Zero(t, daykey.Compare(a, a))
	assert.True(t, b.Before(c))
}

func TestFormat(t *testing.T) {
	k := daykey.Key{Year: 2024, Month: time.September, Day: 6}
	assert.Equal(t, "06.09.2024", k.String())
	assert.Equal(t, "06.09.", k.Short())
}
