package ddbstore

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fury1991/my-sport-challenge/challenge"
	"github.com/fury1991/my-sport-challenge/srvcerror"
)

func TestDecodeActivity(t *testing.T) {
	date := time.Date(2024, 9, 6, 12, 0, 0, 0, time.UTC)

	t.Run("Valid row", func(t *testing.T) {
		activity, err := decodeActivity("a1", activityRow{
			Sk:       "activity#a1#000001",
			Date:     date,
			Kind:     "laufen",
			Distance: 5,
		})
		require.NoError(t, err)

		assert.Equal(t, date, activity.Date)
		assert.True(t, activity.Kind.IsRun())
		assert.Equal(t, 5.0, activity.Distance)
	})

	t.Run("Unknown kind is decoded, not rejected", func(t *testing.T) {
		activity, err := decodeActivity("a1", activityRow{
			Sk:       "activity#a1#000002",
			Date:     date,
			Kind:     "Schwimmen",
			Distance: 2,
		})
		require.NoError(t, err)

		assert.True(t, activity.Kind.IsUnknown())
		assert.Equal(t, "Schwimmen", activity.Kind.Label())
	})

	t.Run("Negative distance is rejected at the boundary", func(t *testing.T) {
		_, err := decodeActivity("a1", activityRow{
			Sk:       "activity#a1#000003",
			Date:     date,
			Kind:     "laufen",
			Distance: -3,
		})
		require.Error(t, err)

		srvcErr := &srvcerror.Error{}
		require.ErrorAs(t, err, &srvcErr)
		assert.Equal(t, challenge.ErrCodeInvalidDistance, srvcErr.Code())
		assert.ErrorContains(t, srvcErr.Debug(), "athlete a1")
		assert.ErrorContains(t, srvcErr.Debug(), "activity#a1#000003")
	})

	t.Run("Non-finite distance is rejected at the boundary", func(t *testing.T) {
		for _, distance := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := decodeActivity("a1", activityRow{
				Sk:       "activity#a1#000004",
				Date:     date,
				Kind:     "fahrrad",
				Distance: distance,
			})
			require.Error(t, err)

			srvcErr := &srvcerror.Error{}
			require.ErrorAs(t, err, &srvcErr)
			assert.Equal(t, challenge.ErrCodeInvalidDistance, srvcErr.Code())
		}
	})
}
