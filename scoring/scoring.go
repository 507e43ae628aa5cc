package scoring

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the closed set of activity kinds the tariff knows about.
// Unknown kinds keep their original store label for display.
type Kind struct {
	tag   kindTag
	label string
}

type kindTag int

const (
	tagUnknown kindTag = iota
	tagRun
	tagBike
)

var (
	Run  = Kind{tag: tagRun, label: "Laufen"}
	Bike = Kind{tag: tagBike, label: "Fahrrad"}
)

// Unknown wraps an unrecognized store label. Unknown kinds score zero
// and render with a fallback glyph; they are never an error.
func Unknown(label string) Kind {
	return Kind{tag: tagUnknown, label: label}
}

// ParseKind maps a raw store label to a Kind. Matching is
// case-insensitive and accepts the German labels the store uses as
// well as their English equivalents.
func ParseKind(label string) Kind {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "laufen", "run", "running":
		return Run
	case "fahrrad", "bike", "cycling":
		return Bike
	default:
		return Unknown(label)
	}
}

func (k Kind) IsRun() bool     { return k.tag == tagRun }
func (k Kind) IsBike() bool    { return k.tag == tagBike }
func (k Kind) IsUnknown() bool { return k.tag == tagUnknown }

// Label returns the raw label the kind was parsed from (for known
// kinds, the canonical German label).
func (k Kind) Label() string {
	return k.label
}

// Score applies the sport tariff to a distance in kilometers:
// running pays 3 points per km, cycling 1 point per km, everything
// else 0. The result is rounded at two decimals, half away from zero.
func Score(kind Kind, distanceKm float64) float64 {
	var points float64
	switch kind.tag {
	case tagRun:
		points = distanceKm * 3
	case tagBike:
		points = distanceKm * 1
	default:
		points = 0
	}
	return round2(points)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidateDistance rejects distances the tariff is undefined for.
// Called at the store decode boundary; Score itself stays total.
func ValidateDistance(distanceKm float64) error {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return fmt.Errorf("distance is not finite")
	}
	if distanceKm < 0 {
		return fmt.Errorf("distance is negative: %f", distanceKm)
	}
	return nil
}

// FormatPoints renders points with two decimals. An exact zero
// renders as a bare "0", matching the dashboard's historical display.
func FormatPoints(points float64) string {
	if points == 0 {
		return "0"
	}
	return strconv.FormatFloat(points, 'f', 2, 64)
}

// Icon returns the glyph the activity feed shows next to an activity.
func Icon(kind Kind) string {
	switch kind.tag {
	case tagRun:
		return "🏃"
	case tagBike:
		return "🚴"
	default:
		return "❓"
	}
}

// DisplayName returns the German display label for a kind.
func DisplayName(kind Kind) string {
	switch kind.tag {
	case tagRun:
		return "Laufen"
	case tagBike:
		return "Radeln"
	default:
		return "Unbekannt"
	}
}
