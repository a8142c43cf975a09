// Package assets picks the illustrative icons for a notification and loads
// their bytes from disk. Selection is pure; loading is the only part that
// can fail, and that failure is recoverable.
package assets

import (
	"weather-mailer/internal/conditions"
)

// IconID names an icon file (without extension) in the icon directory.
type IconID string

const (
	IconThunderstorm IconID = "thunderstorm"
	IconSnow         IconID = "snow"
	IconRain         IconID = "rain"
	IconCloudy       IconID = "cloudy"
	IconPartlyCloudy IconID = "partly-cloudy"
	IconSunny        IconID = "sunny"
	IconWindy        IconID = "windy"
)

// windIconKmh is the strict threshold for the secondary icon: a reading at
// the boundary selects nothing, one unit above does.
const windIconKmh = 30

// Selection is the result of icon selection: always exactly one primary
// icon, plus a wind icon only on blustery days.
type Selection struct {
	Primary IconID
	Wind    *IconID
}

// Select maps the condition description to the primary icon and the wind
// speed to the optional secondary one. The two choices are independent.
func Select(conditionDescription string, windSpeedKmh int) Selection {
	sel := Selection{Primary: PrimaryIcon(conditionDescription)}
	if w := WindIcon(windSpeedKmh); w != "" {
		sel.Wind = &w
	}
	return sel
}

// PrimaryIcon follows the classifier's priority order; an unrecognized
// condition falls back to the partly-cloudy icon.
func PrimaryIcon(conditionDescription string) IconID {
	switch conditions.Classify(conditionDescription).Primary {
	case conditions.Thunderstorm:
		return IconThunderstorm
	case conditions.Snow:
		return IconSnow
	case conditions.Rain:
		return IconRain
	case conditions.CloudFull:
		return IconCloudy
	case conditions.CloudPartial:
		return IconPartlyCloudy
	case conditions.Clear:
		return IconSunny
	default:
		return IconPartlyCloudy
	}
}

// WindIcon returns the secondary icon id, or "" below or at the threshold.
func WindIcon(windSpeedKmh int) IconID {
	if windSpeedKmh > windIconKmh {
		return IconWindy
	}
	return ""
}
