// Package forecast turns raw provider payloads into the canonical
// DailyObservation. Everything downstream operates in Celsius and km/h; the
// provider's unit mode never leaks past this package.
package forecast

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"weather-mailer/internal/models"
	"weather-mailer/pkg/client"
)

// Units is the unit mode the provider payloads were requested in.
type Units string

const (
	UnitsMetric   Units = "metric"   // Celsius, m/s
	UnitsImperial Units = "imperial" // Fahrenheit, mph
)

const (
	msToKmh  = 3.6
	mphToKmh = 1.609344
)

// Normalize maps the current-conditions and forecast payloads into one
// DailyObservation. Daily min/max come from the current-conditions payload
// (the point-in-time range the provider reports alongside current values).
// Precipitation probability is taken from the first forecast slot; this is
// deliberately "next time-slot" chance rather than a whole-day aggregate,
// and an absent or empty forecast list means probability 0.
func Normalize(current *client.CurrentConditionsResponse, fc *client.ForecastResponse, units Units) (*models.DailyObservation, error) {
	if current == nil || fc == nil {
		return nil, &client.UpstreamError{Op: "normalize", Err: fmt.Errorf("missing payload")}
	}
	if len(current.Weather) == 0 {
		return nil, &client.UpstreamError{Op: "normalize", Err: fmt.Errorf("current conditions payload has no weather entry")}
	}

	// Condition comes from the current payload so the displayed "now"
	// temperature and the condition text stay self-consistent, even when a
	// forecast-level weather entry exists.
	primary := current.Weather[0]

	pop := 0
	var slotHumidity *int
	if len(fc.List) > 0 {
		first := fc.List[0]
		pop = models.RoundTemp(first.Pop * 100)
		h := first.Main.Humidity
		slotHumidity = &h
	}

	obs := &models.DailyObservation{
		CurrentTemp:          toCelsius(current.Main.Temp, units),
		FeelsLike:            toCelsius(current.Main.FeelsLike, units),
		TempHigh:             models.RoundTemp(toCelsius(current.Main.TempMax, units)),
		TempLow:              models.RoundTemp(toCelsius(current.Main.TempMin, units)),
		ConditionMain:        primary.Main,
		ConditionDescription: capitalize(primary.Description),
		PrecipProbability:    pop,
		Humidity:             fallbackHumidity(slotHumidity, current.Main.Humidity),
		WindSpeedKmh:         models.RoundTemp(toKmh(current.Wind.Speed, units)),
	}

	return obs, nil
}

// fallbackHumidity prefers the nearest forecast slot's reading and falls
// back to the current-conditions reading when no slot exists.
func fallbackHumidity(slot *int, current int) int {
	if slot != nil {
		return *slot
	}
	return current
}

func toCelsius(v float64, units Units) float64 {
	if units == UnitsImperial {
		return (v - 32) * 5 / 9
	}
	return v
}

func toKmh(speed float64, units Units) float64 {
	if units == UnitsImperial {
		return speed * mphToKmh
	}
	return speed * msToKmh
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
