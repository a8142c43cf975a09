package models

import "math"

// DailyObservation is the normalized snapshot of today's weather that the
// recommendation engine and renderer consume. Values are always in canonical
// units: Celsius for temperatures, km/h for wind speed. It is built once per
// invocation and never mutated afterwards.
type DailyObservation struct {
	CurrentTemp          float64 // °C, instantaneous
	FeelsLike            float64 // °C, instantaneous
	TempHigh             int     // °C, daily max, rounded
	TempLow              int     // °C, daily min, rounded
	ConditionMain        string  // provider category, e.g. "Rain"
	ConditionDescription string  // human-readable, capitalized for display
	PrecipProbability    int     // 0-100
	Humidity             int     // 0-100
	WindSpeedKmh         int     // km/h, rounded
}

// RecommendationList is an ordered sequence of advice lines. Order mirrors
// the engine's evaluation order and duplicates are permitted.
type RecommendationList []string

// RoundTemp is the single rounding rule applied to every displayed numeric
// field: round half away from zero.
func RoundTemp(v float64) int {
	return int(math.Round(v))
}
