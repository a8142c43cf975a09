// Package recommend derives clothing and gear advice from a normalized
// observation. The engine is a pure function: same observation in, same
// ordered list out, and it never fails — odd inputs just produce fewer or
// more lines.
package recommend

import (
	"weather-mailer/internal/conditions"
	"weather-mailer/internal/models"
)

// Thresholds are in canonical units (°C, km/h).
const (
	bandLight  = 24
	bandLayers = 18
	bandMedium = 10
	bandWarm   = 4

	scarfBandLow  = 10
	scarfBandHigh = 14
	glovesMax     = 7
	frostbiteMax  = 0

	coldMorningBelow = 4

	popUmbrella = 50
	popConsider = 30

	windReminderKmh = 20
	volatilitySpan  = 20
)

// Build evaluates the rule chain in fixed order. Rules are independent
// unless noted; only the base band and the precipitation tier are
// first-match-wins within themselves.
func Build(obs *models.DailyObservation) models.RecommendationList {
	recs := models.RecommendationList{}
	class := conditions.Classify(obs.ConditionMain)

	// 1. Base layer band on the daily high. Exactly one line.
	switch {
	case obs.TempHigh >= bandLight:
		recs = append(recs, "Light clothing (t-shirt, shorts/skirt)")
	case obs.TempHigh >= bandLayers:
		recs = append(recs, "Light layers (t-shirt with light jacket)")
	case obs.TempHigh >= bandMedium:
		recs = append(recs, "Medium layers (long sleeves, sweater or light jacket)")
	case obs.TempHigh >= bandWarm:
		recs = append(recs, "Warm layers (sweater, jacket)")
	default:
		recs = append(recs, "Heavy winter clothing (coat, warm layers)")
	}

	// 2. Garment reminders. Each fires on its own, alongside the band line.
	if obs.TempHigh >= scarfBandLow && obs.TempHigh <= scarfBandHigh {
		recs = append(recs, "A light scarf takes the edge off this range")
	}
	if obs.TempHigh <= glovesMax {
		recs = append(recs, "Gloves recommended")
	}
	if obs.TempHigh <= frostbiteMax {
		recs = append(recs, "Cover exposed skin; thermal underlayers advised")
	}

	// 3. Cold-morning buffer, independent of the daytime high.
	if obs.TempLow < coldMorningBelow {
		recs = append(recs, "Bring extra layers for cold mornings/evenings")
	}

	// 4. Precipitation tier. A rain-family condition overrides the
	// probability thresholds entirely.
	if class.Has(conditions.Rain) {
		recs = append(recs,
			"Bring an umbrella",
			"Waterproof jacket recommended",
			"Waterproof shoes or boots recommended")
	} else if obs.PrecipProbability > popUmbrella {
		recs = append(recs, "Bring an umbrella or rain jacket")
	} else if obs.PrecipProbability > popConsider {
		recs = append(recs, "Consider bringing an umbrella")
	}

	// 5. Snow gear co-fires with rain gear on mixed days.
	if class.Has(conditions.Snow) {
		recs = append(recs, "Winter boots and warm accessories (hat, gloves)")
	}

	// 6.
	if class.Has(conditions.Clear) {
		recs = append(recs, "Don't forget sunscreen")
	}

	// 7. Windchill headwear only in the warm-layers band, where no earlier
	// rule has mentioned headwear yet.
	if obs.WindSpeedKmh > windReminderKmh && obs.TempHigh >= bandWarm && obs.TempHigh < bandMedium {
		recs = append(recs, "Wind will bite; add a hat or hood")
	}

	// 8. Always evaluated last.
	if obs.TempHigh-obs.TempLow > volatilitySpan {
		recs = append(recs, "Temperature varies significantly - dress in layers")
	}

	return recs
}
