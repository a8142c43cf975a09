package notify

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-mailer/internal/assets"
	"weather-mailer/internal/models"
)

func sampleObservation() *models.DailyObservation {
	return &models.DailyObservation{
		CurrentTemp:          11.4,
		FeelsLike:            9.8,
		TempHigh:             14,
		TempLow:              7,
		ConditionMain:        "Rain",
		ConditionDescription: "Light rain",
		PrecipProbability:    42,
		Humidity:             80,
		WindSpeedKmh:         18,
	}
}

func sampleRecommendations() models.RecommendationList {
	return models.RecommendationList{
		"Medium layers (long sleeves, sweater or light jacket)",
		"Bring an umbrella",
	}
}

var renderedAt = time.Date(2025, time.March, 14, 7, 5, 0, 0, time.UTC)

func TestRenderIsDeterministic(t *testing.T) {
	obs := sampleObservation()
	recs := sampleRecommendations()
	sel := assets.Select(obs.ConditionDescription, obs.WindSpeedKmh)

	first := Render(obs, recs, sel, renderedAt)
	second := Render(obs, recs, sel, renderedAt)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, first.Subject, second.Subject)
}

func TestRenderSubject(t *testing.T) {
	msg := Render(sampleObservation(), sampleRecommendations(), assets.Selection{Primary: assets.IconRain}, renderedAt)
	assert.Equal(t, "Your Daily Weather & Outfit Guide - March 14, 2025", msg.Subject)
}

func TestTextBodyLayout(t *testing.T) {
	msg := Render(sampleObservation(), sampleRecommendations(), assets.Selection{Primary: assets.IconRain}, renderedAt)

	assert.Contains(t, msg.Text, "WEATHER SUMMARY")
	assert.Contains(t, msg.Text, "Current: 11°C (feels like 10°C)")
	assert.Contains(t, msg.Text, "High: 14°C")
	assert.Contains(t, msg.Text, "Low: 7°C")
	assert.Contains(t, msg.Text, "Conditions: Light rain")
	assert.Contains(t, msg.Text, "Precipitation chance: 42%")
	assert.Contains(t, msg.Text, "Humidity: 80%")
	assert.Contains(t, msg.Text, "Wind speed: 18 km/h")
	assert.Contains(t, msg.Text, "1. Medium layers (long sleeves, sweater or light jacket)")
	assert.Contains(t, msg.Text, "2. Bring an umbrella")
	assert.Contains(t, msg.Text, "Generated on 2025-03-14 at 7:05 AM")
}

func TestBodiesPresentIdenticalValues(t *testing.T) {
	msg := Render(sampleObservation(), sampleRecommendations(), assets.Selection{Primary: assets.IconRain}, renderedAt)

	for _, value := range []string{"14°C", "7°C", "42%", "80%", "18 km/h", "Light rain"} {
		assert.Contains(t, msg.Text, value)
		assert.Contains(t, msg.HTML, value)
	}

	for i, rec := range sampleRecommendations() {
		assert.Contains(t, msg.Text, fmt.Sprintf("%d. %s", i+1, rec))
		assert.Contains(t, msg.HTML, "<li>"+rec+"</li>")
	}
}

func TestHTMLReferencesPrimaryIconByContentID(t *testing.T) {
	msg := Render(sampleObservation(), sampleRecommendations(), assets.Selection{Primary: assets.IconRain}, renderedAt)

	assert.Contains(t, msg.HTML, `src="cid:`+PrimaryIconCID+`"`)
	assert.NotContains(t, msg.HTML, WindIconCID)
}

func TestHTMLIncludesWindIconOnlyWhenSelected(t *testing.T) {
	obs := sampleObservation()
	obs.WindSpeedKmh = 35
	sel := assets.Select(obs.ConditionDescription, obs.WindSpeedKmh)
	require.NotNil(t, sel.Wind)

	msg := Render(obs, sampleRecommendations(), sel, renderedAt)
	assert.Contains(t, msg.HTML, `src="cid:`+WindIconCID+`"`)
	assert.Equal(t, 2, strings.Count(msg.HTML, "<img "))
}
