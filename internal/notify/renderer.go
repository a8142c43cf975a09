// Package notify renders the notification bodies. Rendering is deterministic:
// the timestamp is injected by the caller, so the same inputs always produce
// byte-identical text and HTML.
package notify

import (
	"fmt"
	"html"
	"strings"
	"time"

	"weather-mailer/internal/assets"
	"weather-mailer/internal/models"
)

// Content-id tokens the HTML body references. The mailer binds actual image
// bytes to these at transmission time.
const (
	PrimaryIconCID = "weather-icon.png"
	WindIconCID    = "wind-icon.png"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// Message holds the two alternative bodies of one notification.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// Render produces the plain-text and HTML bodies. Both carry the same
// numeric values and the same recommendation order; only the HTML references
// the selected icons.
func Render(obs *models.DailyObservation, recs models.RecommendationList, sel assets.Selection, now time.Time) Message {
	return Message{
		Subject: fmt.Sprintf("Your Daily Weather & Outfit Guide - %s", now.Format("January 2, 2006")),
		Text:    renderText(obs, recs, now),
		HTML:    renderHTML(obs, recs, sel, now),
	}
}

func renderText(obs *models.DailyObservation, recs models.RecommendationList, now time.Time) string {
	var b strings.Builder

	b.WriteString("Good morning!\n\n")
	b.WriteString("Here's your weather forecast and clothing recommendations for today:\n\n")
	b.WriteString("WEATHER SUMMARY\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Current: %d°C (feels like %d°C)\n", models.RoundTemp(obs.CurrentTemp), models.RoundTemp(obs.FeelsLike))
	fmt.Fprintf(&b, "High: %d°C\n", obs.TempHigh)
	fmt.Fprintf(&b, "Low: %d°C\n", obs.TempLow)
	fmt.Fprintf(&b, "Conditions: %s\n", obs.ConditionDescription)
	fmt.Fprintf(&b, "Precipitation chance: %d%%\n", obs.PrecipProbability)
	fmt.Fprintf(&b, "Humidity: %d%%\n", obs.Humidity)
	fmt.Fprintf(&b, "Wind speed: %d km/h\n\n", obs.WindSpeedKmh)
	b.WriteString("WHAT TO WEAR TODAY\n")
	b.WriteString(divider + "\n")

	for i, rec := range recs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}

	b.WriteString("\n" + divider + "\n\n")
	b.WriteString("Have a great day!\n\n---\n")
	fmt.Fprintf(&b, "Generated on %s\n", now.Format("2006-01-02 at 3:04 PM"))

	return b.String()
}

func renderHTML(obs *models.DailyObservation, recs models.RecommendationList, sel assets.Selection, now time.Time) string {
	var b strings.Builder

	b.WriteString("<html><body>\n")
	b.WriteString("<p>Good morning!</p>\n")
	b.WriteString("<p>Here's your weather forecast and clothing recommendations for today:</p>\n")
	fmt.Fprintf(&b, "<p><img src=\"cid:%s\" alt=\"%s\" width=\"64\" height=\"64\">", PrimaryIconCID, html.EscapeString(string(sel.Primary)))
	if sel.Wind != nil {
		fmt.Fprintf(&b, " <img src=\"cid:%s\" alt=\"%s\" width=\"64\" height=\"64\">", WindIconCID, html.EscapeString(string(*sel.Wind)))
	}
	b.WriteString("</p>\n")

	b.WriteString("<h3>Weather Summary</h3>\n<table>\n")
	fmt.Fprintf(&b, "<tr><td>Current</td><td>%d°C (feels like %d°C)</td></tr>\n", models.RoundTemp(obs.CurrentTemp), models.RoundTemp(obs.FeelsLike))
	fmt.Fprintf(&b, "<tr><td>High</td><td>%d°C</td></tr>\n", obs.TempHigh)
	fmt.Fprintf(&b, "<tr><td>Low</td><td>%d°C</td></tr>\n", obs.TempLow)
	fmt.Fprintf(&b, "<tr><td>Conditions</td><td>%s</td></tr>\n", html.EscapeString(obs.ConditionDescription))
	fmt.Fprintf(&b, "<tr><td>Precipitation chance</td><td>%d%%</td></tr>\n", obs.PrecipProbability)
	fmt.Fprintf(&b, "<tr><td>Humidity</td><td>%d%%</td></tr>\n", obs.Humidity)
	fmt.Fprintf(&b, "<tr><td>Wind speed</td><td>%d km/h</td></tr>\n", obs.WindSpeedKmh)
	b.WriteString("</table>\n")

	b.WriteString("<h3>What To Wear Today</h3>\n<ol>\n")
	for _, rec := range recs {
		fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(rec))
	}
	b.WriteString("</ol>\n")

	b.WriteString("<p>Have a great day!</p>\n")
	fmt.Fprintf(&b, "<p><small>Generated on %s</small></p>\n", now.Format("2006-01-02 at 3:04 PM"))
	b.WriteString("</body></html>\n")

	return b.String()
}
