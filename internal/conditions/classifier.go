// Package conditions maps free-text weather descriptions onto a small closed
// set of category tags. All keyword knowledge lives here; the recommendation
// engine and the icon selector branch on tags, never on raw substrings.
package conditions

import "strings"

type Category int

const (
	Unknown Category = iota
	Thunderstorm
	Snow
	Rain
	CloudFull
	CloudPartial
	Clear
)

func (c Category) String() string {
	switch c {
	case Thunderstorm:
		return "thunderstorm"
	case Snow:
		return "snow"
	case Rain:
		return "rain"
	case CloudFull:
		return "cloud-full"
	case CloudPartial:
		return "cloud-partial"
	case Clear:
		return "clear"
	default:
		return "unknown"
	}
}

// keywords per category, matched case-insensitively as substrings.
var keywords = map[Category][]string{
	Thunderstorm: {"thunder"},
	Snow:         {"snow", "sleet", "flurr"},
	Rain:         {"rain", "drizzle", "shower"},
	CloudFull:    {"cloud", "overcast"},
	Clear:        {"clear", "sun"},
}

// partialCloudHints refine a cloud match into the partly-cloudy variant.
var partialCloudHints = []string{"few", "scattered", "partly"}

// Classification holds every category the condition text matched plus the
// single highest-priority one. Rules that may co-fire (rain gear and snow
// gear on a "rain and snow" day) use Has; the icon selector uses Primary.
type Classification struct {
	Primary Category
	matched map[Category]bool
}

func (cl Classification) Has(c Category) bool {
	return cl.matched[c]
}

// Classify scans the condition text once. Priority for Primary:
// thunderstorm > snow > rain > cloud > clear; no match yields Unknown.
func Classify(condition string) Classification {
	text := strings.ToLower(condition)

	cl := Classification{Primary: Unknown, matched: make(map[Category]bool)}
	for cat, words := range keywords {
		for _, w := range words {
			if strings.Contains(text, w) {
				cl.matched[cat] = true
				break
			}
		}
	}

	if cl.matched[CloudFull] {
		for _, hint := range partialCloudHints {
			if strings.Contains(text, hint) {
				cl.matched[CloudPartial] = true
				cl.matched[CloudFull] = false
				break
			}
		}
	}

	for _, cat := range []Category{Thunderstorm, Snow, Rain, CloudFull, CloudPartial, Clear} {
		if cl.matched[cat] {
			cl.Primary = cat
			break
		}
	}

	return cl
}
