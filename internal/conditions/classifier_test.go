package conditions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPrimary(t *testing.T) {
	testCases := []struct {
		name      string
		condition string
		expected  Category
	}{
		{name: "light rain is rain, not cloud", condition: "Light rain", expected: Rain},
		{name: "drizzle is rain", condition: "drizzle", expected: Rain},
		{name: "shower is rain", condition: "Shower rain", expected: Rain},
		{name: "thunderstorm beats rain", condition: "Thunderstorm with heavy rain", expected: Thunderstorm},
		{name: "snow beats rain", condition: "Rain and snow", expected: Snow},
		{name: "sleet is snow family", condition: "Sleet", expected: Snow},
		{name: "flurries are snow family", condition: "Light snow flurries", expected: Snow},
		{name: "few clouds are partly cloudy", condition: "few clouds", expected: CloudPartial},
		{name: "scattered clouds are partly cloudy", condition: "scattered clouds", expected: CloudPartial},
		{name: "overcast is full cloud", condition: "overcast clouds", expected: CloudFull},
		{name: "broken clouds are full cloud", condition: "broken clouds", expected: CloudFull},
		{name: "clear sky", condition: "clear sky", expected: Clear},
		{name: "sunny", condition: "Sunny", expected: Clear},
		{name: "case insensitive", condition: "RAIN", expected: Rain},
		{name: "no match", condition: "Haze", expected: Unknown},
		{name: "empty", condition: "", expected: Unknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.condition).Primary)
		})
	}
}

func TestClassifyMultipleMatches(t *testing.T) {
	cl := Classify("Rain and snow")

	assert.Equal(t, Snow, cl.Primary)
	assert.True(t, cl.Has(Rain))
	assert.True(t, cl.Has(Snow))
	assert.False(t, cl.Has(Clear))
}

func TestClassifyPartialCloudReplacesFull(t *testing.T) {
	cl := Classify("partly cloudy")

	assert.True(t, cl.Has(CloudPartial))
	assert.False(t, cl.Has(CloudFull))
}
