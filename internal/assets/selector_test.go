package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimaryIconPriority(t *testing.T) {
	testCases := []struct {
		name      string
		condition string
		expected  IconID
	}{
		{name: "light rain picks rain, never cloud", condition: "Light rain", expected: IconRain},
		{name: "thunderstorm beats rain", condition: "thunderstorm with light rain", expected: IconThunderstorm},
		{name: "snow beats rain", condition: "rain and snow", expected: IconSnow},
		{name: "few clouds", condition: "few clouds", expected: IconPartlyCloudy},
		{name: "scattered clouds", condition: "scattered clouds", expected: IconPartlyCloudy},
		{name: "overcast", condition: "overcast clouds", expected: IconCloudy},
		{name: "broken clouds", condition: "broken clouds", expected: IconCloudy},
		{name: "clear sky", condition: "clear sky", expected: IconSunny},
		{name: "unknown falls back to partly cloudy", condition: "haze", expected: IconPartlyCloudy},
		{name: "empty falls back to partly cloudy", condition: "", expected: IconPartlyCloudy},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PrimaryIcon(tc.condition))
		})
	}
}

func TestWindIconThresholdIsStrict(t *testing.T) {
	sel := Select("clear sky", 30)
	assert.Nil(t, sel.Wind)

	sel = Select("clear sky", 31)
	require.NotNil(t, sel.Wind)
	assert.Equal(t, IconWindy, *sel.Wind)
}

func TestSelectAlwaysHasPrimary(t *testing.T) {
	sel := Select("", 0)
	assert.Equal(t, IconPartlyCloudy, sel.Primary)
	assert.Nil(t, sel.Wind)
}
