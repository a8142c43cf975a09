package client

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// OpenWeatherClient fetches the two raw payloads the normalizer needs: the
// current-conditions snapshot and the 3-hour-slot forecast list.
type OpenWeatherClient struct {
	*BaseClient
	apiKey  string
	units   string
	baseURL string
}

type WeatherEntry struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type CurrentConditionsResponse struct {
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	Weather []WeatherEntry `json:"weather"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  float64 `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Dt   int64  `json:"dt"`
	Name string `json:"name"`
	Cod  int    `json:"cod"`
}

type ForecastSlot struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []WeatherEntry `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
		Gust  float64 `json:"gust"`
	} `json:"wind"`
	Pop   float64 `json:"pop"`
	DtTxt string  `json:"dt_txt"`
}

type ForecastResponse struct {
	Cod     string         `json:"cod"`
	Message int            `json:"message"`
	Cnt     int            `json:"cnt"`
	List    []ForecastSlot `json:"list"`
}

func NewOpenWeatherClient(apiKey, units string, config ClientConfig, logger *zap.Logger) *OpenWeatherClient {
	baseClient := NewBaseClient("openweather", config, logger)
	return &OpenWeatherClient{
		BaseClient: baseClient,
		apiKey:     apiKey,
		units:      units,
		baseURL:    "https://api.openweathermap.org/data/2.5",
	}
}

func (c *OpenWeatherClient) CurrentConditions(ctx context.Context, lat, lon float64) (*CurrentConditionsResponse, error) {
	url := fmt.Sprintf("%s/weather?lat=%f&lon=%f&appid=%s&units=%s", c.baseURL, lat, lon, c.apiKey, c.units)

	data, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	var response CurrentConditionsResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, &UpstreamError{Op: "parse current conditions", Err: err}
	}

	if response.Cod != 200 {
		return nil, &UpstreamError{Op: "current conditions", Err: fmt.Errorf("API error: %d", response.Cod)}
	}

	return &response, nil
}

func (c *OpenWeatherClient) Forecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error) {
	// Only the nearest slots matter; one day of 3-hour intervals is plenty.
	url := fmt.Sprintf("%s/forecast?lat=%f&lon=%f&appid=%s&units=%s&cnt=8", c.baseURL, lat, lon, c.apiKey, c.units)

	data, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	var response ForecastResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, &UpstreamError{Op: "parse forecast", Err: err}
	}

	if response.Cod != "200" {
		return nil, &UpstreamError{Op: "forecast", Err: fmt.Errorf("API error: %s", response.Cod)}
	}

	return &response, nil
}
