package models

// WeatherForecast is a synthetic forecast record, freshly generated per request
// and never persisted.
type WeatherForecast struct {
	Date         string `json:"date"`
	TemperatureC int    `json:"temperatureC"`
	TemperatureF int    `json:"temperatureF"`
	Summary      string `json:"summary"`
}
