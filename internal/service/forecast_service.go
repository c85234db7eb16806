package service

import (
	"math/rand"
	"time"

	"github.com/dkrasnov/product-catalog-api/internal/models"
)

const forecastDays = 5

// summaries is the fixed word list forecasts draw from.
var summaries = [...]string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild",
	"Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// ForecastService generates placeholder weather forecasts
type ForecastService struct{}

// NewForecastService creates a new forecast service
func NewForecastService() *ForecastService {
	return &ForecastService{}
}

// Forecast returns five synthetic daily records starting tomorrow.
// Values are freshly randomized on every call.
func (s *ForecastService) Forecast() []models.WeatherForecast {
	forecasts := make([]models.WeatherForecast, forecastDays)
	for i := range forecasts {
		tempC := rand.Intn(75) - 20 // [-20, 54]
		forecasts[i] = models.WeatherForecast{
			Date:         time.Now().AddDate(0, 0, i+1).Format("2006-01-02"),
			TemperatureC: tempC,
			TemperatureF: 32 + int(float64(tempC)/0.5556),
			Summary:      summaries[rand.Intn(len(summaries))],
		}
	}
	return forecasts
}
