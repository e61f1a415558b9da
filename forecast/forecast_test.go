package forecast

import (
	"time"

	"cakesim/models"
)

// day builds a resolved history record with sensible defaults for the
// fields a test does not care about.
func day(dateStr string, sales int, opts ...func(*models.DailyRecord)) models.DailyRecord {
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		panic(err)
	}
	r := models.DailyRecord{
		Date:        date,
		DayOfWeek:   date.Weekday(),
		Sales:       sales,
		Weather:     models.WeatherSun,
		Temperature: 15,
		DayType:     models.DayType{Kind: models.DayNormal},
	}
	for _, opt := range opts {
		opt(&r)
	}
	r.Resolve(sales)
	return r
}

func withWeather(w models.WeatherCondition) func(*models.DailyRecord) {
	return func(r *models.DailyRecord) { r.Weather = w }
}

func withTemperature(t int) func(*models.DailyRecord) {
	return func(r *models.DailyRecord) { r.Temperature = t }
}

func tomorrowFrom(r models.DailyRecord) models.TomorrowRecord {
	return r.TomorrowView()
}
