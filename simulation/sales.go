package simulation

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"cakesim/locale"
	"cakesim/models"
)

const (
	baseSales        = 500.0
	weekendBoost     = 1.5
	eventProbability = 0.03
)

// unforeseenEvents are the rare demand perturbations, each with its locale
// key and sales multiplier.
var unforeseenEvents = [8]struct {
	Key      string
	Modifier float64
}{
	{"unexpEventConstruction", 0.85},
	{"unexpEventDemo", 1.2},
	{"unexpEventFlea", 1.3},
	{"unexpEventOffer", 0.8},
	{"unexpEventStrike", 0.7},
	{"unexpEventSportsGood", 1.15},
	{"unexpEventSportsBad", 0.75},
	{"unexpEventBirthday", 1.15},
}

// nextSales derives the realized demand for a day from weekday, weather,
// the recent weather trend, the holiday classification and a rare
// unexpected event. Holidays close the store: zero sales, no event, and no
// random draws consumed.
func (g *Generator) nextSales(date time.Time, history []models.DailyRecord, temperature int, condition models.WeatherCondition, dayType models.DayType) (int, string) {
	sales := baseSales
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		sales *= weekendBoost
	}

	recent := history
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}
	avgRecentTemp := float64(temperature)
	if len(recent) > 0 {
		temps := make([]float64, len(recent))
		for i, r := range recent {
			temps[i] = float64(r.Temperature)
		}
		avgRecentTemp = stat.Mean(temps, nil)
	}

	switch condition {
	case models.WeatherSnow:
		if avgRecentTemp > -2 {
			sales *= 0.7
		} else {
			sales *= 0.8
		}
	case models.WeatherRain:
		rainy := 0
		for _, r := range recent {
			if r.Weather == models.WeatherRain {
				rainy++
			}
		}
		if rainy > 3 {
			sales *= 0.95 // people adapt after several rainy days
		} else {
			sales *= 0.85
		}
	case models.WeatherSun:
		if float64(temperature) > avgRecentTemp+5 {
			sales *= 0.9 // too hot
		} else {
			sales *= 1.1
		}
	}

	switch dayType.Kind {
	case models.DayBeforeHoliday:
		sales *= 1.2
		if dayType.Holiday == NewYearName {
			sales *= 3.0
		}
	case models.DayAfterHoliday:
		sales *= 1.1
	case models.DayHoliday:
		return 0, ""
	}

	event := ""
	if g.rng.Float64() < eventProbability {
		ev := unforeseenEvents[g.rng.Intn(len(unforeseenEvents))]
		sales *= ev.Modifier
		event = locale.Get(ev.Key, g.locale)
	}

	result := int(math.Round(sales * (0.95 + g.rng.Float64()*0.1)))
	if result < 0 {
		result = 0
	}
	return result, event
}
