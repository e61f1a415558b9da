package simulation

import (
	"math"
	"time"

	"cakesim/models"
)

// conditionOrder fixes the draw order of the categorical distribution:
// sun, rain, snow, partly-cloudy.
var conditionOrder = [4]models.WeatherCondition{
	models.WeatherSun,
	models.WeatherRain,
	models.WeatherSnow,
	models.WeatherPartlyCloudy,
}

// BaselineTemperature is the smooth seasonal baseline for a month, peaking
// in summer: 10 + 10*sin((month-3)*2π/12), truncated to integer degrees.
func BaselineTemperature(month time.Month) int {
	return int(10 + 10*math.Sin(float64(month-3)*2*math.Pi/12))
}

// nextWeather draws temperature and condition for a date. With history the
// temperature random-walks from the previous day, clamped to ±10 around the
// seasonal baseline, and the condition distribution is conditioned on the
// previous day's condition. Snow is suppressed in May through September
// whenever the drawn temperature exceeds 2°C.
func (g *Generator) nextWeather(date time.Time, history []models.DailyRecord) (int, models.WeatherCondition) {
	base := BaselineTemperature(date.Month())

	if len(history) == 0 {
		temperature := base + g.rng.Intn(10) - 5
		return temperature, g.drawCondition([4]float64{0.6, 0.2, 0.1, 0.1})
	}

	prev := history[len(history)-1]
	temperature := prev.Temperature + g.rng.Intn(11) - 5
	if temperature > base+10 {
		temperature = base + 10
	}
	if temperature < base-10 {
		temperature = base - 10
	}

	var probs [4]float64
	switch prev.Weather {
	case models.WeatherSnow:
		probs = [4]float64{0.1, 0.1, 0.4, 0.4}
	case models.WeatherRain:
		probs = [4]float64{0.2, 0.4, 0.1, 0.3}
	default:
		probs = [4]float64{0.5, 0.2, 0.1, 0.2}
	}

	month := date.Month()
	if month >= time.May && month <= time.September && temperature > 2 {
		probs[2] = 0
		total := probs[0] + probs[1] + probs[3]
		for i := range probs {
			probs[i] /= total
		}
	}

	return temperature, g.drawCondition(probs)
}

// drawCondition samples a condition from the given distribution with a
// single uniform draw.
func (g *Generator) drawCondition(probs [4]float64) models.WeatherCondition {
	u := g.rng.Float64()
	acc := 0.0
	for i, p := range probs {
		acc += p
		if u < acc {
			return conditionOrder[i]
		}
	}
	return conditionOrder[len(conditionOrder)-1]
}
