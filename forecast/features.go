package forecast

import (
	"fmt"
	"math"
	"sort"
	"time"

	"cakesim/models"
)

// EncodingError reports a categorical value seen at prediction time that
// was absent when the encoder was fitted. Callers should surface it or
// fall back to the heuristic strategy; silently misencoding is never
// acceptable.
type EncodingError struct {
	Feature string
	Value   string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("forecast: unseen %s category %q", e.Feature, e.Value)
}

// labelEncoder maps category strings to stable integer codes, assigned in
// sorted order over the fitted values.
type labelEncoder struct {
	feature string
	index   map[string]int
}

func fitLabelEncoder(feature string, values []string) *labelEncoder {
	uniq := make(map[string]struct{}, len(values))
	for _, v := range values {
		uniq[v] = struct{}{}
	}
	classes := make([]string, 0, len(uniq))
	for v := range uniq {
		classes = append(classes, v)
	}
	sort.Strings(classes)

	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	return &labelEncoder{feature: feature, index: index}
}

func (e *labelEncoder) transform(value string) (float64, error) {
	code, ok := e.index[value]
	if !ok {
		return 0, &EncodingError{Feature: e.feature, Value: value}
	}
	return float64(code), nil
}

// encoders holds the categorical encoders fitted once over a history
// snapshot. Training and prediction must share one instance so the codes
// stay consistent.
type encoders struct {
	weather *labelEncoder
	dayType *labelEncoder
}

func fitEncoders(history []models.DailyRecord) *encoders {
	weathers := make([]string, len(history))
	dayTypes := make([]string, len(history))
	for i, r := range history {
		weathers[i] = string(r.Weather)
		dayTypes[i] = r.DayType.String()
	}
	return &encoders{
		weather: fitLabelEncoder("weather", weathers),
		dayType: fitLabelEncoder("day_type", dayTypes),
	}
}

// mondayIndexed maps a weekday to the Monday=0..Sunday=6 ordinal used as a
// feature, independent of any locale.
func mondayIndexed(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// vector builds the feature vector for one day:
// weekday ordinal, weekday as cyclic sine, weather code, temperature,
// day-type code.
func (e *encoders) vector(wd time.Weekday, weather models.WeatherCondition, temperature int, dayType models.DayType) ([]float64, error) {
	weatherCode, err := e.weather.transform(string(weather))
	if err != nil {
		return nil, err
	}
	dayTypeCode, err := e.dayType.transform(dayType.String())
	if err != nil {
		return nil, err
	}
	ordinal := mondayIndexed(wd)
	return []float64{
		float64(ordinal),
		math.Sin(2 * math.Pi * float64(ordinal) / 7),
		weatherCode,
		float64(temperature),
		dayTypeCode,
	}, nil
}

// designMatrix transforms a history into feature rows and sales targets.
// Encoding cannot fail here because the encoders were fitted on the same
// history.
func (e *encoders) designMatrix(history []models.DailyRecord) ([][]float64, []float64, error) {
	rows := make([][]float64, len(history))
	targets := make([]float64, len(history))
	for i, r := range history {
		row, err := e.vector(r.DayOfWeek, r.Weather, r.Temperature, r.DayType)
		if err != nil {
			return nil, nil, err
		}
		rows[i] = row
		targets[i] = float64(r.Sales)
	}
	return rows, targets, nil
}
