package models

import (
	"encoding/json"
	"time"
)

// WeatherCondition is a categorical weather state.
type WeatherCondition string

const (
	WeatherSun          WeatherCondition = "sun"
	WeatherRain         WeatherCondition = "rain"
	WeatherSnow         WeatherCondition = "snow"
	WeatherPartlyCloudy WeatherCondition = "partly-cloudy"
)

// DayTypeKind distinguishes the holiday classification of a date.
type DayTypeKind int

const (
	DayNormal DayTypeKind = iota
	DayHoliday
	DayBeforeHoliday
	DayAfterHoliday
)

// DayType is the holiday classification of a date. Holiday carries the
// holiday's name for every kind except DayNormal.
type DayType struct {
	Kind    DayTypeKind
	Holiday string
}

// String renders the canonical form used as the categorical feature value:
// "normal", "<name>", "day before <name>" or "day after <name>".
func (d DayType) String() string {
	switch d.Kind {
	case DayHoliday:
		return d.Holiday
	case DayBeforeHoliday:
		return "day before " + d.Holiday
	case DayAfterHoliday:
		return "day after " + d.Holiday
	default:
		return "normal"
	}
}

// IsClosure reports whether the store is closed on this day type.
// Days before and after a holiday are regular (busier) business days.
func (d DayType) IsClosure() bool {
	return d.Kind == DayHoliday
}

func (d DayType) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// DailyRecord is one resolved row of the sales history. Order, Leftover and
// Missed are nil while the day is still pending.
type DailyRecord struct {
	Date        time.Time        `json:"date"`
	DayOfWeek   time.Weekday     `json:"day_of_week"`
	Order       *int             `json:"order,omitempty"`
	Sales       int              `json:"sales"`
	Leftover    *int             `json:"leftover,omitempty"`
	Missed      *int             `json:"missed,omitempty"`
	Weather     WeatherCondition `json:"weather"`
	Temperature int              `json:"temperature"`
	DayType     DayType          `json:"day_type"`
	Unexpected  string           `json:"unexpected"`
}

// Resolve fills in the order outcome for a pending record. At most one of
// Leftover and Missed can end up positive.
func (r *DailyRecord) Resolve(order int) {
	leftover := max(order-r.Sales, 0)
	missed := max(r.Sales-order, 0)
	r.Order = &order
	r.Leftover = &leftover
	r.Missed = &missed
}

// TomorrowRecord is the view of the pending day that prediction strategies
// are allowed to see. The realized sales and event label are already drawn
// but stay inside the session until the day is resolved, so a strategy
// cannot read them by construction.
type TomorrowRecord struct {
	Date        time.Time        `json:"date"`
	DayOfWeek   time.Weekday     `json:"day_of_week"`
	Weather     WeatherCondition `json:"weather"`
	Temperature int              `json:"temperature"`
	DayType     DayType          `json:"day_type"`
}

// TomorrowView builds the strategy-visible view of a pending record.
func (r *DailyRecord) TomorrowView() TomorrowRecord {
	return TomorrowRecord{
		Date:        r.Date,
		DayOfWeek:   r.DayOfWeek,
		Weather:     r.Weather,
		Temperature: r.Temperature,
		DayType:     r.DayType,
	}
}

// Model identifiers returned in Explanation.ModelInfo.
const (
	ModelInfoHeuristic = "heuristic"
	ModelInfoKNN       = "knn"
	ModelInfoXGB       = "xgb"
)

// Explanation is the evidence a strategy cites for its prediction.
// ReferenceDays is empty for the boosted model; its order is strategy
// defined (chronological for the heuristic, neighbor rank for KNN).
type Explanation struct {
	ModelInfo     string        `json:"model_info"`
	ReferenceDays []DailyRecord `json:"reference_days,omitempty"`
}

// PredictionResult is the uniform output of every prediction strategy.
type PredictionResult struct {
	PredictedSales int         `json:"predicted_sales"`
	Explanation    Explanation `json:"explanation"`
}
