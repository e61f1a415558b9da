package simulation

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"

	"cakesim/models"
)

// calendar holds the fixed German public holidays the store observes.
var calendar = newCalendar()

// NewYearName is the calendar's name for New Year's Day; the sales process
// keys its day-before-New-Year surge on it.
var NewYearName = de.Neujahr.Name

func newCalendar() *cal.Calendar {
	c := &cal.Calendar{Name: "Germany", Cacheable: true}
	c.AddHoliday(de.Holidays...)
	return c
}

// holidayName returns the holiday name for a date, or "" for ordinary days.
func holidayName(date time.Time) string {
	actual, _, holiday := calendar.IsHoliday(date)
	if !actual || holiday == nil {
		return ""
	}
	return holiday.Name
}

// Classify maps a date to its day type. A holiday returns its own name;
// otherwise the previous day is checked before the next one, so a date
// squeezed between two holidays classifies as "day after" (intentional
// precedence). Years without calendar data simply yield no holidays, so
// every date classifies as normal.
func Classify(date time.Time) models.DayType {
	if name := holidayName(date); name != "" {
		return models.DayType{Kind: models.DayHoliday, Holiday: name}
	}
	if name := holidayName(date.AddDate(0, 0, -1)); name != "" {
		return models.DayType{Kind: models.DayAfterHoliday, Holiday: name}
	}
	if name := holidayName(date.AddDate(0, 0, 1)); name != "" {
		return models.DayType{Kind: models.DayBeforeHoliday, Holiday: name}
	}
	return models.DayType{Kind: models.DayNormal}
}
