// Package simulation is the synthetic demand engine: a day-by-day
// generative model producing weather, holiday status, rare event
// perturbations and resulting cake sales. All randomness flows through one
// seeded source, so a fixed seed reproduces a history bit-identically.
package simulation

import (
	"math/rand"
	"time"

	"cakesim/models"
)

// Generator drives the weather and sales processes across calendar days.
// It is not safe for concurrent use; each session owns its own instance.
type Generator struct {
	rng    *rand.Rand
	locale string
}

// NewGenerator creates a generator with a fixed seed. The locale selects
// the language of the event labels stored in generated records.
func NewGenerator(seed int64, loc string) *Generator {
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		locale: loc,
	}
}

// Day truncates a timestamp to its calendar day in UTC. All record dates
// are normalized through it, which keeps date-indexed lookups exact.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

const dateKeyLayout = "2006-01-02"

// GenerateHistory produces one record per calendar day from start to end
// inclusive. Orders during warm-up repeat the sales realized exactly seven
// days earlier; while no such day exists yet, the order shadows the day's
// own sales plus a small random offset.
func (g *Generator) GenerateHistory(start, end time.Time) []models.DailyRecord {
	start, end = Day(start), Day(end)

	var history []models.DailyRecord
	salesByDate := make(map[string]int)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		record := g.nextDay(d, history)

		var order int
		if weekAgo, ok := salesByDate[d.AddDate(0, 0, -7).Format(dateKeyLayout)]; ok {
			order = weekAgo
		} else {
			order = record.Sales + g.rng.Intn(6) - 3
			if order < 0 {
				order = 0
			}
		}
		record.Resolve(order)

		salesByDate[d.Format(dateKeyLayout)] = record.Sales
		history = append(history, record)
	}
	return history
}

// GenerateTomorrow extends a non-empty history by one pending day. The
// returned record already carries its realized sales and event, but its
// order fields stay unresolved until the caller supplies an order.
func (g *Generator) GenerateTomorrow(history []models.DailyRecord) models.DailyRecord {
	date := Day(history[len(history)-1].Date).AddDate(0, 0, 1)
	return g.nextDay(date, history)
}

// nextDay runs the holiday, weather and sales processes for one date.
// Draw order is fixed: weather first, then sales.
func (g *Generator) nextDay(date time.Time, history []models.DailyRecord) models.DailyRecord {
	dayType := Classify(date)
	temperature, condition := g.nextWeather(date, history)
	sales, event := g.nextSales(date, history, temperature, condition, dayType)

	return models.DailyRecord{
		Date:        date,
		DayOfWeek:   date.Weekday(),
		Sales:       sales,
		Weather:     condition,
		Temperature: temperature,
		DayType:     dayType,
		Unexpected:  event,
	}
}
