// Package forecast holds the three interchangeable prediction strategies
// and the dispatcher that selects one by identifier. Every strategy
// consumes the history plus the pending day's observable features and
// returns a point estimate with an inspectable explanation.
package forecast

import (
	"log"

	"cakesim/models"
)

// Strategy identifiers accepted by the dispatcher.
const (
	StrategyHeuristic = models.ModelInfoHeuristic
	StrategyKNN       = models.ModelInfoKNN
	StrategyXGB       = models.ModelInfoXGB
)

// Strategy is the uniform prediction contract. A strategy is fitted once
// against a history snapshot and then queried; it is never refitted
// automatically, so a strategy bound to an outdated history must be
// replaced, not reused.
type Strategy interface {
	Name() string
	Fit(history []models.DailyRecord) error
	Fitted() bool
	Predict(tomorrow models.TomorrowRecord) (models.PredictionResult, error)
}

// Dispatcher owns one instance of each strategy, all bound to the same
// history snapshot. Build a fresh Dispatcher whenever the history grows;
// reusing one across an append would serve stale fits.
type Dispatcher struct {
	strategies map[string]Strategy
}

// NewDispatcher creates a dispatcher with an unfitted instance of each
// strategy.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{strategies: make(map[string]Strategy)}
	for _, s := range []Strategy{NewHeuristic(), NewKNN(), NewBoost()} {
		d.strategies[s.Name()] = s
	}
	return d
}

// Predict dispatches to the named strategy, fitting it on first use. An
// unknown identifier returns the zero prediction with no explanation
// rather than an error; it is logged so a genuine zero-confidence
// prediction stays distinguishable from a bad identifier.
func (d *Dispatcher) Predict(name string, history []models.DailyRecord, tomorrow models.TomorrowRecord) (models.PredictionResult, error) {
	strategy, ok := d.strategies[name]
	if !ok {
		log.Printf("forecast: unknown strategy %q requested, returning zero prediction", name)
		return models.PredictionResult{}, nil
	}
	if !strategy.Fitted() {
		if err := strategy.Fit(history); err != nil {
			return models.PredictionResult{}, err
		}
	}
	return strategy.Predict(tomorrow)
}
