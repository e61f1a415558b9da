// Package session owns the per-user simulator state: the generated
// history, the pending tomorrow record, the fitted strategy cache and the
// budget ledger. Sessions are independent; nothing is shared between two
// concurrent users.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cakesim/forecast"
	"cakesim/models"
	"cakesim/simulation"
)

// ErrInvalidOrder rejects out-of-range order quantities at the boundary so
// they never reach the core.
var ErrInvalidOrder = errors.New("session: order must be between 0 and 100000")

const maxOrder = 100000

// Prices captures the unit economics applied when a day is resolved.
type Prices struct {
	CakeCost       decimal.Decimal
	CakePrice      decimal.Decimal
	StartingBudget decimal.Decimal
}

// Session is one user's simulator instance. All methods are safe for
// concurrent use; internally everything is serialized, matching the
// synchronous request/response model of the engine.
type Session struct {
	ID        string
	Locale    string
	CreatedAt time.Time

	mu         sync.Mutex
	generator  *simulation.Generator
	history    []models.DailyRecord
	pending    models.DailyRecord
	dispatcher *forecast.Dispatcher
	prices     Prices
	budget     decimal.Decimal
}

// New generates a session with a warm-up history ending today and its
// first pending tomorrow record.
func New(seed int64, loc string, years int, prices Prices) *Session {
	generator := simulation.NewGenerator(seed, loc)
	end := simulation.Day(time.Now())
	start := end.AddDate(-years, 0, 0)
	history := generator.GenerateHistory(start, end)

	return &Session{
		ID:         uuid.NewString(),
		Locale:     loc,
		CreatedAt:  time.Now(),
		generator:  generator,
		history:    history,
		pending:    generator.GenerateTomorrow(history),
		dispatcher: forecast.NewDispatcher(),
		prices:     prices,
		budget:     prices.StartingBudget,
	}
}

// History returns a copy of the resolved records, optionally limited to
// the most recent n days (n <= 0 returns everything).
func (s *Session) History(n int) []models.DailyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.history
	if n > 0 && len(records) > n {
		records = records[len(records)-n:]
	}
	out := make([]models.DailyRecord, len(records))
	copy(out, records)
	return out
}

// Tomorrow returns the strategy-visible view of the pending day.
func (s *Session) Tomorrow() models.TomorrowRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending.TomorrowView()
}

// Predict runs the named strategy against the current history and the
// pending day. Strategies are fitted lazily and cached until the history
// grows.
func (s *Session) Predict(strategy string) (models.PredictionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatcher.Predict(strategy, s.history, s.pending.TomorrowView())
}

// DayResult summarizes a resolved day for the caller.
type DayResult struct {
	Record     models.DailyRecord
	Sold       int
	Budget     decimal.Decimal
	IsClosure  bool
	Unexpected string
}

// ResolveDay applies the user's order to the pending day: the day joins
// the history, the budget absorbs cost and revenue, the fitted strategy
// cache is dropped (it is bound to the old history snapshot) and the next
// tomorrow is generated.
func (s *Session) ResolveDay(order int) (DayResult, error) {
	if order < 0 || order > maxOrder {
		return DayResult{}, ErrInvalidOrder
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.pending
	record.Resolve(order)
	s.history = append(s.history, record)
	s.dispatcher = forecast.NewDispatcher()

	sold := order - *record.Leftover
	cost := s.prices.CakeCost.Mul(decimal.NewFromInt(int64(order)))
	revenue := s.prices.CakePrice.Mul(decimal.NewFromInt(int64(sold)))
	s.budget = s.budget.Add(revenue).Sub(cost)

	s.pending = s.generator.GenerateTomorrow(s.history)

	return DayResult{
		Record:     record,
		Sold:       sold,
		Budget:     s.budget,
		IsClosure:  record.DayType.IsClosure(),
		Unexpected: record.Unexpected,
	}, nil
}

// Budget returns the current budget.
func (s *Session) Budget() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget
}

// Feedback grades the resolved day the way the dashboard presents it:
// leftover or missed demand beyond 10% of realized sales is an error,
// beyond 5% a warning, anything tighter a success.
func Feedback(result DayResult) models.Feedback {
	sales := float64(result.Record.Sales)
	leftover := float64(*result.Record.Leftover)
	missed := float64(*result.Record.Missed)

	switch {
	case leftover > sales/10:
		return models.Feedback{Message: "feedbackTooMany", Severity: "error"}
	case leftover > sales/20:
		return models.Feedback{Message: "feedbackTooMany", Severity: "warning"}
	case missed > sales/10:
		return models.Feedback{Message: "feedbackTooFew", Severity: "error"}
	case missed > sales/20:
		return models.Feedback{Message: "feedbackTooFew", Severity: "warning"}
	default:
		return models.Feedback{Message: "feedbackJustRight", Severity: "success"}
	}
}
