// Package handlers exposes the simulator engine to the dashboard frontend.
// Handlers only translate between HTTP and the session layer; all
// simulation and forecasting logic lives below them.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"cakesim/locale"
	"cakesim/models"
	"cakesim/session"
)

// store holds the live sessions. Set once at startup via Init.
var store *session.Store

// Init wires the session store the handlers operate on.
func Init(s *session.Store) {
	store = s
}

// errResponseSent marks that currentSession already wrote its error
// response. A nil error here would let callers fall through and
// dereference a nil session.
var errResponseSent = errors.New("handlers: error response already sent")

// currentSession resolves the session referenced by the validated token.
// On failure the error response is written here and errResponseSent
// returned; callers route the error through lookupError.
func currentSession(c *fiber.Ctx) (*session.Session, error) {
	id, ok := c.Locals("sessionID").(string)
	if !ok {
		if err := c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "No session in request context"}); err != nil {
			return nil, err
		}
		return nil, errResponseSent
	}
	sess, ok := store.Get(id)
	if !ok {
		// the token outlived its session (deleted or process restarted)
		if err := c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Session not found"}); err != nil {
			return nil, err
		}
		return nil, errResponseSent
	}
	return sess, nil
}

// lookupError converts errResponseSent to nil so the response written by
// currentSession is not overwritten by the framework's error handler.
func lookupError(err error) error {
	if errors.Is(err, errResponseSent) {
		return nil
	}
	return err
}

// recordView renders a history record with the weekday localized for the
// session. Order, leftover and missed stay null until the day is resolved.
func recordView(r models.DailyRecord, lang string) fiber.Map {
	return fiber.Map{
		"date":        r.Date.Format("2006-01-02"),
		"day_of_week": locale.Weekday(r.DayOfWeek, lang),
		"order":       r.Order,
		"sales":       r.Sales,
		"leftover":    r.Leftover,
		"missed":      r.Missed,
		"weather":     r.Weather,
		"temperature": r.Temperature,
		"day_type":    r.DayType.String(),
		"unexpected":  r.Unexpected,
	}
}

// tomorrowView renders the pending day without its realized sales. Closure
// days carry the store-closed notice instead of ordinary day details.
func tomorrowView(t models.TomorrowRecord, lang string) fiber.Map {
	view := fiber.Map{
		"date":        t.Date.Format("2006-01-02"),
		"day_of_week": locale.Weekday(t.DayOfWeek, lang),
		"weather":     t.Weather,
		"temperature": t.Temperature,
		"day_type":    t.DayType.String(),
		"is_closure":  t.DayType.IsClosure(),
	}
	if t.DayType.IsClosure() {
		view["notice"] = locale.Get("holidayevent", lang)
	}
	return view
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
