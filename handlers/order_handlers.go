package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"cakesim/locale"
	"cakesim/models"
	"cakesim/session"
)

// HandleOrder resolves the pending day with the user's order: the day is
// appended to history, the budget updated, and the next tomorrow
// generated. The response summarizes the outcome the way the dashboard
// presents it.
func HandleOrder(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return lookupError(err)
	}

	var req models.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	result, err := sess.ResolveDay(req.Order)
	if err != nil {
		if errors.Is(err, session.ErrInvalidOrder) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		log.Printf("Error resolving day for session %s: %v", sess.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to resolve day"})
	}

	feedback := session.Feedback(result)

	return c.JSON(fiber.Map{
		"day": recordView(result.Record, sess.Locale),
		"summary": fiber.Map{
			"order":      *result.Record.Order,
			"demand":     result.Record.Sales,
			"sold":       result.Sold,
			"leftover":   *result.Record.Leftover,
			"missed":     *result.Record.Missed,
			"unexpected": result.Unexpected,
			"is_closure": result.IsClosure,
		},
		"feedback": fiber.Map{
			"message":  locale.Get(feedback.Message, sess.Locale),
			"severity": feedback.Severity,
		},
		"budget":   money(result.Budget),
		"tomorrow": tomorrowView(sess.Tomorrow(), sess.Locale),
	})
}
