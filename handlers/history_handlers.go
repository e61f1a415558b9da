package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cakesim/utils"
)

// HandleGetHistory returns the resolved history for charting, optionally
// limited to the last ?days=N records.
func HandleGetHistory(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return lookupError(err)
	}

	days := c.QueryInt("days", 0)
	if days < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "days must not be negative"})
	}

	records := sess.History(days)
	views := make([]fiber.Map, len(records))
	for i, r := range records {
		views[i] = recordView(r, sess.Locale)
	}
	return c.JSON(fiber.Map{
		"records": views,
		"total":   len(views),
	})
}

// HandleGetRecords returns a paginated slice of the history, newest first,
// for the dashboard's table view.
func HandleGetRecords(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return lookupError(err)
	}

	records := sess.History(0)
	// newest first
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	pagination := utils.CreatePagination(len(records), c.QueryInt("page", 1), c.QueryInt("pageSize", 14))
	start, end := utils.PageBounds(pagination, len(records))

	views := make([]fiber.Map, 0, end-start)
	for _, r := range records[start:end] {
		views = append(views, recordView(r, sess.Locale))
	}
	return c.JSON(fiber.Map{
		"records":    views,
		"pagination": pagination,
	})
}

// HandleGetTomorrow returns the pending day awaiting an order decision.
func HandleGetTomorrow(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return lookupError(err)
	}
	return c.JSON(fiber.Map{"tomorrow": tomorrowView(sess.Tomorrow(), sess.Locale)})
}
