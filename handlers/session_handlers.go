package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"cakesim/config"
	"cakesim/locale"
	"cakesim/middleware"
	"cakesim/models"
	"cakesim/session"
)

// HandleCreateSession starts a new simulator session: it generates the
// warm-up history and the first pending day, and returns a session token.
func HandleCreateSession(c *fiber.Ctx) error {
	var req models.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	lang := req.Locale
	if lang == "" {
		lang = config.AppConfig.DefaultLocale
	}
	if !locale.Supported(lang) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Unsupported locale"})
	}

	years := req.Years
	if years == 0 {
		years = config.AppConfig.HistoryYears
	}
	if years < 1 || years > 10 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Years must be between 1 and 10"})
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	sess := session.New(seed, lang, years, session.Prices{
		CakeCost:       config.AppConfig.CakeCost,
		CakePrice:      config.AppConfig.CakePrice,
		StartingBudget: config.AppConfig.StartingBudget,
	})
	store.Add(sess)

	token, err := middleware.IssueSessionToken(sess.ID)
	if err != nil {
		store.Delete(sess.ID)
		log.Printf("Error signing session token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create session"})
	}

	log.Printf("Session %s created (locale=%s, years=%d)", sess.ID, lang, years)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":     token,
		"sessionId": sess.ID,
		"locale":    lang,
		"budget":    money(sess.Budget()),
		"tomorrow":  tomorrowView(sess.Tomorrow(), lang),
	})
}

// HandleDeleteSession ends the current session and discards its state.
func HandleDeleteSession(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return lookupError(err)
	}
	store.Delete(sess.ID)
	log.Printf("Session %s deleted", sess.ID)
	return c.JSON(fiber.Map{"message": "Session ended"})
}

// HandleGetBudget returns the session's current budget.
func HandleGetBudget(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return lookupError(err)
	}
	return c.JSON(fiber.Map{"budget": money(sess.Budget())})
}
