package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"cakesim/forecast"
	"cakesim/locale"
	"cakesim/models"
)

// modelInfoKeys maps a strategy's model identifier to the locale key of
// its explanation text.
var modelInfoKeys = map[string]string{
	models.ModelInfoHeuristic: "modelInfoHeuristic",
	models.ModelInfoKNN:       "modelInfoKNN",
	models.ModelInfoXGB:       "modelInfoXGB",
}

// HandlePredict runs the requested strategy against the session's history
// and pending day and returns the prediction with its explanation.
func HandlePredict(c *fiber.Ctx) error {
	sess, err := currentSession(c)
	if err != nil {
		return lookupError(err)
	}

	var req models.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	result, err := sess.Predict(req.Strategy)
	if err != nil {
		var encErr *forecast.EncodingError
		if errors.As(err, &encErr) {
			// tomorrow carries a category the model never saw; the
			// heuristic strategy still works for this day
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message":  encErr.Error(),
				"fallback": forecast.StrategyHeuristic,
			})
		}
		log.Printf("Error predicting with strategy %q: %v", req.Strategy, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Prediction failed"})
	}

	references := make([]fiber.Map, len(result.Explanation.ReferenceDays))
	for i, r := range result.Explanation.ReferenceDays {
		references[i] = recordView(r, sess.Locale)
	}

	response := fiber.Map{
		"predicted_sales": result.PredictedSales,
		"model_info":      result.Explanation.ModelInfo,
		"reference_days":  references,
	}
	if key, ok := modelInfoKeys[result.Explanation.ModelInfo]; ok {
		response["model_text"] = locale.Get(key, sess.Locale)
	}
	return c.JSON(response)
}
