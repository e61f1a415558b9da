package forecast

import (
	"gonum.org/v1/gonum/stat"

	"cakesim/models"
)

const defaultReferenceDays = 4

// Heuristic predicts tomorrow's sales as the mean over the last K
// occurrences of the same weekday. Its reference days are returned in
// chronological order.
type Heuristic struct {
	K       int
	history []models.DailyRecord
}

// NewHeuristic creates the heuristic strategy with the default window.
func NewHeuristic() *Heuristic {
	return &Heuristic{K: defaultReferenceDays}
}

func (h *Heuristic) Name() string { return models.ModelInfoHeuristic }

// Fit binds the strategy to a history snapshot.
func (h *Heuristic) Fit(history []models.DailyRecord) error {
	h.history = history
	return nil
}

func (h *Heuristic) Fitted() bool { return h.history != nil }

// Predict averages the sales of the last K records sharing tomorrow's
// weekday. With no matching weekday in history the prediction is zero with
// no reference days.
func (h *Heuristic) Predict(tomorrow models.TomorrowRecord) (models.PredictionResult, error) {
	var matches []models.DailyRecord
	for _, r := range h.history {
		if r.DayOfWeek == tomorrow.DayOfWeek {
			matches = append(matches, r)
		}
	}
	if len(matches) > h.K {
		matches = matches[len(matches)-h.K:]
	}

	result := models.PredictionResult{
		Explanation: models.Explanation{
			ModelInfo:     models.ModelInfoHeuristic,
			ReferenceDays: matches,
		},
	}
	if len(matches) == 0 {
		return result, nil
	}

	sales := make([]float64, len(matches))
	for i, r := range matches {
		sales[i] = float64(r.Sales)
	}
	result.PredictedSales = int(stat.Mean(sales, nil))
	return result, nil
}
