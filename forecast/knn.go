package forecast

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"cakesim/models"
)

// KNN is a k-nearest-neighbor regressor over the shared feature vector.
// The prediction is the mean sales of the k closest history rows by
// Euclidean feature distance; those rows double as the reference days,
// ordered by neighbor rank.
type KNN struct {
	K int

	enc     *encoders
	rows    [][]float64
	history []models.DailyRecord
}

// NewKNN creates the KNN strategy with the default neighbor count.
func NewKNN() *KNN {
	return &KNN{K: defaultReferenceDays}
}

func (m *KNN) Name() string { return models.ModelInfoKNN }

// Fit encodes the history into the training matrix. The categorical
// encoders are fitted here exactly once and reused for every prediction.
func (m *KNN) Fit(history []models.DailyRecord) error {
	if len(history) == 0 {
		return errors.New("forecast: cannot fit knn on empty history")
	}
	enc := fitEncoders(history)
	rows, _, err := enc.designMatrix(history)
	if err != nil {
		return err
	}
	m.enc = enc
	m.rows = rows
	m.history = history
	return nil
}

func (m *KNN) Fitted() bool { return m.enc != nil }

// Predict encodes tomorrow's features and averages the sales of the k
// nearest training rows. A weather or day-type category unseen during Fit
// yields an EncodingError.
func (m *KNN) Predict(tomorrow models.TomorrowRecord) (models.PredictionResult, error) {
	if !m.Fitted() {
		return models.PredictionResult{}, errors.New("forecast: knn predict before fit")
	}

	query, err := m.enc.vector(tomorrow.DayOfWeek, tomorrow.Weather, tomorrow.Temperature, tomorrow.DayType)
	if err != nil {
		return models.PredictionResult{}, err
	}

	type neighbor struct {
		index    int
		distance float64
	}
	neighbors := make([]neighbor, len(m.rows))
	for i, row := range m.rows {
		neighbors[i] = neighbor{index: i, distance: floats.Distance(query, row, 2)}
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].distance < neighbors[j].distance
	})

	k := m.K
	if k > len(neighbors) {
		k = len(neighbors)
	}
	neighbors = neighbors[:k]

	sales := make([]float64, k)
	references := make([]models.DailyRecord, k)
	for i, n := range neighbors {
		sales[i] = float64(m.history[n.index].Sales)
		references[i] = m.history[n.index]
	}

	return models.PredictionResult{
		PredictedSales: int(stat.Mean(sales, nil)),
		Explanation: models.Explanation{
			ModelInfo:     models.ModelInfoKNN,
			ReferenceDays: references,
		},
	}, nil
}
