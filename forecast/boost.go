package forecast

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"cakesim/models"
)

// Boost is a gradient-boosted ensemble of regression trees fitted on the
// shared feature vector with squared-error loss. It mirrors the surface of
// the XGBoost regressor it replaces (100 estimators by default) but trains
// in-process; it cites no reference days.
type Boost struct {
	Estimators   int
	LearningRate float64
	MaxDepth     int
	MinLeaf      int

	enc   *encoders
	base  float64
	trees []*treeNode
}

// NewBoost creates the boosted strategy with its default hyperparameters.
func NewBoost() *Boost {
	return &Boost{
		Estimators:   100,
		LearningRate: 0.3,
		MaxDepth:     6,
		MinLeaf:      1,
	}
}

func (m *Boost) Name() string { return models.ModelInfoXGB }

// Fit trains the ensemble: a constant base prediction followed by trees
// fitted to the running residuals.
func (m *Boost) Fit(history []models.DailyRecord) error {
	if len(history) == 0 {
		return errors.New("forecast: cannot fit boosted model on empty history")
	}
	enc := fitEncoders(history)
	rows, targets, err := enc.designMatrix(history)
	if err != nil {
		return err
	}

	base := stat.Mean(targets, nil)
	predictions := make([]float64, len(targets))
	for i := range predictions {
		predictions[i] = base
	}

	indices := make([]int, len(rows))
	for i := range indices {
		indices[i] = i
	}

	trees := make([]*treeNode, 0, m.Estimators)
	residuals := make([]float64, len(targets))
	for t := 0; t < m.Estimators; t++ {
		for i := range targets {
			residuals[i] = targets[i] - predictions[i]
		}
		tree := m.buildTree(rows, residuals, indices, 0)
		trees = append(trees, tree)
		for i, row := range rows {
			predictions[i] += m.LearningRate * tree.evaluate(row)
		}
	}

	m.enc = enc
	m.base = base
	m.trees = trees
	return nil
}

func (m *Boost) Fitted() bool { return m.enc != nil }

// Predict sums the ensemble for tomorrow's feature vector. Categories
// unseen during Fit yield an EncodingError.
func (m *Boost) Predict(tomorrow models.TomorrowRecord) (models.PredictionResult, error) {
	if !m.Fitted() {
		return models.PredictionResult{}, errors.New("forecast: boosted predict before fit")
	}

	query, err := m.enc.vector(tomorrow.DayOfWeek, tomorrow.Weather, tomorrow.Temperature, tomorrow.DayType)
	if err != nil {
		return models.PredictionResult{}, err
	}

	value := m.base
	for _, tree := range m.trees {
		value += m.LearningRate * tree.evaluate(query)
	}

	return models.PredictionResult{
		PredictedSales: int(math.Round(value)),
		Explanation:    models.Explanation{ModelInfo: models.ModelInfoXGB},
	}, nil
}

// treeNode is one node of a binary regression tree. Leaves have no
// children and carry the mean residual of their samples.
type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	value     float64
}

func (n *treeNode) evaluate(row []float64) float64 {
	if n.left == nil {
		return n.value
	}
	if row[n.feature] <= n.threshold {
		return n.left.evaluate(row)
	}
	return n.right.evaluate(row)
}

// buildTree grows a depth-limited tree on the residuals of the given
// sample indices, splitting greedily by squared-error reduction.
func (m *Boost) buildTree(rows [][]float64, residuals []float64, indices []int, depth int) *treeNode {
	leaf := &treeNode{value: meanAt(residuals, indices)}
	if depth >= m.MaxDepth || len(indices) <= m.MinLeaf*2 {
		return leaf
	}

	feature, threshold, ok := m.bestSplit(rows, residuals, indices)
	if !ok {
		return leaf
	}

	var left, right []int
	for _, i := range indices {
		if rows[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < m.MinLeaf || len(right) < m.MinLeaf {
		return leaf
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      m.buildTree(rows, residuals, left, depth+1),
		right:     m.buildTree(rows, residuals, right, depth+1),
	}
}

// bestSplit scans every feature for the threshold minimizing the combined
// squared error of the two halves. Returns ok=false when no split
// separates the samples.
func (m *Boost) bestSplit(rows [][]float64, residuals []float64, indices []int) (int, float64, bool) {
	if len(indices) < 2 {
		return 0, 0, false
	}
	featureCount := len(rows[indices[0]])

	bestErr := math.Inf(1)
	bestFeature, bestThreshold := 0, 0.0
	found := false

	sorted := make([]int, len(indices))
	for f := 0; f < featureCount; f++ {
		copy(sorted, indices)
		sortByFeature(sorted, rows, f)

		var leftSum, leftSq float64
		totalSum, totalSq := sumsAt(residuals, sorted)

		for pos := 0; pos < len(sorted)-1; pos++ {
			r := residuals[sorted[pos]]
			leftSum += r
			leftSq += r * r

			cur := rows[sorted[pos]][f]
			next := rows[sorted[pos+1]][f]
			if cur == next {
				continue
			}

			nLeft := float64(pos + 1)
			nRight := float64(len(sorted) - pos - 1)
			rightSum := totalSum - leftSum
			rightSq := totalSq - leftSq
			sse := (leftSq - leftSum*leftSum/nLeft) + (rightSq - rightSum*rightSum/nRight)
			if sse < bestErr {
				bestErr = sse
				bestFeature = f
				bestThreshold = (cur + next) / 2
				found = true
			}
		}
	}
	return bestFeature, bestThreshold, found
}

func sortByFeature(indices []int, rows [][]float64, feature int) {
	sort.Slice(indices, func(i, j int) bool {
		return rows[indices[i]][feature] < rows[indices[j]][feature]
	})
}

func meanAt(values []float64, indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}
	sum := 0.0
	for _, i := range indices {
		sum += values[i]
	}
	return sum / float64(len(indices))
}

func sumsAt(values []float64, indices []int) (sum, sq float64) {
	for _, i := range indices {
		v := values[i]
		sum += v
		sq += v * v
	}
	return sum, sq
}
