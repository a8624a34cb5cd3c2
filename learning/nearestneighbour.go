package learning

import (
	"fmt"
	"github.com/hscells/sweep/eval"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"sort"
)

// KNeighborsClassifier predicts the majority class of the k closest training samples.
type KNeighborsClassifier struct {
	params Params

	k       int
	weights string

	samples [][]float64
	labels  []float64
	classes []float64
}

type neighbour struct {
	distance float64
	label    float64
}

// NewKNeighborsClassifier creates a new untrained classifier. It understands n_neighbors and weights
// ("uniform" or "distance").
func NewKNeighborsClassifier(params Params) (*KNeighborsClassifier, error) {
	if err := params.allow("KNeighborsClassifier", "n_neighbors", "weights"); err != nil {
		return nil, err
	}
	c := &KNeighborsClassifier{params: params}
	var err error
	if c.k, err = params.Int("n_neighbors", 5); err != nil {
		return nil, err
	}
	if c.weights, err = params.Choice("weights", "uniform", "uniform", "distance"); err != nil {
		return nil, err
	}
	if c.k < 1 {
		return nil, errors.Errorf("n_neighbors must be at least 1, got %d", c.k)
	}
	return c, nil
}

func (c *KNeighborsClassifier) Name() string {
	return "KNeighborsClassifier"
}

func (c *KNeighborsClassifier) Params() Params {
	return c.params
}

func (c *KNeighborsClassifier) String() string {
	return fmt.Sprintf("%s(%s)", c.Name(), c.params)
}

// Fit memorises a copy of (X, y).
func (c *KNeighborsClassifier) Fit(X mat.Matrix, y []float64) error {
	if err := checkShape(X, y); err != nil {
		return err
	}
	rows, _ := X.Dims()
	if c.k > rows {
		return errors.Errorf("n_neighbors is %d but there are only %d samples", c.k, rows)
	}
	c.samples = make([][]float64, rows)
	for i := range c.samples {
		c.samples[i] = mat.Row(nil, i, X)
	}
	c.labels = make([]float64, len(y))
	copy(c.labels, y)
	c.classes = uniqueSorted(y)
	return nil
}

// Predict returns the predicted class of each row of X.
func (c *KNeighborsClassifier) Predict(X mat.Matrix) ([]float64, error) {
	if c.samples == nil {
		return nil, ErrNotFitted
	}
	if err := checkFeatures(X, len(c.samples[0])); err != nil {
		return nil, err
	}
	rows, _ := X.Dims()
	predictions := make([]float64, rows)
	row := make([]float64, len(c.samples[0]))
	neighbours := make([]neighbour, len(c.samples))
	for i := range predictions {
		mat.Row(row, i, X)
		for j, s := range c.samples {
			neighbours[j] = neighbour{distance: floats.Distance(row, s, 2), label: c.labels[j]}
		}
		sort.SliceStable(neighbours, func(a, b int) bool {
			return neighbours[a].distance < neighbours[b].distance
		})
		predictions[i] = c.vote(neighbours[:c.k])
	}
	return predictions, nil
}

// vote picks the class with the most (weighted) votes. Ties go to the smallest class.
func (c *KNeighborsClassifier) vote(neighbours []neighbour) float64 {
	votes := make([]float64, len(c.classes))
	exact := false
	if c.weights == "distance" {
		// Samples at distance zero outvote everything else.
		for _, n := range neighbours {
			if n.distance == 0 {
				exact = true
				break
			}
		}
	}
	for _, n := range neighbours {
		w := 1.0
		if c.weights == "distance" {
			switch {
			case exact && n.distance == 0:
				w = 1
			case exact:
				w = 0
			default:
				w = 1 / n.distance
			}
		}
		votes[sort.SearchFloat64s(c.classes, n.label)] += w
	}
	return c.classes[floats.MaxIdx(votes)]
}

// Score is the mean accuracy of the classifier on (X, y).
func (c *KNeighborsClassifier) Score(X mat.Matrix, y []float64) (float64, error) {
	if err := checkLabels(X, y); err != nil {
		return 0, err
	}
	predictions, err := c.Predict(X)
	if err != nil {
		return 0, err
	}
	return eval.Accuracy.Score(y, predictions), nil
}
