package output

import (
	"github.com/hscells/sweep/dataset"
	"github.com/hscells/sweep/learning"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// ErrEmptySequence is returned when the best of no scores is asked for.
var ErrEmptySequence = errors.New("cannot take the maximum of an empty sequence")

// Headers name the columns of a score table.
var Headers = []string{"train", "validation", "test"}

// EstimatorScores are the scores of a list of estimators on the training, validation and test sets, index aligned
// with the estimators. Best is the index of the estimator with the highest validation score.
type EstimatorScores struct {
	Train      []float64
	Validation []float64
	Test       []float64
	Best       int
}

// BestIndex is the index of the largest score. When the largest score occurs more than once the first is taken.
func BestIndex(scores []float64) (int, error) {
	if len(scores) == 0 {
		return 0, ErrEmptySequence
	}
	return floats.MaxIdx(scores), nil
}

// ScoreSets scores the estimators against the three sets and selects the best on validation.
func ScoreSets(estimators []learning.Estimator, train, test, validation dataset.Dataset) (EstimatorScores, error) {
	var (
		s   EstimatorScores
		err error
	)
	if s.Train, err = learning.ScoreEstimators(train.X, train.Y, estimators); err != nil {
		return EstimatorScores{}, err
	}
	if s.Validation, err = learning.ScoreEstimators(validation.X, validation.Y, estimators); err != nil {
		return EstimatorScores{}, err
	}
	if s.Test, err = learning.ScoreEstimators(test.X, test.Y, estimators); err != nil {
		return EstimatorScores{}, err
	}
	if s.Best, err = BestIndex(s.Validation); err != nil {
		return EstimatorScores{}, err
	}
	return s, nil
}

// Table lays the scores out for a Formatter: data[i] is the column of Headers[i].
func (s EstimatorScores) Table() (headers []string, data [][]float64) {
	return Headers, [][]float64{s.Train, s.Validation, s.Test}
}
