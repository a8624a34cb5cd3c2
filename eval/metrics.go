package eval

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"math"
)

type accuracy struct{}
type rSquared struct{}
type meanSquaredError struct{}

var (
	// Accuracy is the fraction of predictions equal to the true label.
	Accuracy = accuracy{}
	// RSquared is the coefficient of determination of the predictions.
	RSquared = rSquared{}
	// MeanSquaredError is the mean of the squared residuals.
	MeanSquaredError = meanSquaredError{}
)

func (accuracy) Name() string {
	return "Accuracy"
}

func (accuracy) Score(truth, predicted []float64) float64 {
	checkLength(truth, predicted)
	if len(truth) == 0 {
		return math.NaN()
	}
	correct := 0.0
	for i := range truth {
		if truth[i] == predicted[i] {
			correct++
		}
	}
	return correct / float64(len(truth))
}

func (rSquared) Name() string {
	return "R2"
}

// Score is 1 for a perfect fit. A constant truth gives 1 when predicted exactly and 0 otherwise.
func (rSquared) Score(truth, predicted []float64) float64 {
	checkLength(truth, predicted)
	if len(truth) == 0 {
		return math.NaN()
	}
	mean := stat.Mean(truth, nil)
	constant := true
	for _, v := range truth {
		if v != mean {
			constant = false
			break
		}
	}
	if constant {
		if floats.Equal(truth, predicted) {
			return 1
		}
		return 0
	}
	return stat.RSquaredFrom(predicted, truth, nil)
}

func (meanSquaredError) Name() string {
	return "MSE"
}

func (meanSquaredError) Score(truth, predicted []float64) float64 {
	checkLength(truth, predicted)
	if len(truth) == 0 {
		return math.NaN()
	}
	residuals := make([]float64, len(truth))
	floats.SubTo(residuals, truth, predicted)
	return floats.Dot(residuals, residuals) / float64(len(truth))
}
