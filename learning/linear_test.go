package learning_test

import (
	"bytes"
	"github.com/hscells/sweep/learning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"testing"
)

func TestRidgeRecoversLine(t *testing.T) {
	x := mat.NewDense(5, 1, []float64{0, 1, 2, 3, 4})
	targets := []float64{1, 3, 5, 7, 9}

	r, err := learning.NewRidge(learning.Params{{Name: "alpha", Value: 0}})
	require.NoError(t, err)
	require.NoError(t, r.Fit(x, targets))
	assert.InDeltaSlice(t, []float64{2}, r.Coefficients(), 1e-9)
	assert.InDelta(t, 1, r.Intercept(), 1e-9)

	score, err := r.Score(x, targets)
	require.NoError(t, err)
	assert.InDelta(t, 1, score, 1e-9)
}

func TestRidgeShrinks(t *testing.T) {
	x := mat.NewDense(5, 1, []float64{0, 1, 2, 3, 4})
	targets := []float64{1, 3, 5, 7, 9}

	var previous = 3.0
	for _, alpha := range []float64{0.1, 1, 10, 100} {
		r, err := learning.NewRidge(learning.Params{{Name: "alpha", Value: alpha}})
		require.NoError(t, err)
		require.NoError(t, r.Fit(x, targets))
		coef := r.Coefficients()[0]
		assert.True(t, coef < previous, "alpha=%v", alpha)
		previous = coef
	}
}

func TestRidgeWithoutIntercept(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{1, 2, 3})
	r, err := learning.NewRidge(learning.Params{{Name: "alpha", Value: 0}, {Name: "fit_intercept", Value: false}})
	require.NoError(t, err)
	require.NoError(t, r.Fit(x, []float64{2, 4, 6}))
	assert.InDeltaSlice(t, []float64{2}, r.Coefficients(), 1e-9)
	assert.Equal(t, 0.0, r.Intercept())
}

func TestRidgeParams(t *testing.T) {
	_, err := learning.NewRidge(learning.Params{{Name: "alpha", Value: -1}})
	assert.Error(t, err)
	_, err = learning.NewRidge(learning.Params{{Name: "fit_intercept", Value: "yes"}})
	assert.EqualError(t, err, `parameter fit_intercept must be a bool, got "yes"`)
}

func TestRidgeCollinearWithoutRegularisation(t *testing.T) {
	// The second feature is twice the first, so XᵀX is singular at alpha 0.
	x := mat.NewDense(4, 2, []float64{
		1, 2,
		2, 4,
		3, 6,
		4, 8,
	})
	targets := []float64{3, 5, 7, 9}

	sweep := learning.Sweep{Param: "alpha", Values: []interface{}{0, 0.1, 1}}
	estimators, err := learning.TrainEstimators(x, targets, learning.RidgeRegression, sweep, learning.TrainOutput(&bytes.Buffer{}))
	require.NoError(t, err)
	require.Len(t, estimators, 3)

	r := estimators[0].(*learning.Ridge)
	assert.InDeltaSlice(t, []float64{0.4, 0.8}, r.Coefficients(), 1e-9)
	assert.InDelta(t, 1, r.Intercept(), 1e-9)

	scores, err := learning.ScoreEstimators(x, targets, estimators)
	require.NoError(t, err)
	assert.InDelta(t, 1, scores[0], 1e-9)
}

func TestRidgeConstantFeature(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{5, 5, 5})
	r, err := learning.NewRidge(learning.Params{{Name: "alpha", Value: 0}})
	require.NoError(t, err)
	require.NoError(t, r.Fit(x, []float64{1, 2, 3}))
	assert.Equal(t, []float64{0}, r.Coefficients())
	assert.InDelta(t, 2, r.Intercept(), 1e-12)
}
