package learning_test

import (
	"github.com/hscells/sweep/learning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"testing"
)

var (
	lineX = mat.NewDense(6, 1, []float64{0, 1, 2, 10, 11, 12})
	lineY = []float64{0, 0, 0, 1, 1, 1}
)

func TestKNeighborsPredict(t *testing.T) {
	knn, err := learning.NewKNeighborsClassifier(learning.Params{{Name: "n_neighbors", Value: 3}})
	require.NoError(t, err)
	require.NoError(t, knn.Fit(lineX, lineY))

	predictions, err := knn.Predict(mat.NewDense(2, 1, []float64{1.5, 10.5}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, predictions)

	score, err := knn.Score(lineX, lineY)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestKNeighborsTiesGoToSmallestClass(t *testing.T) {
	knn, err := learning.NewKNeighborsClassifier(learning.Params{{Name: "n_neighbors", Value: 2}})
	require.NoError(t, err)
	require.NoError(t, knn.Fit(mat.NewDense(2, 1, []float64{0, 2}), []float64{9, 4}))

	predictions, err := knn.Predict(mat.NewDense(1, 1, []float64{1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, predictions)
}

func TestKNeighborsDistanceWeights(t *testing.T) {
	knn, err := learning.NewKNeighborsClassifier(learning.Params{{Name: "n_neighbors", Value: 6}, {Name: "weights", Value: "distance"}})
	require.NoError(t, err)
	require.NoError(t, knn.Fit(lineX, lineY))

	// Every neighbour votes, but the close ones count for more.
	predictions, err := knn.Predict(mat.NewDense(3, 1, []float64{3, 9, 11}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1}, predictions)
}

func TestKNeighborsTooFewSamples(t *testing.T) {
	knn, err := learning.NewKNeighborsClassifier(nil)
	require.NoError(t, err)
	assert.EqualError(t, knn.Fit(xorX, xorY), "n_neighbors is 5 but there are only 4 samples")
}

func TestKNeighborsNotFitted(t *testing.T) {
	knn, err := learning.NewKNeighborsClassifier(nil)
	require.NoError(t, err)
	_, err = knn.Score(lineX, lineY)
	assert.Equal(t, learning.ErrNotFitted, err)
}
