package learning_test

import (
	"github.com/hscells/sweep/learning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"testing"
)

var (
	xorX = mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	xorY = []float64{0, 1, 1, 0}
)

func TestDecisionTreeDepth(t *testing.T) {
	tests := []struct {
		depth    int
		accuracy float64
		grown    int
	}{
		{depth: 1, accuracy: 0.5, grown: 1},
		{depth: 2, accuracy: 1, grown: 2},
		{depth: 0, accuracy: 1, grown: 2},
	}
	for _, test := range tests {
		tree, err := learning.NewDecisionTreeClassifier(learning.Params{{Name: "max_depth", Value: test.depth}})
		require.NoError(t, err)
		require.NoError(t, tree.Fit(xorX, xorY))
		score, err := tree.Score(xorX, xorY)
		require.NoError(t, err)
		assert.Equal(t, test.accuracy, score, "max_depth=%d", test.depth)
		assert.Equal(t, test.grown, tree.Depth(), "max_depth=%d", test.depth)
	}
}

func TestDecisionTreeSeparable(t *testing.T) {
	x := mat.NewDense(6, 1, []float64{1, 2, 3, 10, 11, 12})
	labels := []float64{5, 5, 5, 7, 7, 7}
	tree, err := learning.NewDecisionTreeClassifier(learning.Params{{Name: "max_depth", Value: 1}})
	require.NoError(t, err)
	require.NoError(t, tree.Fit(x, labels))

	predictions, err := tree.Predict(mat.NewDense(2, 1, []float64{0, 20}))
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7}, predictions)
}

func TestDecisionTreeRandomSplitterIsSeeded(t *testing.T) {
	x := mat.NewDense(8, 2, []float64{
		0, 3,
		1, 2,
		2, 1,
		3, 0,
		4, 7,
		5, 6,
		6, 5,
		7, 4,
	})
	labels := []float64{0, 1, 0, 1, 1, 0, 1, 1}
	params := learning.Params{{Name: "splitter", Value: "random"}, {Name: "seed", Value: 42}}

	a, err := learning.NewDecisionTreeClassifier(params)
	require.NoError(t, err)
	b, err := learning.NewDecisionTreeClassifier(params)
	require.NoError(t, err)
	require.NoError(t, a.Fit(x, labels))
	require.NoError(t, b.Fit(x, labels))

	pa, err := a.Predict(x)
	require.NoError(t, err)
	pb, err := b.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, pa, pb)
}

func TestDecisionTreeMinSamplesLeaf(t *testing.T) {
	tree, err := learning.NewDecisionTreeClassifier(learning.Params{{Name: "min_samples_leaf", Value: 3}})
	require.NoError(t, err)
	require.NoError(t, tree.Fit(xorX, xorY))
	// No split can leave three samples on both sides of four.
	assert.Equal(t, 0, tree.Depth())
}

func TestDecisionTreeParams(t *testing.T) {
	_, err := learning.NewDecisionTreeClassifier(learning.Params{{Name: "depth", Value: 1}})
	assert.EqualError(t, err, `DecisionTreeClassifier got an unexpected parameter "depth"`)

	_, err = learning.NewDecisionTreeClassifier(learning.Params{{Name: "max_depth", Value: "deep"}})
	assert.EqualError(t, err, `parameter max_depth must be an integer, got "deep"`)

	_, err = learning.NewDecisionTreeClassifier(learning.Params{{Name: "splitter", Value: "worst"}})
	assert.EqualError(t, err, `parameter splitter must be one of best, random, got "worst"`)

	_, err = learning.NewDecisionTreeClassifier(learning.Params{{Name: "max_depth", Value: -1}})
	assert.Error(t, err)

	tree, err := learning.NewDecisionTreeClassifier(learning.Params{{Name: "max_depth", Value: nil}})
	require.NoError(t, err)
	assert.Equal(t, "DecisionTreeClassifier(max_depth=nil)", tree.String())
}

func TestDecisionTreeFeatureMismatch(t *testing.T) {
	tree, err := learning.NewDecisionTreeClassifier(nil)
	require.NoError(t, err)
	require.NoError(t, tree.Fit(xorX, xorY))
	_, err = tree.Score(mat.NewDense(1, 3, []float64{0, 0, 0}), []float64{0})
	assert.EqualError(t, err, "estimator was fit on 2 features but X has 3")
}
