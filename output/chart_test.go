package output_test

import (
	"bytes"
	"github.com/hscells/sweep/dataset"
	"github.com/hscells/sweep/learning"
	"github.com/hscells/sweep/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"regexp"
	"testing"
)

func mustDataset(t *testing.T, rows [][]float64, labels []float64) dataset.Dataset {
	d, err := dataset.New(rows, labels)
	require.NoError(t, err)
	return d
}

func TestPlotEstimatorScores(t *testing.T) {
	train := mustDataset(t, [][]float64{{0, 0}, {1, 1}, {2, 2}}, []float64{0, 1, 1})
	validation := mustDataset(t, [][]float64{{0, 1}, {1, 0}, {2, 1}}, []float64{0, 1, 1})
	test := mustDataset(t, [][]float64{{0, 2}, {2, 0}, {1, 2}}, []float64{0, 1, 0})

	values := []interface{}{1, 5, 10}
	sweep := learning.Sweep{Param: "max_depth", Values: values, Fixed: learning.Params{{Name: "seed", Value: 0}}}
	estimators, err := learning.TrainEstimators(train.X, train.Y, learning.DecisionTree, sweep, learning.TrainOutput(&bytes.Buffer{}))
	require.NoError(t, err)
	require.Len(t, estimators, 3)

	p, err := output.PlotEstimatorScores(estimators, "max_depth", values, train, test, validation)
	require.NoError(t, err)
	assert.Equal(t, "DecisionTreeClassifier Score vs max_depth", p.Title.Text)
	assert.Equal(t, "max_depth", p.X.Label.Text)
	assert.Equal(t, "score", p.Y.Label.Text)
	assert.True(t, p.Legend.Top)
	assert.True(t, p.Legend.Left)

	scores, err := output.ScoreSets(estimators, train, test, validation)
	require.NoError(t, err)
	legend := output.ScoreLegend(scores)
	require.Len(t, legend, 3)
	assert.Regexp(t, regexp.MustCompile(`^train = \d\.\d{3}$`), legend[0])
	assert.Regexp(t, regexp.MustCompile(`^val = \d\.\d{3}$`), legend[1])
	assert.Regexp(t, regexp.MustCompile(`^test = \d\.\d{3}$`), legend[2])

	// The legend reports the scores of the validation best.
	best, err := output.BestIndex(scores.Validation)
	require.NoError(t, err)
	assert.Equal(t, best, scores.Best)
	for _, v := range scores.Validation {
		assert.True(t, v <= scores.Validation[scores.Best])
	}

	var b bytes.Buffer
	require.NoError(t, output.WriteChart(p, &b, 4*vg.Inch, 3*vg.Inch, "png"))
	assert.True(t, bytes.HasPrefix(b.Bytes(), []byte("\x89PNG")))
}

func TestPlotScoresUsesValidationBest(t *testing.T) {
	scores := output.EstimatorScores{
		Train:      []float64{0.9, 0.8, 0.7, 0.6},
		Validation: []float64{0.70, 0.95, 0.95, 0.60},
		Test:       []float64{0.1, 0.2, 0.3, 0.4},
		Best:       1,
	}
	assert.Equal(t, []string{"train = 0.800", "val = 0.950", "test = 0.200"}, output.ScoreLegend(scores))

	p, err := output.PlotScores("Ridge", "alpha", []interface{}{0.1, 1.0, 10.0, 100.0}, scores)
	require.NoError(t, err)
	assert.Equal(t, "Ridge Score vs alpha", p.Title.Text)

	var b bytes.Buffer
	require.NoError(t, output.WriteChart(p, &b, 4*vg.Inch, 3*vg.Inch, "svg"))
	assert.Contains(t, b.String(), "<svg")
}

func TestPlotEstimatorScoresEmpty(t *testing.T) {
	d := mustDataset(t, [][]float64{{0}}, []float64{0})
	p, err := output.PlotEstimatorScores(nil, "max_depth", nil, d, d, d)
	assert.Equal(t, output.ErrEmptySequence, err)
	assert.Nil(t, p)
}

func TestPlotEstimatorScoresScoringFailure(t *testing.T) {
	train := mustDataset(t, [][]float64{{0, 0}, {1, 1}}, []float64{0, 1})
	wide := mustDataset(t, [][]float64{{0, 0, 0}}, []float64{0})
	tree, err := learning.NewDecisionTreeClassifier(nil)
	require.NoError(t, err)
	require.NoError(t, tree.Fit(train.X, train.Y))

	p, err := output.PlotEstimatorScores([]learning.Estimator{tree}, "max_depth", []interface{}{nil}, train, train, wide)
	assert.EqualError(t, err, "estimator was fit on 2 features but X has 3")
	assert.Nil(t, p)
}

func TestPlotScoresMismatchedLengths(t *testing.T) {
	scores := output.EstimatorScores{
		Train:      []float64{0.9, 0.8},
		Validation: []float64{0.7, 0.95},
		Test:       []float64{0.1, 0.2},
		Best:       1,
	}
	tests := []struct {
		name   string
		values []interface{}
		scores output.EstimatorScores
		err    string
	}{
		{"no values", nil, scores, "there are 2 scores but 0 parameter values"},
		{"extra value", []interface{}{1, 2, 3}, scores, "there are 2 scores but 3 parameter values"},
		{"short train", []interface{}{1, 2}, output.EstimatorScores{Train: []float64{0.9}, Validation: scores.Validation, Test: scores.Test, Best: 1}, "score sets have different lengths: train 1, validation 2, test 2"},
		{"short test", []interface{}{1, 2}, output.EstimatorScores{Train: scores.Train, Validation: scores.Validation, Test: []float64{0.1}, Best: 1}, "score sets have different lengths: train 2, validation 2, test 1"},
		{"best too large", []interface{}{1, 2}, output.EstimatorScores{Train: scores.Train, Validation: scores.Validation, Test: scores.Test, Best: 2}, "best index 2 is out of range for 2 scores"},
		{"best negative", []interface{}{1, 2}, output.EstimatorScores{Train: scores.Train, Validation: scores.Validation, Test: scores.Test, Best: -1}, "best index -1 is out of range for 2 scores"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := output.PlotScores("Ridge", "alpha", test.values, test.scores)
			assert.EqualError(t, err, test.err)
			assert.Nil(t, p)
		})
	}
}
