package learning

import (
	"fmt"
	"gonum.org/v1/gonum/mat"
	"io"
	"os"
)

type trainer struct {
	out io.Writer
}

// TrainOutput sets where the progress message for each configuration is written. It is standard output by default.
func TrainOutput(w io.Writer) func(t *trainer) {
	return func(t *trainer) {
		t.out = w
	}
}

// TrainEstimators trains one estimator from factory on (X, y) for each value in the sweep. A message naming the
// estimator and its parameters is printed before each one is trained. The trained estimators are returned in the
// same order as the sweep values.
//
// For example:
//
//	TrainEstimators(X, y, DecisionTree, Sweep{
//		Param:  "max_depth",
//		Values: []interface{}{1, 5, 10},
//		Fixed:  Params{{"splitter", "random"}, {"seed", 0}},
//	})
//
//	Training DecisionTreeClassifier(max_depth=1, splitter="random", seed=0)...
//	Training DecisionTreeClassifier(max_depth=5, splitter="random", seed=0)...
//	Training DecisionTreeClassifier(max_depth=10, splitter="random", seed=0)...
//
// The first estimator that fails to construct or fit stops the sweep, and its error is returned as is.
func TrainEstimators(X mat.Matrix, y []float64, factory Factory, sweep Sweep, options ...func(t *trainer)) ([]Estimator, error) {
	t := &trainer{out: os.Stdout}
	for _, option := range options {
		option(t)
	}

	estimators := make([]Estimator, 0, len(sweep.Values))
	for i := range sweep.Values {
		fmt.Fprintf(t.out, "Training %s(%s)...\n", factory.Name(), sweep.Describe(i))
		estimator, err := factory.New(sweep.Configuration(i))
		if err != nil {
			return nil, err
		}
		if err := estimator.Fit(X, y); err != nil {
			return nil, err
		}
		estimators = append(estimators, estimator)
	}
	return estimators, nil
}
