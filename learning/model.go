package learning

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrNotFitted is returned when an estimator is scored or used to predict before it has been fit.
var ErrNotFitted = errors.New("estimator has not been fit")

// Estimator is an abstract representation of a machine learning model that can be trained on a
// feature matrix and labels, and can then score itself against another feature matrix and labels.
type Estimator interface {
	// Name is the name of the estimator type (e.g. DecisionTreeClassifier).
	Name() string
	// Params are the effective parameters the estimator was constructed with.
	Params() Params
	// Fit must train the estimator on X and y.
	Fit(X mat.Matrix, y []float64) error
	// Score must evaluate the estimator on X and y without modifying what it has learned.
	Score(X mat.Matrix, y []float64) (float64, error)
}

// Predictor is implemented by estimators that can produce a prediction for each row of X.
type Predictor interface {
	Predict(X mat.Matrix) ([]float64, error)
}

var (
	_ Predictor = (*DecisionTreeClassifier)(nil)
	_ Predictor = (*KNeighborsClassifier)(nil)
	_ Predictor = (*Ridge)(nil)
)

// Factory constructs untrained estimators of one type from a set of parameters.
type Factory interface {
	Name() string
	New(params Params) (Estimator, error)
}

// FactoryFunc adapts a name and a constructor into a Factory.
type FactoryFunc struct {
	TypeName    string
	Constructor func(params Params) (Estimator, error)
}

func (f FactoryFunc) Name() string {
	return f.TypeName
}

func (f FactoryFunc) New(params Params) (Estimator, error) {
	return f.Constructor(params)
}

var (
	// DecisionTree constructs DecisionTreeClassifier estimators.
	DecisionTree = FactoryFunc{TypeName: "DecisionTreeClassifier", Constructor: func(params Params) (Estimator, error) {
		return NewDecisionTreeClassifier(params)
	}}
	// KNeighbors constructs KNeighborsClassifier estimators.
	KNeighbors = FactoryFunc{TypeName: "KNeighborsClassifier", Constructor: func(params Params) (Estimator, error) {
		return NewKNeighborsClassifier(params)
	}}
	// RidgeRegression constructs Ridge estimators.
	RidgeRegression = FactoryFunc{TypeName: "Ridge", Constructor: func(params Params) (Estimator, error) {
		return NewRidge(params)
	}}
)

// FactoryByName resolves an estimator type by its short name (tree, knn, ridge) or its type name.
func FactoryByName(name string) (Factory, error) {
	switch name {
	case "tree", DecisionTree.Name():
		return DecisionTree, nil
	case "knn", KNeighbors.Name():
		return KNeighbors, nil
	case "ridge", RidgeRegression.Name():
		return RidgeRegression, nil
	}
	return nil, errors.Errorf("unknown estimator type %q", name)
}

// checkShape ensures there is something to learn from and that every row has a label.
func checkShape(X mat.Matrix, y []float64) error {
	if X == nil {
		return errors.New("cannot fit an estimator without a feature matrix")
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.New("cannot fit an estimator on an empty feature matrix")
	}
	if r != len(y) {
		return errors.Errorf("feature matrix has %d rows but there are %d labels", r, len(y))
	}
	return nil
}

// checkFeatures ensures X has the same number of features the estimator was fit on.
func checkFeatures(X mat.Matrix, features int) error {
	if X == nil {
		return errors.New("no feature matrix to predict from")
	}
	_, c := X.Dims()
	if c != features {
		return errors.Errorf("estimator was fit on %d features but X has %d", features, c)
	}
	return nil
}

// checkLabels ensures every row of X has a label to be scored against.
func checkLabels(X mat.Matrix, y []float64) error {
	if X == nil {
		return errors.New("no feature matrix to score")
	}
	if r, _ := X.Dims(); r != len(y) {
		return errors.Errorf("feature matrix has %d rows but there are %d labels", r, len(y))
	}
	return nil
}
