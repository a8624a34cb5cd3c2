package learning

import (
	"fmt"
	"github.com/hscells/sweep/eval"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Ridge is least squares linear regression with an L2 penalty on the coefficients.
type Ridge struct {
	params Params

	alpha        float64
	fitIntercept bool

	coef      *mat.VecDense
	intercept float64
}

// NewRidge creates a new untrained regressor. It understands alpha and fit_intercept.
func NewRidge(params Params) (*Ridge, error) {
	if err := params.allow("Ridge", "alpha", "fit_intercept"); err != nil {
		return nil, err
	}
	r := &Ridge{params: params}
	var err error
	if r.alpha, err = params.Float("alpha", 1.0); err != nil {
		return nil, err
	}
	if r.fitIntercept, err = params.Bool("fit_intercept", true); err != nil {
		return nil, err
	}
	if r.alpha < 0 {
		return nil, errors.Errorf("alpha must be non-negative, got %v", r.alpha)
	}
	return r, nil
}

func (r *Ridge) Name() string {
	return "Ridge"
}

func (r *Ridge) Params() Params {
	return r.params
}

func (r *Ridge) String() string {
	return fmt.Sprintf("%s(%s)", r.Name(), r.params)
}

// Coefficients are the learned weights, one per feature.
func (r *Ridge) Coefficients() []float64 {
	if r.coef == nil {
		return nil
	}
	return mat.Col(nil, 0, r.coef)
}

// Intercept is the learned bias term; it is zero when fit_intercept is false.
func (r *Ridge) Intercept() float64 {
	return r.intercept
}

// rankTolerance is the relative size below which singular values of the normal equations are treated as zero.
const rankTolerance = 1e-10

// Fit solves (XᵀX + αI)w = Xᵀy, centring X and y first when an intercept is fit.
func (r *Ridge) Fit(X mat.Matrix, y []float64) error {
	if err := checkShape(X, y); err != nil {
		return err
	}
	rows, features := X.Dims()

	x := mat.DenseCopyOf(X)
	targets := make([]float64, len(y))
	copy(targets, y)

	means := make([]float64, features)
	var yMean float64
	if r.fitIntercept {
		col := make([]float64, rows)
		for j := range means {
			mat.Col(col, j, x)
			means[j] = stat.Mean(col, nil)
			floats.AddConst(-means[j], col)
			x.SetCol(j, col)
		}
		yMean = stat.Mean(targets, nil)
		floats.AddConst(-yMean, targets)
	}

	var gram mat.Dense
	gram.Mul(x.T(), x)
	for j := 0; j < features; j++ {
		gram.Set(j, j, gram.At(j, j)+r.alpha)
	}

	var moment mat.VecDense
	moment.MulVec(x.T(), mat.NewVecDense(rows, targets))

	coef := mat.NewVecDense(features, nil)
	if err := coef.SolveVec(&gram, &moment); err != nil {
		// Singular without regularisation, e.g. collinear features at alpha 0; take the minimum norm solution.
		var svd mat.SVD
		if !svd.Factorize(&gram, mat.SVDThin) {
			return errors.Wrap(err, "ridge could not solve the normal equations")
		}
		if rank := svd.Rank(rankTolerance); rank > 0 {
			svd.SolveVecTo(coef, &moment, rank)
		} else {
			coef.Zero()
		}
	}

	r.coef = coef
	r.intercept = 0
	if r.fitIntercept {
		r.intercept = yMean - floats.Dot(means, mat.Col(nil, 0, coef))
	}
	return nil
}

// Predict returns the predicted value of each row of X.
func (r *Ridge) Predict(X mat.Matrix) ([]float64, error) {
	if r.coef == nil {
		return nil, ErrNotFitted
	}
	if err := checkFeatures(X, r.coef.Len()); err != nil {
		return nil, err
	}
	var out mat.VecDense
	out.MulVec(X, r.coef)
	predictions := mat.Col(nil, 0, &out)
	floats.AddConst(r.intercept, predictions)
	return predictions, nil
}

// Score is the coefficient of determination (R²) of the predictions on (X, y).
func (r *Ridge) Score(X mat.Matrix, y []float64) (float64, error) {
	if err := checkLabels(X, y); err != nil {
		return 0, err
	}
	predictions, err := r.Predict(X)
	if err != nil {
		return 0, err
	}
	return eval.RSquared.Score(y, predictions), nil
}
