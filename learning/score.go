package learning

import "gonum.org/v1/gonum/mat"

// ScoreEstimators scores each estimator on (X, y), returning the scores in the same order as the estimators.
func ScoreEstimators(X mat.Matrix, y []float64, estimators []Estimator) ([]float64, error) {
	scores := make([]float64, len(estimators))
	for i, estimator := range estimators {
		score, err := estimator.Score(X, y)
		if err != nil {
			return nil, err
		}
		scores[i] = score
	}
	return scores, nil
}
