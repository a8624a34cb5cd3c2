package eval

// Evaluator is an interface for scoring a set of predictions against the true labels.
type Evaluator interface {
	Score(truth, predicted []float64) float64
	Name() string
}

// Evaluate scores predictions using the supplied evaluators, keyed by evaluator name.
func Evaluate(evaluators []Evaluator, truth, predicted []float64) map[string]float64 {
	scores := make(map[string]float64, len(evaluators))
	for _, evaluator := range evaluators {
		scores[evaluator.Name()] = evaluator.Score(truth, predicted)
	}
	return scores
}

func checkLength(truth, predicted []float64) {
	if len(truth) != len(predicted) {
		panic("eval: truth and predicted are not equal length")
	}
}
