// Package dataset contains the feature matrices and labels that estimators are trained and scored on, and ways
// to load and split them.
package dataset

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"math/rand"
)

// Dataset is a feature matrix paired with one label per row.
type Dataset struct {
	X *mat.Dense
	Y []float64
}

// New creates a dataset from rows of features and their labels. Every row must have the same number of features.
func New(rows [][]float64, labels []float64) (Dataset, error) {
	if len(rows) == 0 {
		return Dataset{}, errors.New("dataset has no rows")
	}
	if len(rows) != len(labels) {
		return Dataset{}, errors.Errorf("dataset has %d rows but %d labels", len(rows), len(labels))
	}
	features := len(rows[0])
	if features == 0 {
		return Dataset{}, errors.New("dataset has no features")
	}
	data := make([]float64, 0, len(rows)*features)
	for i, row := range rows {
		if len(row) != features {
			return Dataset{}, errors.Errorf("row %d has %d features, expected %d", i, len(row), features)
		}
		data = append(data, row...)
	}
	y := make([]float64, len(labels))
	copy(y, labels)
	return Dataset{X: mat.NewDense(len(rows), features, data), Y: y}, nil
}

// Rows is the number of samples in the dataset.
func (d Dataset) Rows() int {
	if d.X == nil {
		return 0
	}
	r, _ := d.X.Dims()
	return r
}

// Features is the number of features of each sample.
func (d Dataset) Features() int {
	if d.X == nil {
		return 0
	}
	_, c := d.X.Dims()
	return c
}

// Subset creates a new dataset from the given rows, in the order given.
func (d Dataset) Subset(indices []int) (Dataset, error) {
	if len(indices) == 0 {
		return Dataset{}, errors.New("cannot take an empty subset")
	}
	s := Dataset{
		X: mat.NewDense(len(indices), d.Features(), nil),
		Y: make([]float64, len(indices)),
	}
	for i, j := range indices {
		if j < 0 || j >= d.Rows() {
			return Dataset{}, errors.Errorf("row %d is out of range", j)
		}
		s.X.SetRow(i, d.X.RawRowView(j))
		s.Y[i] = d.Y[j]
	}
	return s, nil
}

// Split shuffles d with a seeded source and cuts it into disjoint training, validation and test sets. The test set
// receives whatever the training and validation fractions leave over; each set must end up with at least one row.
func Split(d Dataset, trainFraction, validationFraction float64, seed int64) (train, validation, test Dataset, err error) {
	if trainFraction <= 0 || validationFraction <= 0 || trainFraction+validationFraction >= 1 {
		err = errors.Errorf("split fractions %v and %v must be positive and leave room for a test set", trainFraction, validationFraction)
		return
	}
	n := d.Rows()
	nTrain := int(float64(n) * trainFraction)
	nValidation := int(float64(n) * validationFraction)
	if nTrain == 0 || nValidation == 0 || n-nTrain-nValidation == 0 {
		err = errors.Errorf("%d rows are too few to split %v/%v", n, trainFraction, validationFraction)
		return
	}

	order := rand.New(rand.NewSource(seed)).Perm(n)
	if train, err = d.Subset(order[:nTrain]); err != nil {
		return
	}
	if validation, err = d.Subset(order[nTrain : nTrain+nValidation]); err != nil {
		return
	}
	test, err = d.Subset(order[nTrain+nValidation:])
	return
}
