package learning

import (
	"fmt"
	"github.com/hscells/sweep/eval"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"math/rand"
	"sort"
)

// DecisionTreeClassifier is a CART classification tree that splits on Gini impurity.
type DecisionTreeClassifier struct {
	params Params

	maxDepth        int
	minSamplesSplit int
	minSamplesLeaf  int
	splitter        string
	seed            int64

	classes  []float64
	features int
	root     *treeNode
}

type treeNode struct {
	leaf  bool
	class int

	feature     int
	threshold   float64
	left, right *treeNode
}

// split is a candidate partition of the samples at a node.
type split struct {
	feature   int
	threshold float64
	impurity  float64
}

// NewDecisionTreeClassifier creates a new untrained tree. It understands max_depth (0 or nil for no limit),
// min_samples_split, min_samples_leaf, splitter ("best" or "random") and seed.
func NewDecisionTreeClassifier(params Params) (*DecisionTreeClassifier, error) {
	if err := params.allow("DecisionTreeClassifier", "max_depth", "min_samples_split", "min_samples_leaf", "splitter", "seed"); err != nil {
		return nil, err
	}
	t := &DecisionTreeClassifier{params: params}
	var (
		err  error
		seed int
	)
	if t.maxDepth, err = params.Int("max_depth", 0); err != nil {
		return nil, err
	}
	if t.minSamplesSplit, err = params.Int("min_samples_split", 2); err != nil {
		return nil, err
	}
	if t.minSamplesLeaf, err = params.Int("min_samples_leaf", 1); err != nil {
		return nil, err
	}
	if t.splitter, err = params.Choice("splitter", "best", "best", "random"); err != nil {
		return nil, err
	}
	if seed, err = params.Int("seed", 0); err != nil {
		return nil, err
	}
	t.seed = int64(seed)

	if t.maxDepth < 0 {
		return nil, errors.Errorf("max_depth must be non-negative, got %d", t.maxDepth)
	}
	if t.minSamplesSplit < 2 {
		return nil, errors.Errorf("min_samples_split must be at least 2, got %d", t.minSamplesSplit)
	}
	if t.minSamplesLeaf < 1 {
		return nil, errors.Errorf("min_samples_leaf must be at least 1, got %d", t.minSamplesLeaf)
	}
	return t, nil
}

func (t *DecisionTreeClassifier) Name() string {
	return "DecisionTreeClassifier"
}

func (t *DecisionTreeClassifier) Params() Params {
	return t.params
}

func (t *DecisionTreeClassifier) String() string {
	return fmt.Sprintf("%s(%s)", t.Name(), t.params)
}

// Depth is the depth of the fitted tree; a tree that is a single leaf has depth 0.
func (t *DecisionTreeClassifier) Depth() int {
	return t.root.depth()
}

func (n *treeNode) depth() int {
	if n == nil || n.leaf {
		return 0
	}
	l, r := n.left.depth(), n.right.depth()
	if l > r {
		return l + 1
	}
	return r + 1
}

// Fit grows the tree on (X, y). Refitting replaces the previous tree.
func (t *DecisionTreeClassifier) Fit(X mat.Matrix, y []float64) error {
	if err := checkShape(X, y); err != nil {
		return err
	}
	rows, features := X.Dims()

	t.classes = uniqueSorted(y)
	labels := make([]int, len(y))
	for i, v := range y {
		labels[i] = sort.SearchFloat64s(t.classes, v)
	}

	samples := make([][]float64, rows)
	indices := make([]int, rows)
	for i := range samples {
		samples[i] = mat.Row(nil, i, X)
		indices[i] = i
	}

	g := grower{
		tree:    t,
		samples: samples,
		labels:  labels,
		rng:     rand.New(rand.NewSource(t.seed)),
	}
	t.features = features
	t.root = g.grow(indices, 0)
	return nil
}

// Predict returns the predicted class of each row of X.
func (t *DecisionTreeClassifier) Predict(X mat.Matrix) ([]float64, error) {
	if t.root == nil {
		return nil, ErrNotFitted
	}
	if err := checkFeatures(X, t.features); err != nil {
		return nil, err
	}
	rows, _ := X.Dims()
	predictions := make([]float64, rows)
	row := make([]float64, t.features)
	for i := range predictions {
		mat.Row(row, i, X)
		predictions[i] = t.classes[t.root.predict(row)]
	}
	return predictions, nil
}

func (n *treeNode) predict(row []float64) int {
	for !n.leaf {
		if row[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.class
}

// Score is the mean accuracy of the tree on (X, y).
func (t *DecisionTreeClassifier) Score(X mat.Matrix, y []float64) (float64, error) {
	if err := checkLabels(X, y); err != nil {
		return 0, err
	}
	predictions, err := t.Predict(X)
	if err != nil {
		return 0, err
	}
	return eval.Accuracy.Score(y, predictions), nil
}

// grower holds the state needed while a tree is grown.
type grower struct {
	tree    *DecisionTreeClassifier
	samples [][]float64
	labels  []int
	rng     *rand.Rand
}

func (g grower) distribution(indices []int) []float64 {
	dist := make([]float64, len(g.tree.classes))
	for _, i := range indices {
		dist[g.labels[i]]++
	}
	return dist
}

func (g grower) grow(indices []int, depth int) *treeNode {
	dist := g.distribution(indices)
	// MaxIdx takes the first maximum, so ties go to the smallest class.
	node := &treeNode{leaf: true, class: floats.MaxIdx(dist)}

	t := g.tree
	if gini(dist, float64(len(indices))) == 0 ||
		len(indices) < t.minSamplesSplit ||
		(t.maxDepth > 0 && depth >= t.maxDepth) {
		return node
	}

	best, ok := g.bestSplit(indices)
	if !ok {
		return node
	}

	var left, right []int
	for _, i := range indices {
		if g.samples[i][best.feature] <= best.threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	node.leaf = false
	node.feature = best.feature
	node.threshold = best.threshold
	node.left = g.grow(left, depth+1)
	node.right = g.grow(right, depth+1)
	return node
}

func (g grower) bestSplit(indices []int) (split, bool) {
	var (
		best  split
		found bool
	)
	features := make([]int, len(g.samples[0]))
	for j := range features {
		features[j] = j
	}
	if g.tree.splitter == "random" {
		g.rng.Shuffle(len(features), func(i, j int) {
			features[i], features[j] = features[j], features[i]
		})
	}

	for _, j := range features {
		var (
			candidate split
			ok        bool
		)
		if g.tree.splitter == "random" {
			candidate, ok = g.randomSplit(indices, j)
		} else {
			candidate, ok = g.bestFeatureSplit(indices, j)
		}
		if ok && (!found || candidate.impurity < best.impurity) {
			best = candidate
			found = true
		}
	}
	return best, found
}

// bestFeatureSplit scans the samples sorted by feature j and finds the threshold with the lowest weighted impurity.
func (g grower) bestFeatureSplit(indices []int, j int) (split, bool) {
	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.SliceStable(sorted, func(a, b int) bool {
		return g.samples[sorted[a]][j] < g.samples[sorted[b]][j]
	})

	n := float64(len(sorted))
	right := g.distribution(sorted)
	left := make([]float64, len(right))
	minLeaf := g.tree.minSamplesLeaf

	var (
		best  split
		found bool
	)
	for k := 0; k < len(sorted)-1; k++ {
		c := g.labels[sorted[k]]
		left[c]++
		right[c]--

		v, next := g.samples[sorted[k]][j], g.samples[sorted[k+1]][j]
		if v == next {
			continue
		}
		nl := float64(k + 1)
		nr := n - nl
		if k+1 < minLeaf || len(sorted)-k-1 < minLeaf {
			continue
		}
		impurity := (nl*gini(left, nl) + nr*gini(right, nr)) / n
		if !found || impurity < best.impurity {
			best = split{feature: j, threshold: (v + next) / 2, impurity: impurity}
			found = true
		}
	}
	return best, found
}

// randomSplit draws a threshold uniformly between the smallest and largest value of feature j.
func (g grower) randomSplit(indices []int, j int) (split, bool) {
	lo, hi := g.samples[indices[0]][j], g.samples[indices[0]][j]
	for _, i := range indices[1:] {
		v := g.samples[i][j]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return split{}, false
	}
	threshold := lo + g.rng.Float64()*(hi-lo)

	left := make([]float64, len(g.tree.classes))
	right := make([]float64, len(g.tree.classes))
	var nl, nr float64
	for _, i := range indices {
		if g.samples[i][j] <= threshold {
			left[g.labels[i]]++
			nl++
		} else {
			right[g.labels[i]]++
			nr++
		}
	}
	minLeaf := float64(g.tree.minSamplesLeaf)
	if nl < minLeaf || nr < minLeaf {
		return split{}, false
	}
	return split{feature: j, threshold: threshold, impurity: (nl*gini(left, nl) + nr*gini(right, nr)) / (nl + nr)}, true
}

func gini(dist []float64, n float64) float64 {
	if n == 0 {
		return 0
	}
	var sq float64
	for _, c := range dist {
		sq += c * c
	}
	return 1 - sq/(n*n)
}

func uniqueSorted(y []float64) []float64 {
	classes := make([]float64, len(y))
	copy(classes, y)
	sort.Float64s(classes)
	unique := classes[:0]
	for i, v := range classes {
		if i == 0 || v != classes[i-1] {
			unique = append(unique, v)
		}
	}
	return unique
}
