package dataset

import (
	"encoding/csv"
	"github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Loader reads datasets from CSV files. Each line is one sample; all columns are numeric and one of them (the
// first or the last) is the label. Parsed files are kept in an LRU cache so loading the same file twice does not
// parse it again.
type Loader struct {
	labelFirst bool
	header     bool
	comma      rune
	progress   bool

	cache *lru.Cache
}

// LoaderLabelFirst sets whether the label is the first column instead of the last.
func LoaderLabelFirst(first bool) func(l *Loader) {
	return func(l *Loader) {
		l.labelFirst = first
	}
}

// LoaderHeader sets whether the first line of each file is a header that should be skipped.
func LoaderHeader(header bool) func(l *Loader) {
	return func(l *Loader) {
		l.header = header
	}
}

// LoaderComma sets the field delimiter.
func LoaderComma(comma rune) func(l *Loader) {
	return func(l *Loader) {
		l.comma = comma
	}
}

// LoaderProgress shows a progress bar while rows are parsed.
func LoaderProgress(progress bool) func(l *Loader) {
	return func(l *Loader) {
		l.progress = progress
	}
}

// NewLoader creates a loader that caches up to size parsed files.
func NewLoader(size int, options ...func(l *Loader)) (*Loader, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	l := &Loader{
		comma: ',',
		cache: cache,
	}
	for _, option := range options {
		option(l)
	}
	return l, nil
}

// Load reads the dataset at path, or returns the copy already parsed. Cached datasets are shared and must not be
// modified.
func (l *Loader) Load(path string) (Dataset, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}
	if d, ok := l.cache.Get(key); ok {
		return d.(Dataset), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "could not open dataset %s", path)
	}
	defer f.Close()

	d, err := l.Read(f)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "could not read dataset %s", path)
	}
	l.cache.Add(key, d)
	return d, nil
}

// Read parses a dataset from r without caching it.
func (l *Loader) Read(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = l.comma
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return Dataset{}, err
	}
	line := 1
	if l.header && len(records) > 0 {
		records = records[1:]
		line++
	}

	var bar *pb.ProgressBar
	if l.progress {
		bar = pb.StartNew(len(records))
	}

	rows := make([][]float64, len(records))
	labels := make([]float64, len(records))
	for i, record := range records {
		if len(record) < 2 {
			return Dataset{}, errors.Errorf("line %d needs at least one feature and a label", i+line)
		}
		values := make([]float64, len(record))
		for j, field := range record {
			values[j], err = strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return Dataset{}, errors.Wrapf(err, "line %d column %d", i+line, j+1)
			}
		}
		if l.labelFirst {
			labels[i], rows[i] = values[0], values[1:]
		} else {
			labels[i], rows[i] = values[len(values)-1], values[:len(values)-1]
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	return New(rows, labels)
}
