// Package config reads sweep descriptions from properties files.
//
// A sweep description names the estimator type, the parameter to vary and its values, and where the data comes from:
//
//	estimator = tree
//	param = max_depth
//	values = 1, 5, 10
//	fixed.splitter = random
//	fixed.seed = 0
//	data.train = train.csv
//	data.validation = validation.csv
//	data.test = test.csv
//	chart.path = max_depth.png
//
// Instead of three files, data.all may name a single file that is split with split.train, split.validation and
// split.seed.
package config

import (
	"github.com/hscells/sweep/learning"
	"github.com/magiconair/properties"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// Data describes where the training, validation and test sets are read from.
type Data struct {
	Train      string
	Validation string
	Test       string

	// All is split into the three sets when it is set.
	All                string
	TrainFraction      float64
	ValidationFraction float64
	Seed               int64

	LabelFirst bool
	Header     bool
}

// Config is a complete sweep description.
type Config struct {
	Estimator string
	Sweep     learning.Sweep
	Data      Data

	ChartPath   string
	ChartWidth  float64
	ChartHeight float64

	ReportDir string
}

// Load reads a sweep description from a properties file.
func Load(path string) (Config, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not load config %s", path)
	}
	return fromProperties(p)
}

// Parse reads a sweep description from the contents of a properties file.
func Parse(s string) (Config, error) {
	p, err := properties.LoadString(s)
	if err != nil {
		return Config{}, err
	}
	return fromProperties(p)
}

func fromProperties(p *properties.Properties) (Config, error) {
	var c Config
	for _, key := range []string{"estimator", "param", "values"} {
		if _, ok := p.Get(key); !ok {
			return Config{}, errors.Errorf("config is missing %s", key)
		}
	}
	c.Estimator = p.MustGetString("estimator")

	c.Sweep.Param = strings.TrimSpace(p.MustGetString("param"))
	for _, v := range strings.Split(p.MustGetString("values"), ",") {
		v = strings.TrimSpace(v)
		if len(v) == 0 {
			continue
		}
		c.Sweep.Values = append(c.Sweep.Values, Value(v))
	}
	if len(c.Sweep.Values) == 0 {
		return Config{}, errors.New("config has no values to sweep")
	}

	fixed := p.FilterStripPrefix("fixed.")
	for _, key := range fixed.Keys() {
		c.Sweep.Fixed = append(c.Sweep.Fixed, learning.Param{Name: key, Value: Value(fixed.MustGetString(key))})
	}

	r := &reader{p: p}
	c.Data = Data{
		Train:              p.GetString("data.train", ""),
		Validation:         p.GetString("data.validation", ""),
		Test:               p.GetString("data.test", ""),
		All:                p.GetString("data.all", ""),
		TrainFraction:      r.float("split.train", 0.6),
		ValidationFraction: r.float("split.validation", 0.2),
		Seed:               r.int("split.seed", 0),
		Header:             r.bool("data.header", false),
	}
	switch label := p.GetString("data.label", "last"); label {
	case "first":
		c.Data.LabelFirst = true
	case "last":
	default:
		return Config{}, errors.Errorf("data.label must be first or last, got %q", label)
	}
	if len(c.Data.All) == 0 && (len(c.Data.Train) == 0 || len(c.Data.Validation) == 0 || len(c.Data.Test) == 0) {
		return Config{}, errors.New("config needs data.all or all of data.train, data.validation and data.test")
	}

	c.ChartPath = p.GetString("chart.path", "")
	c.ChartWidth = r.float("chart.width", 6)
	c.ChartHeight = r.float("chart.height", 4)
	c.ReportDir = p.GetString("report.dir", "")
	if r.err != nil {
		return Config{}, r.err
	}
	return c, nil
}

// reader reads optional typed keys. A key that is present but does not parse is an error rather than the default;
// only the first such error is kept.
type reader struct {
	p   *properties.Properties
	err error
}

func (r *reader) get(key string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	v, ok := r.p.Get(key)
	return strings.TrimSpace(v), ok
}

func (r *reader) float(key string, def float64) float64 {
	v, ok := r.get(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.err = errors.Errorf("%s must be a number, got %q", key, v)
		return def
	}
	return f
}

func (r *reader) int(key string, def int64) int64 {
	v, ok := r.get(key)
	if !ok {
		return def
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.err = errors.Errorf("%s must be an integer, got %q", key, v)
		return def
	}
	return i
}

// bool accepts the same words properties does for true, and their opposites for false.
func (r *reader) bool(key string, def bool) bool {
	v, ok := r.get(key)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	r.err = errors.Errorf("%s must be true or false, got %q", key, v)
	return def
}

// Value types a value read from a properties file: an int if it parses as one, then a float, then true or false, and
// otherwise the string itself.
func Value(s string) interface{} {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
