// Package sweep trains an estimator for every value of one parameter, scores the estimators on training, validation
// and test data, and charts and reports the scores.
package sweep

import (
	"github.com/hscells/sweep/config"
	"github.com/hscells/sweep/dataset"
	"github.com/hscells/sweep/learning"
	"github.com/hscells/sweep/output"
	"github.com/hscells/sweep/pipeline"
	"gonum.org/v1/plot/vg"
	"io"
	"log"
	"os"
)

// Datasets are the three disjoint sets a sweep is trained, selected and tested on.
type Datasets struct {
	Train      dataset.Dataset
	Validation dataset.Dataset
	Test       dataset.Dataset
}

// Pipeline contains everything needed to run a sweep and output its results.
type Pipeline struct {
	Factory    learning.Factory
	Sweep      learning.Sweep
	Datasets   Datasets
	Chart      ChartOptions
	Formatters []output.Formatter
	Store      *output.Store
	Progress   io.Writer
}

// ChartOptions specifies where and how large the chart of the scores is saved.
type ChartOptions struct {
	Path   string
	Width  vg.Length
	Height vg.Length
}

type progressOutput struct {
	w io.Writer
}

// ChartOutput saves the chart to path. The format is taken from the extension.
func ChartOutput(path string, width, height vg.Length) func() interface{} {
	return func() interface{} {
		return ChartOptions{
			Path:   path,
			Width:  width,
			Height: height,
		}
	}
}

// ReportOutput puts a report of the scores into the store.
func ReportOutput(store *output.Store) func() interface{} {
	return func() interface{} {
		return store
	}
}

// ScoreOutput formats the table of scores with each of the formatters.
func ScoreOutput(formatters ...output.Formatter) func() interface{} {
	return func() interface{} {
		return formatters
	}
}

// ProgressOutput writes the training progress to w instead of standard output.
func ProgressOutput(w io.Writer) func() interface{} {
	return func() interface{} {
		return progressOutput{w: w}
	}
}

// NewSweepPipeline creates a new sweep pipeline. The estimator type, the sweep and the datasets are required.
// Outputs are provided via the optional functional arguments.
func NewSweepPipeline(factory learning.Factory, sweep learning.Sweep, datasets Datasets, components ...func() interface{}) Pipeline {
	p := Pipeline{
		Factory:  factory,
		Sweep:    sweep,
		Datasets: datasets,
		Progress: os.Stdout,
	}

	for _, component := range components {
		val := component()
		switch v := val.(type) {
		case ChartOptions:
			p.Chart = v
		case *output.Store:
			p.Store = v
		case []output.Formatter:
			p.Formatters = v
		case progressOutput:
			p.Progress = v.w
		}
	}

	return p
}

// LoadDatasets reads the datasets described by the configuration, splitting data.all when it is set.
func LoadDatasets(data config.Data, loader *dataset.Loader) (Datasets, error) {
	if len(data.All) > 0 {
		all, err := loader.Load(data.All)
		if err != nil {
			return Datasets{}, err
		}
		var d Datasets
		d.Train, d.Validation, d.Test, err = dataset.Split(all, data.TrainFraction, data.ValidationFraction, data.Seed)
		return d, err
	}

	var (
		d   Datasets
		err error
	)
	if d.Train, err = loader.Load(data.Train); err != nil {
		return Datasets{}, err
	}
	if d.Validation, err = loader.Load(data.Validation); err != nil {
		return Datasets{}, err
	}
	if d.Test, err = loader.Load(data.Test); err != nil {
		return Datasets{}, err
	}
	return d, nil
}

// Execute runs the sweep, sending the result of each stage to c. The channel is closed once the pipeline has
// completed or an error has been sent.
func (p Pipeline) Execute(c chan pipeline.Result) {
	defer close(c)
	log.Println("starting sweep pipeline...")

	log.Printf("training %d estimators...\n", len(p.Sweep.Values))
	estimators, err := learning.TrainEstimators(p.Datasets.Train.X, p.Datasets.Train.Y, p.Factory, p.Sweep, learning.TrainOutput(p.Progress))
	if err != nil {
		c <- pipeline.Result{
			Error: err,
			Type:  pipeline.Error,
		}
		return
	}
	c <- pipeline.Result{
		Estimators: estimators,
		Type:       pipeline.Trained,
	}

	log.Println("scoring estimators...")
	scores, err := output.ScoreSets(estimators, p.Datasets.Train, p.Datasets.Test, p.Datasets.Validation)
	if err != nil {
		c <- pipeline.Result{
			Error: err,
			Type:  pipeline.Error,
		}
		return
	}

	values := learning.ValueLabels(p.Sweep.Values)
	headers, data := scores.Table()
	formatted := make([]string, len(p.Formatters))
	for i, formatter := range p.Formatters {
		formatted[i], err = formatter(values, headers, data)
		if err != nil {
			c <- pipeline.Result{
				Error: err,
				Type:  pipeline.Error,
			}
			return
		}
	}
	c <- pipeline.Result{
		Scores:    scores,
		Formatted: formatted,
		Type:      pipeline.Scored,
	}

	if len(p.Chart.Path) > 0 {
		log.Printf("plotting scores to %s...\n", p.Chart.Path)
		chart, err := output.PlotScores(p.Factory.Name(), p.Sweep.Param, p.Sweep.Values, scores)
		if err != nil {
			c <- pipeline.Result{
				Error: err,
				Type:  pipeline.Error,
			}
			return
		}
		if err := output.SaveChart(chart, p.Chart.Path, p.Chart.Width, p.Chart.Height); err != nil {
			c <- pipeline.Result{
				Error: err,
				Type:  pipeline.Error,
			}
			return
		}
		c <- pipeline.Result{
			Chart: chart,
			Type:  pipeline.Plotted,
		}
	}

	if p.Store != nil {
		report := output.NewReport(p.Factory.Name(), p.Sweep.Param, values, scores)
		log.Printf("storing report %s...\n", report.ID)
		if err := p.Store.Put(report); err != nil {
			c <- pipeline.Result{
				Error: err,
				Type:  pipeline.Error,
			}
			return
		}
		c <- pipeline.Result{
			Report: report,
			Type:   pipeline.Reported,
		}
	}

	c <- pipeline.Result{
		Type: pipeline.Done,
	}
}
