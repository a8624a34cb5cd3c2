package main

import (
	"fmt"
	"github.com/alexflint/go-arg"
	"github.com/go-errors/errors"
	"github.com/hscells/sweep"
	"github.com/hscells/sweep/config"
	"github.com/hscells/sweep/dataset"
	"github.com/hscells/sweep/learning"
	"github.com/hscells/sweep/output"
	"github.com/hscells/sweep/pipeline"
	"gonum.org/v1/plot/vg"
	"log"
	"os"
	"strings"
)

type args struct {
	Config   string `arg:"required" help:"path to the sweep properties file"`
	Chart    string `help:"path to save the chart to (overrides chart.path)"`
	Reports  string `help:"directory to store score reports in (overrides report.dir)"`
	Format   string `help:"format of the score table (basic, csv, json)"`
	Progress bool   `help:"show a progress bar while datasets are parsed"`
}

func (args) Version() string {
	return "sweep 17.Oct.2026"
}

func (args) Description() string {
	return `train, score and plot an estimator for every value of a parameter`
}

func main() {
	var args args
	arg.MustParse(&args)

	if err := run(args); err != nil {
		fmt.Println(errors.Wrap(err, 0).ErrorStack())
		os.Exit(1)
	}
}

func run(args args) error {
	log.Printf("loading config %s...\n", args.Config)
	c, err := config.Load(args.Config)
	if err != nil {
		return err
	}
	if len(args.Chart) > 0 {
		c.ChartPath = args.Chart
	}
	if len(args.Reports) > 0 {
		c.ReportDir = args.Reports
	}

	factory, err := learning.FactoryByName(c.Estimator)
	if err != nil {
		return err
	}
	formatter, err := output.FormatterByName(args.Format)
	if err != nil {
		return err
	}

	log.Println("loading datasets...")
	loader, err := dataset.NewLoader(3,
		dataset.LoaderLabelFirst(c.Data.LabelFirst),
		dataset.LoaderHeader(c.Data.Header),
		dataset.LoaderProgress(args.Progress))
	if err != nil {
		return err
	}
	datasets, err := sweep.LoadDatasets(c.Data, loader)
	if err != nil {
		return err
	}

	components := []func() interface{}{sweep.ScoreOutput(formatter)}
	if len(c.ChartPath) > 0 {
		components = append(components, sweep.ChartOutput(c.ChartPath, vg.Length(c.ChartWidth)*vg.Inch, vg.Length(c.ChartHeight)*vg.Inch))
	}
	if len(c.ReportDir) > 0 {
		components = append(components, sweep.ReportOutput(output.NewStore(c.ReportDir)))
	}
	p := sweep.NewSweepPipeline(factory, c.Sweep, datasets, components...)

	results := make(chan pipeline.Result)
	go p.Execute(results)
	for result := range results {
		switch result.Type {
		case pipeline.Scored:
			for _, s := range result.Formatted {
				fmt.Println(strings.TrimRight(s, "\n"))
			}
		case pipeline.Reported:
			log.Printf("stored report %s\n", result.Report.ID)
		case pipeline.Error:
			return result.Error
		case pipeline.Done:
			log.Println("done!")
		}
	}
	return nil
}
