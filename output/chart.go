package output

import (
	"fmt"
	"github.com/hscells/sweep/dataset"
	"github.com/hscells/sweep/learning"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"image/color"
	"io"
)

var (
	// TrainColour is the colour of the training curve.
	TrainColour color.Color = color.RGBA{G: 128, A: 255}
	// ValidationColour is the colour of the validation curve.
	ValidationColour color.Color = color.RGBA{R: 255, A: 255}
	// TestColour is the colour of the test curve.
	TestColour color.Color = color.Black
)

// PlotEstimatorScores plots the training, validation and test scores of a list of estimators trained by
// learning.TrainEstimators, where param and values are the varying parameter of the sweep. The estimator with the
// best validation score is highlighted with an x, and its three scores are listed in the lower right corner.
//
// The chart is returned for the caller to show or save. If there are no estimators, no chart is made.
func PlotEstimatorScores(estimators []learning.Estimator, param string, values []interface{}, train, test, validation dataset.Dataset) (*plot.Plot, error) {
	scores, err := ScoreSets(estimators, train, test, validation)
	if err != nil {
		return nil, err
	}
	return PlotScores(estimators[0].Name(), param, values, scores)
}

// PlotScores draws already computed scores of the estimator type called name. There must be one value per score in
// each set, and Best must index them.
func PlotScores(name, param string, values []interface{}, scores EstimatorScores) (*plot.Plot, error) {
	if len(scores.Validation) == 0 {
		return nil, ErrEmptySequence
	}
	n := len(scores.Validation)
	if len(scores.Train) != n || len(scores.Test) != n {
		return nil, errors.Errorf("score sets have different lengths: train %d, validation %d, test %d", len(scores.Train), n, len(scores.Test))
	}
	if len(values) != n {
		return nil, errors.Errorf("there are %d scores but %d parameter values", n, len(values))
	}
	if scores.Best < 0 || scores.Best >= n {
		return nil, errors.Errorf("best index %d is out of range for %d scores", scores.Best, n)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Score vs %s", name, param)
	p.X.Label.Text = param
	p.Y.Label.Text = "score"

	trainLine, trainPoints, err := scoreCurve(scores.Train, TrainColour)
	if err != nil {
		return nil, err
	}
	validationLine, validationPoints, err := scoreCurve(scores.Validation, ValidationColour)
	if err != nil {
		return nil, err
	}
	testLine, err := plotter.NewLine(indexed(scores.Test))
	if err != nil {
		return nil, err
	}
	testLine.Color = TestColour
	testLine.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	best, err := plotter.NewScatter(plotter.XYs{{X: float64(scores.Best), Y: scores.Validation[scores.Best]}})
	if err != nil {
		return nil, err
	}
	best.Color = ValidationColour
	best.Shape = draw.CrossGlyph{}
	best.Radius = vg.Points(6)

	p.Add(trainLine, trainPoints, validationLine, validationPoints, testLine, best)
	p.NominalX(learning.ValueLabels(values)...)

	p.Legend.Add("train", trainLine, trainPoints)
	p.Legend.Add("validate", validationLine, validationPoints)
	p.Legend.Add("test", testLine)
	p.Legend.Top = true
	p.Legend.Left = true

	p.Add(newScoreLegend(scores))
	return p, nil
}

// WriteChart renders the chart in the given format (png, svg, pdf, ...) to w.
func WriteChart(p *plot.Plot, w io.Writer, width, height vg.Length, format string) error {
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveChart saves the chart to path in the format named by its extension.
func SaveChart(p *plot.Plot, path string, width, height vg.Length) error {
	return p.Save(width, height, path)
}

func indexed(scores []float64) plotter.XYs {
	xys := make(plotter.XYs, len(scores))
	for i, s := range scores {
		xys[i].X = float64(i)
		xys[i].Y = s
	}
	return xys
}

// scoreCurve is a solid line with a circle at each score.
func scoreCurve(scores []float64, c color.Color) (*plotter.Line, *plotter.Scatter, error) {
	line, points, err := plotter.NewLinePoints(indexed(scores))
	if err != nil {
		return nil, nil, err
	}
	line.Color = c
	points.Color = c
	points.Shape = draw.CircleGlyph{}
	return line, points, nil
}

// ScoreLegend is the text of the score legend: the three scores of the best estimator.
func ScoreLegend(scores EstimatorScores) []string {
	i := scores.Best
	return []string{
		fmt.Sprintf("train = %.3f", scores.Train[i]),
		fmt.Sprintf("val = %.3f", scores.Validation[i]),
		fmt.Sprintf("test = %.3f", scores.Test[i]),
	}
}

// scoreLegend is drawn as coloured text in the lower right of the data area, leaving the plot's own legend in place.
type scoreLegend struct {
	lines   []string
	colours []color.Color
	padding vg.Length
}

func newScoreLegend(scores EstimatorScores) scoreLegend {
	return scoreLegend{
		lines:   ScoreLegend(scores),
		colours: []color.Color{TrainColour, ValidationColour, TestColour},
		padding: vg.Points(5),
	}
}

// Plot implements plot.Plotter.
func (l scoreLegend) Plot(c draw.Canvas, p *plot.Plot) {
	sty := p.Legend.TextStyle
	sty.XAlign = text.XRight
	sty.YAlign = text.YBottom

	pt := vg.Point{X: c.Max.X - l.padding, Y: c.Min.Y + l.padding}
	for i := len(l.lines) - 1; i >= 0; i-- {
		sty.Color = l.colours[i]
		c.FillText(sty, pt, l.lines[i])
		pt.Y += sty.Height(l.lines[i])
	}
}
