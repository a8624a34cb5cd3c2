package output

import (
	"github.com/google/uuid"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// Report is the summary of one sweep run: what was swept and how every configuration scored.
type Report struct {
	ID         uuid.UUID
	Estimator  string
	Param      string
	Values     []string
	Train      []float64
	Validation []float64
	Test       []float64
	Best       int
}

// NewReport creates a report for a sweep run under a new random ID.
func NewReport(estimator, param string, values []string, scores EstimatorScores) Report {
	return Report{
		ID:         uuid.New(),
		Estimator:  estimator,
		Param:      param,
		Values:     values,
		Train:      scores.Train,
		Validation: scores.Validation,
		Test:       scores.Test,
		Best:       scores.Best,
	}
}

// Scores are the scores of the report.
func (r Report) Scores() EstimatorScores {
	return EstimatorScores{Train: r.Train, Validation: r.Validation, Test: r.Test, Best: r.Best}
}

// MarshalEasyJSON writes the report as a JSON object.
func (r Report) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"id":`)
	w.String(r.ID.String())
	w.RawString(`,"estimator":`)
	w.String(r.Estimator)
	w.RawString(`,"param":`)
	w.String(r.Param)
	w.RawString(`,"values":`)
	w.RawByte('[')
	for i, v := range r.Values {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(v)
	}
	w.RawByte(']')
	for _, f := range []struct {
		name   string
		scores []float64
	}{{"train", r.Train}, {"validation", r.Validation}, {"test", r.Test}} {
		w.RawString(`,"` + f.name + `":`)
		writeFloats(w, f.scores)
	}
	w.RawString(`,"best":`)
	w.Int(r.Best)
	w.RawByte('}')
}

func writeFloats(w *jwriter.Writer, fs []float64) {
	w.RawByte('[')
	for i, f := range fs {
		if i > 0 {
			w.RawByte(',')
		}
		w.Float64(f)
	}
	w.RawByte(']')
}

// MarshalJSON implements json.Marshaler.
func (r Report) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	r.MarshalEasyJSON(&w)
	return w.BuildBytes()
}

// UnmarshalEasyJSON reads a report written by MarshalEasyJSON. Unknown fields are skipped.
func (r *Report) UnmarshalEasyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "id":
			id, err := uuid.Parse(in.String())
			if err != nil {
				in.AddError(err)
			}
			r.ID = id
		case "estimator":
			r.Estimator = in.String()
		case "param":
			r.Param = in.String()
		case "values":
			r.Values = nil
			in.Delim('[')
			for !in.IsDelim(']') {
				r.Values = append(r.Values, in.String())
				in.WantComma()
			}
			in.Delim(']')
		case "train":
			r.Train = readFloats(in)
		case "validation":
			r.Validation = readFloats(in)
		case "test":
			r.Test = readFloats(in)
		case "best":
			r.Best = in.Int()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func readFloats(in *jlexer.Lexer) []float64 {
	var fs []float64
	in.Delim('[')
	for !in.IsDelim(']') {
		fs = append(fs, in.Float64())
		in.WantComma()
	}
	in.Delim(']')
	return fs
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Report) UnmarshalJSON(data []byte) error {
	in := jlexer.Lexer{Data: data}
	r.UnmarshalEasyJSON(&in)
	return in.Error()
}
