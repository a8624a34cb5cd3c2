// Package output provides the charts, score tables and reports produced by a sweep.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"github.com/mailru/easyjson/jwriter"
	"github.com/pkg/errors"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Formatter renders a table of scores with one row per parameter value and one column per header; data[i][j] is the
// score under headers[i] for values[j]. These should not be used with ragged data.
type Formatter func(values, headers []string, data [][]float64) (string, error)

// BasicFormatter outputs the table as aligned plain text.
func BasicFormatter(values, headers []string, data [][]float64) (string, error) {
	var b bytes.Buffer
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "value\t%s\n", strings.Join(headers, "\t"))
	for j, value := range values {
		record := make([]string, len(data))
		for i := range data {
			record[i] = strconv.FormatFloat(data[i][j], 'f', 3, 64)
		}
		fmt.Fprintf(w, "%s\t%s\n", value, strings.Join(record, "\t"))
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// CsvFormatter outputs the table in CSV format.
func CsvFormatter(values, headers []string, data [][]float64) (string, error) {
	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	h := []string{"value"}
	h = append(h, headers...)
	if err := w.Write(h); err != nil {
		return "", err
	}
	for j, value := range values {
		record := make([]string, len(data)+1)
		record[0] = value
		for i := range data {
			record[i+1] = strconv.FormatFloat(data[i][j], 'f', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}

// JsonFormatter outputs the table as a JSON array with one object per parameter value, in order.
func JsonFormatter(values, headers []string, data [][]float64) (string, error) {
	w := jwriter.Writer{}
	w.RawByte('[')
	for j, value := range values {
		if j > 0 {
			w.RawByte(',')
		}
		w.RawString(`{"value":`)
		w.String(value)
		for i, header := range headers {
			w.RawByte(',')
			w.String(header)
			w.RawByte(':')
			w.Float64(data[i][j])
		}
		w.RawByte('}')
	}
	w.RawByte(']')
	b, err := w.BuildBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FormatterByName looks up a formatter by the name used on the command line.
func FormatterByName(name string) (Formatter, error) {
	switch name {
	case "basic", "":
		return BasicFormatter, nil
	case "csv":
		return CsvFormatter, nil
	case "json":
		return JsonFormatter, nil
	}
	return nil, errors.Errorf("unknown output format %q", name)
}
