package output_test

import (
	"encoding/json"
	"github.com/hscells/sweep/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

var (
	values  = []string{"1", "5"}
	headers = []string{"train", "validation", "test"}
	data    = [][]float64{{1, 0.9}, {0.5, 0.75}, {0.25, 0.5}}
)

func TestBasicFormatter(t *testing.T) {
	s, err := output.BasicFormatter(values, headers, data)
	require.NoError(t, err)
	assert.Equal(t, `value  train  validation  test
1      1.000  0.500       0.250
5      0.900  0.750       0.500
`, s)
}

func TestCsvFormatter(t *testing.T) {
	s, err := output.CsvFormatter(values, headers, data)
	require.NoError(t, err)
	assert.Equal(t, "value,train,validation,test\n1,1,0.5,0.25\n5,0.9,0.75,0.5\n", s)
}

func TestJsonFormatter(t *testing.T) {
	s, err := output.JsonFormatter(values, headers, data)
	require.NoError(t, err)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "5", rows[1]["value"])
	assert.Equal(t, 0.75, rows[1]["validation"])
}

func TestFormatterByName(t *testing.T) {
	for _, name := range []string{"basic", "csv", "json", ""} {
		f, err := output.FormatterByName(name)
		assert.NoError(t, err)
		assert.NotNil(t, f)
	}
	_, err := output.FormatterByName("xml")
	assert.Error(t, err)
}
