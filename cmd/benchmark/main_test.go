package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erelsgl/sat/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	encoder, err := model.NewTeamEncoder(model.DefaultConfig(), nil)
	assert.Nil(t, err)

	result, err := measure(encoder, 3)

	assert.Nil(t, err)
	assert.Equal(t, uint64(3), result.Candidates)
	assert.Equal(t, uint64(27), result.Variables)
	assert.Equal(t, uint64(30), result.Clauses)
	assert.Greater(t, result.Size, float32(0))
}

func TestMeasureReportsEncodingErrors(t *testing.T) {
	encoder, err := model.NewTeamEncoder(model.DefaultConfig(), nil)
	assert.Nil(t, err)

	_, err = measure(encoder, 0)

	assert.Error(t, err)
}

func TestToCsv(t *testing.T) {
	var buffer bytes.Buffer
	results := []BenchmarkResult{
		{Candidates: 1, Variables: 3, Clauses: 1, Duration: 0, Size: 0.5},
		{Candidates: 3, Variables: 27, Clauses: 30, Duration: 2, Size: 1.25},
	}

	err := toCsv(results, &buffer)

	assert.Nil(t, err)
	assert.Equal(t, strings.Join([]string{
		"Candidates,Variables,Clauses,Duration(ms),Size(MB)",
		"1,3,1,0,0.500",
		"3,27,30,2,1.250",
		"",
	}, "\n"), buffer.String())
}

func TestWriteCsv(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "results.csv")

	err := writeCsv(outFile, []BenchmarkResult{{Candidates: 1, Variables: 3, Clauses: 1, Size: 0.5}})

	assert.Nil(t, err)
	content, err := os.ReadFile(outFile)
	assert.Nil(t, err)
	assert.Equal(t, "Candidates,Variables,Clauses,Duration(ms),Size(MB)\n1,3,1,0,0.500\n", string(content))
}

func TestWriteCsvReportsUnwritableDestination(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "missing", "results.csv")

	err := writeCsv(outFile, nil)

	assert.Error(t, err)
}
