package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/erelsgl/sat/pkg/model"
	"github.com/samber/lo"
)

const MB float32 = 1024 * 1024

type BenchmarkResult struct {
	Candidates uint64
	Variables  uint64
	Clauses    uint64
	Duration   int64
	Size       float32
}

type countingWriter struct {
	bytes int64
}

func (writer *countingWriter) Write(p []byte) (int, error) {
	writer.bytes += int64(len(p))
	return len(p), nil
}

func main() {
	fromPtr := flag.Uint64("from", 1, "Smallest number of candidates per profession to encode")
	toPtr := flag.Uint64("to", 10, "Largest number of candidates per profession to encode")
	outFilePathPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	flag.Parse()

	if *fromPtr == 0 || *fromPtr > *toPtr {
		log.Fatalf("invalid candidates range [%v, %v]", *fromPtr, *toPtr)
	}

	encoder, err := model.NewTeamEncoder(model.DefaultConfig(), nil)
	if err != nil {
		log.Fatal(err)
	}

	results := lo.Map(lo.RangeFrom(*fromPtr, int(*toPtr-*fromPtr+1)), func(candidates uint64, _ int) BenchmarkResult {
		fmt.Printf("Benchmarking encoding with %v candidates per profession\n", candidates)
		result, err := measure(encoder, candidates)
		if err != nil {
			log.Fatalf("an error occurred while encoding %v candidates: %v", candidates, err)
		}
		return result
	})

	if err := writeCsv(*outFilePathPtr, results); err != nil {
		log.Fatalf("cannot write CSV file: %v", err)
	}
}

func writeCsv(outFile string, results []BenchmarkResult) error {
	file, err := os.Create(outFile)
	if err != nil {
		return err
	}

	if err := toCsv(results, file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func measure(encoder model.Encoder, candidates uint64) (BenchmarkResult, error) {
	start := time.Now()
	instance, err := encoder.Build(candidates)
	if err != nil {
		return BenchmarkResult{}, err
	}

	var counter countingWriter
	if err := instance.WriteDIMACS(&counter); err != nil {
		return BenchmarkResult{}, err
	}
	duration := time.Since(start)

	return BenchmarkResult{
		Candidates: candidates,
		Variables:  instance.Variables,
		Clauses:    uint64(len(instance.Clauses)),
		Duration:   duration.Milliseconds(),
		Size:       float32(counter.bytes) / MB,
	}, nil
}

func toCsv(results []BenchmarkResult, w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{"Candidates", "Variables", "Clauses", "Duration(ms)", "Size(MB)"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			fmt.Sprintf("%d", result.Candidates),
			fmt.Sprintf("%d", result.Variables),
			fmt.Sprintf("%d", result.Clauses),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.3f", result.Size),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
