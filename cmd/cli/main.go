package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/erelsgl/sat/pkg/model"
)

func main() {
	// Define arguments
	configFilePathPtr := flag.String("config", "", "Path to a JSON config file with the keys \"professions\" (must be 3) and \"candidates\"")
	outFilePathPtr := flag.String("out", "", "Path to the file where the CNF formula will be written; if empty, it'll be written into the Standard Output")
	quietPtr := flag.Bool("quiet", false, "Suppress the diagnostics written to the Standard Error")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] NUM-OF-CANDIDATES > FILENAME.cnf\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	diagnostics := log.New(os.Stderr, "", 0)
	if *quietPtr {
		diagnostics.SetOutput(io.Discard)
	}

	// Extract configuration
	config := model.DefaultConfig()
	if *configFilePathPtr != "" {
		var err error
		config, err = model.ConfigFromJson(*configFilePathPtr)
		if err != nil {
			log.Fatalf("cannot load config: %v", err)
		}
	}

	// Validate arguments
	candidates, err := candidatesFromArgs(flag.Args(), config)
	if err != nil {
		log.Fatal(err)
	}

	// Initialize engines
	encoder, err := model.NewTeamEncoder(config, diagnostics)
	if err != nil {
		log.Fatal(err)
	}

	// Build formula
	instance, err := encoder.Build(candidates)
	if err != nil {
		log.Fatalf("an error occurred during formula construction: %v", err)
	}

	// Verify formula correctness before anything is written
	if !encoder.Verify(instance, candidates) {
		log.Fatal("the generated formula failed verification")
	}

	if err := writeFormula(*outFilePathPtr, func(w io.Writer) error { return instance.WriteDIMACS(w) }); err != nil {
		log.Fatalf("an error occurred while writing the formula: %v", err)
	}

	diagnostics.Println("Done!")
}

// Returns the number of candidates per profession from the positional arguments, falling back to the config file
func candidatesFromArgs(args []string, config model.Config) (uint64, error) {
	if len(args) > 1 {
		return 0, model.ConfigurationError{Reason: fmt.Sprintf("expected a single number of candidates, got %v", args)}
	}

	candidates := config.Candidates
	if len(args) == 1 {
		value, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return 0, model.ConfigurationError{Reason: fmt.Sprintf("%q is not a valid number of candidates", args[0])}
		}
		candidates = value
	}

	if candidates == 0 {
		return 0, model.ConfigurationError{Reason: "the number of candidates per profession must be a positive integer"}
	}
	return candidates, nil
}

// Writes into the Standard Output when outFile is empty. A partially written file is removed
func writeFormula(outFile string, write func(io.Writer) error) error {
	if outFile == "" {
		return write(os.Stdout)
	}

	file, err := os.Create(outFile)
	if err != nil {
		return err
	}

	if err := write(file); err != nil {
		file.Close()
		os.Remove(outFile)
		return err
	}
	return file.Close()
}
