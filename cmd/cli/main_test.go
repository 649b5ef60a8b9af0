package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erelsgl/sat/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestCandidatesFromArgs(t *testing.T) {
	config := model.DefaultConfig()

	candidates, err := candidatesFromArgs([]string{"7"}, config)
	assert.Nil(t, err)
	assert.Equal(t, uint64(7), candidates)

	config.Candidates = 4
	candidates, err = candidatesFromArgs(nil, config)
	assert.Nil(t, err)
	assert.Equal(t, uint64(4), candidates)

	// The positional argument wins over the config file
	candidates, err = candidatesFromArgs([]string{"2"}, config)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), candidates)
}

func TestCandidatesFromArgsRejectsInvalidInput(t *testing.T) {
	scenarios := [][]string{
		nil,
		{"0"},
		{"abc"},
		{"-3"},
		{"3.5"},
		{"3", "4"},
	}

	for _, args := range scenarios {
		_, err := candidatesFromArgs(args, model.DefaultConfig())

		var configurationError model.ConfigurationError
		assert.ErrorAs(t, err, &configurationError, "%v", args)
	}
}

func TestWriteFormulaToFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "team.cnf")

	err := writeFormula(outFile, func(w io.Writer) error {
		_, err := io.WriteString(w, "p cnf 3 1\n-1 -2 -3 0\n")
		return err
	})

	assert.Nil(t, err)
	content, err := os.ReadFile(outFile)
	assert.Nil(t, err)
	assert.Equal(t, "p cnf 3 1\n-1 -2 -3 0\n", string(content))
}

func TestWriteFormulaRemovesPartialFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "team.cnf")

	err := writeFormula(outFile, func(w io.Writer) error {
		io.WriteString(w, "p cnf 3 1\n")
		return errors.New("interrupted")
	})

	assert.ErrorContains(t, err, "interrupted")
	assert.NoFileExists(t, outFile)
}

func TestWriteFormulaReportsUnwritableDestination(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "missing", "team.cnf")

	err := writeFormula(outFile, func(io.Writer) error { return nil })

	assert.Error(t, err)
}

// Runs main with the arguments following "--" when re-executed by runCli
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) > 0 {
		args = args[1:]
	}
	os.Args = append([]string{"cli"}, args...)

	main()
	os.Exit(0)
}

func runCli(t *testing.T, args ...string) (stdout string, stderr string, exitCode int) {
	cmd := exec.Command(os.Args[0], append([]string{"-test.run=^TestHelperProcess$", "--"}, args...)...)
	cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1")

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	err := cmd.Run()
	var exitError *exec.ExitError
	if err != nil && !errors.As(err, &exitError) {
		t.Fatalf("cannot run cli: %v", err)
	}
	return stdOut.String(), stdErr.String(), cmd.ProcessState.ExitCode()
}

func TestCliWritesFormula(t *testing.T) {
	stdout, stderr, exitCode := runCli(t, "3")

	assert.Equal(t, 0, exitCode)
	assert.True(t, strings.HasPrefix(stdout, "p cnf 27 30\n"))
	assert.Len(t, strings.Split(strings.TrimSuffix(stdout, "\n"), "\n"), 31)
	assert.Contains(t, stderr, "Edge test: OK")
	assert.Contains(t, stderr, "Done!")
}

func TestCliQuietWritesNoDiagnostics(t *testing.T) {
	stdout, stderr, exitCode := runCli(t, "-quiet", "1")

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "p cnf 3 1\n-1 -2 -3 0\n", stdout)
	assert.Empty(t, stderr)
}

func TestCliRejectsInvalidCandidates(t *testing.T) {
	scenarios := map[string][]string{
		"zero":     {"0"},
		"letters":  {"abc"},
		"missing":  {},
		"too many": {"3", "4"},
	}

	for name, args := range scenarios {
		t.Run(name, func(t *testing.T) {
			stdout, stderr, exitCode := runCli(t, args...)

			assert.NotEqual(t, 0, exitCode)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "configuration error")
		})
	}
}

func TestCliRejectsInvalidConfigFile(t *testing.T) {
	config := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(config, []byte(`{"professions": 4}`), 0666); err != nil {
		t.Fatalf("cannot write config file: %v", err)
	}

	stdout, _, exitCode := runCli(t, "-config", config, "3")

	assert.NotEqual(t, 0, exitCode)
	assert.Empty(t, stdout)
}
