package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/OpenTraceLab/asc2tikz/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schematic = `Version 4
WIRE 96 128 96 176
SYMBOL res 100 200 R0
SYMATTR InstName R1
SYMATTR Value 10k
`

// runRoot executes the root command in an isolated directory and returns it.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	prevLogger := logger.Logger
	t.Cleanup(func() {
		logger.Logger = prevLogger
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	verbose, jsonLog, configFile = false, false, ""
	outputPath, noCenter = "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "amp.asc"), []byte(schematic), 0o644))
	return dir, rootCmd.Execute()
}

func texFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*.tex"))
	require.NoError(t, err)
	return matches
}

func TestRootRequiresOneArgument(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"none", []string{}},
		{"two", []string{"amp.asc", "amp.asc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := runRoot(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "accepts 1 arg(s)")
			assert.Empty(t, texFiles(t, dir))
		})
	}
}

func TestRootWritesNextToInput(t *testing.T) {
	dir, err := runRoot(t, "amp.asc")
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "amp.tex")}, texFiles(t, dir))

	got, err := os.ReadFile(filepath.Join(dir, "amp.tex"))
	require.NoError(t, err)
	assert.Contains(t, string(got), `\begin{center}`)
	assert.Contains(t, string(got), `\draw (3, -4) to [short] (3, -5.5);`)
	assert.Contains(t, string(got), `[resistor, l^=\(R1\), a_=\(10 \unit{\kohm}\)]`)
}

func TestRootOutputFlags(t *testing.T) {
	dir, err := runRoot(t, "--no-center", "-o", "picture.tex", "amp.asc")
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "picture.tex")}, texFiles(t, dir))

	got, err := os.ReadFile(filepath.Join(dir, "picture.tex"))
	require.NoError(t, err)
	assert.NotContains(t, string(got), `\begin{center}`)
	assert.Contains(t, string(got), `\begin{tikzpicture}`)
}

func TestRootMissingInput(t *testing.T) {
	dir, err := runRoot(t, "missing.asc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.asc")
	assert.Empty(t, texFiles(t, dir))
}

func TestInfoWritesNothing(t *testing.T) {
	dir, err := runRoot(t, "info", "amp.asc")
	require.NoError(t, err)
	assert.Empty(t, texFiles(t, dir))
}
