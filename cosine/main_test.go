package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csb/vector-generator/dataset"
	"csb/vector-generator/logging"
)

func TestParseArguments(t *testing.T) {
	args := ParseArguments([]string{"-v1=a.txt", "-h", "-d=3", "-x", "-po=out=1.txt"})

	assert.True(t, args.Flag("-h"))
	assert.True(t, args.Flag("-x"))
	assert.False(t, args.Flag("-v1"))
	assert.Equal(t, "a.txt", args.Str("-v1", ""))
	assert.Equal(t, "out=1.txt", args.Str("-po", ""))
	assert.Equal(t, "fallback", args.Str("-so", "fallback"))

	d, err := args.Int("-d", 5)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	lb, err := args.Int("-lb", 50000)
	require.NoError(t, err)
	assert.Equal(t, 50000, lb)

	var out bytes.Buffer
	args.Print(&out)
	assert.Equal(t, "-d : 3\n-po : out=1.txt\n-v1 : a.txt\nFlag : -h\nFlag : -x\n", out.String())
}

func TestParseArguments_InvalidInt(t *testing.T) {
	_, err := ParseArguments([]string{"-lb=lots"}).Int("-lb", 50000)

	assert.ErrorContains(t, err, "invalid -lb value")
}

func TestParseOptions_Defaults(t *testing.T) {
	var console bytes.Buffer
	opts, err := parseOptions(ParseArguments([]string{"-v1=a.txt", "-v2=b.txt"}), &console)

	require.NoError(t, err)
	assert.Equal(t, "a.txt", opts.v1File)
	assert.Equal(t, "b.txt", opts.v2File)
	assert.Equal(t, "parallel_results.txt", opts.parallelOut)
	assert.Equal(t, "serial_results.txt", opts.serialOut)
	assert.Equal(t, 50000, opts.lineBuffer)
	assert.Equal(t, 5, opts.decimals)
	assert.Positive(t, opts.workers)
}

func TestParseOptions_DecimalsBelowOne(t *testing.T) {
	var console bytes.Buffer
	opts, err := parseOptions(ParseArguments([]string{"-v1=a.txt", "-v2=b.txt", "-d=0"}), &console)

	require.NoError(t, err)
	assert.Equal(t, 5, opts.decimals)
	assert.Contains(t, console.String(), "Number of decimals cannot be less than 1, defaulting to 5")
}

func TestParseOptions_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"help", []string{"-h"}, "Arguments:"},
		{"missing v1", []string{"-v2=b.txt"}, "Given V1 filename is invalid"},
		{"missing v2", []string{"-v1=a.txt"}, "Given V2 filename is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console bytes.Buffer
			_, err := parseOptions(ParseArguments(tt.args), &console)
			assert.ErrorIs(t, err, errUsage)
			assert.Contains(t, console.String(), tt.want)
		})
	}
}

func TestParseOptions_InvalidLineBuffer(t *testing.T) {
	_, err := parseOptions(ParseArguments([]string{"-v1=a", "-v2=b", "-lb=0"}), &bytes.Buffer{})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, errUsage)
}

func TestWriteMatrix_SignificantDigitsAndFlushes(t *testing.T) {
	m := Matrix{{0.123456789, 1}, {0.5, 0.000012345678}}

	for _, lineBuffer := range []int{1, 3, 50000} {
		var out bytes.Buffer
		require.NoError(t, writeMatrix(&out, m, 5, lineBuffer))
		assert.Equal(t, "0.12346\n1\n0.5\n1.2346e-05\n", out.String())
	}
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	v1 := dataset.Set{{1, 0, 0, 0, 0}, {0, 1, 0, 0, 0}}
	v2 := dataset.Set{{1, 0, 0, 0, 0}, {1, 1, 0, 0, 0}, {0, 0, 1, 0, 0}}
	require.NoError(t, dataset.WriteSetFile(filepath.Join(dir, "vectors_1.txt"), v1))
	require.NoError(t, dataset.WriteSetFile(filepath.Join(dir, "vectors_2.txt"), v2))

	opts := Options{
		v1File:      filepath.Join(dir, "vectors_1.txt"),
		v2File:      filepath.Join(dir, "vectors_2.txt"),
		parallelOut: filepath.Join(dir, "parallel_results.txt"),
		serialOut:   filepath.Join(dir, "serial_results.txt"),
		parquetOut:  filepath.Join(dir, "results.parquet"),
		lineBuffer:  2,
		decimals:    5,
		workers:     2,
	}
	var console bytes.Buffer
	logger, err := logging.NewLogger(&console, "")
	require.NoError(t, err)

	require.NoError(t, Run(context.Background(), opts, logger))

	parallel, err := os.ReadFile(opts.parallelOut)
	require.NoError(t, err)
	serial, err := os.ReadFile(opts.serialOut)
	require.NoError(t, err)
	assert.Equal(t, "1\n0.70711\n0\n0\n0.70711\n0\n", string(parallel))
	assert.Equal(t, parallel, serial)

	rows, err := parquet.ReadFile[SimilarityRow](opts.parquetOut)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, SimilarityRow{V1Index: 1, V2Index: 1, Similarity: rows[4].Similarity}, rows[4])
	assert.InDelta(t, 0.70710678, rows[4].Similarity, 1e-6)

	output := console.String()
	for _, line := range []string{
		"Parsed the two vector files",
		"Executing Parallel Version",
		"Parallel Version done",
		"Executing Serial Version",
		"Serial Version done",
		"Same results given by both implementations",
		"Writing results to files (",
	} {
		assert.Contains(t, output, line)
	}
	assert.Less(t, strings.Index(output, "Parallel Version done"), strings.Index(output, "Executing Serial Version"))
}

func TestRun_MalformedInput(t *testing.T) {
	dir := t.TempDir()
	v1File := filepath.Join(dir, "vectors_1.txt")
	require.NoError(t, os.WriteFile(v1File, []byte("0.1,0.2\n"), 0644))
	logger, err := logging.NewLogger(&bytes.Buffer{}, "")
	require.NoError(t, err)

	err = Run(context.Background(), Options{v1File: v1File, v2File: v1File}, logger)

	assert.ErrorIs(t, err, dataset.ErrMalformedLine)
}
