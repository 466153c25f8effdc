package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"csb/vector-generator/dataset"
	"csb/vector-generator/logging"
)

const helpMsg = `Arguments:
	-h  Help - display this help message
	-v1 First Vector File
	-v2 Second Vector File
	-po Parallel Output File (default=parallel_results.txt)
	-so Serial Output File (default=serial_results.txt)
	-pq Parquet Output File for the parallel results (optional)
	-lb Line buffer size - buffer that holds output lines to reduce number of write calls (default=50000)
	-d  Decimals - number of decimals kept for results (default=5)
	-w  Workers - number of parallel workers (default=number of CPUs)
	-log Log File (optional)

Usage:
	<arg>=<value>

Examples:
	-v1=vectors_1.txt
	-d=5
`

type Options struct {
	v1File      string
	v2File      string
	parallelOut string
	serialOut   string
	parquetOut  string
	logFile     string
	lineBuffer  int
	decimals    int
	workers     int
}

// errUsage signals that the help text was printed and the run should stop cleanly.
var errUsage = errors.New("usage")

func parseOptions(args Arguments, console io.Writer) (Options, error) {
	if args.Flag("-h") {
		fmt.Fprint(console, helpMsg, "\n")
		return Options{}, errUsage
	}
	args.Print(console)

	opts := Options{
		v1File:      args.Str("-v1", ""),
		v2File:      args.Str("-v2", ""),
		parallelOut: args.Str("-po", "parallel_results.txt"),
		serialOut:   args.Str("-so", "serial_results.txt"),
		parquetOut:  args.Str("-pq", ""),
		logFile:     args.Str("-log", ""),
	}

	var err error
	if opts.lineBuffer, err = args.Int("-lb", 50000); err != nil {
		return opts, err
	}
	if opts.lineBuffer < 1 {
		return opts, fmt.Errorf("line buffer size must be positive")
	}
	if opts.decimals, err = args.Int("-d", 5); err != nil {
		return opts, err
	}
	if opts.decimals < 1 {
		fmt.Fprintln(console, "Number of decimals cannot be less than 1, defaulting to 5")
		opts.decimals = 5
	}
	if opts.workers, err = args.Int("-w", runtime.NumCPU()); err != nil {
		return opts, err
	}

	if opts.v1File == "" {
		fmt.Fprintln(console, "Given V1 filename is invalid")
		fmt.Fprint(console, helpMsg, "\n")
		return opts, errUsage
	}
	if opts.v2File == "" {
		fmt.Fprintln(console, "Given V2 filename is invalid")
		fmt.Fprint(console, helpMsg, "\n")
		return opts, errUsage
	}
	return opts, nil
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Run parses both sets, computes the similarity matrix both ways, checks the
// results agree and writes them out.
func Run(ctx context.Context, opts Options, logger *logging.Logger) error {
	v1, err := dataset.DataReader{SourceFile: opts.v1File}.GetDataSet()
	if err != nil {
		return err
	}
	v2, err := dataset.DataReader{SourceFile: opts.v2File}.GetDataSet()
	if err != nil {
		return err
	}
	logger.Logf("Parsed the two vector files")
	logger.Log("Set sizes", "v1", len(v1), "v2", len(v2))

	logger.Logf("Executing Parallel Version")
	start := time.Now()
	parallelResults, err := Parallel(ctx, v1, v2, opts.workers)
	if err != nil {
		return err
	}
	parallelTime := time.Since(start)
	logger.Logf("Parallel Version done")

	logger.Logf("Executing Serial Version")
	start = time.Now()
	serialResults := Serial(v1, v2)
	serialTime := time.Since(start)
	logger.Logf("Serial Version done")

	if mismatch, same := Equal(parallelResults, serialResults, Tolerance(opts.decimals)); same {
		logger.Logf("Same results given by both implementations")
	} else {
		logger.Logf("Uneven results at (%d,%d) Parallel gave %v while Serial gave %v",
			mismatch.I, mismatch.J, mismatch.A, mismatch.B)
	}

	logger.Logf("Parallel running time: %vms", millis(parallelTime))
	logger.Logf("Serial running time: %vms", millis(serialTime))

	logger.Logf("Writing results to files (%s and %s)", opts.parallelOut, opts.serialOut)
	if err := WriteMatrixFile(opts.parallelOut, parallelResults, opts.decimals, opts.lineBuffer); err != nil {
		return err
	}
	if err := WriteMatrixFile(opts.serialOut, serialResults, opts.decimals, opts.lineBuffer); err != nil {
		return err
	}
	if opts.parquetOut != "" {
		if err := WriteMatrixParquet(opts.parquetOut, parallelResults); err != nil {
			return err
		}
		logger.Log("Wrote parquet results", "path", opts.parquetOut)
	}
	return nil
}

func main() {
	opts, err := parseOptions(ParseArguments(os.Args[1:]), os.Stdout)
	if errors.Is(err, errUsage) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(os.Stdout, opts.logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = Run(context.Background(), opts, logger)
	if err != nil {
		logger.Error("similarity run failed", err)
	}
	logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
