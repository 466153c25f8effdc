package main

import (
	"context"
	"fmt"
	"os"

	"csb/vector-generator/logging"
)

func parseArgs(args []string) (config Config, err error) {
	config = DefaultConfig()
	switch len(args) {
	case 1:
		return config, nil
	case 2:
		return config, LoadConfig(args[1], &config)
	}
	return config, fmt.Errorf(`usage: %s [config_file]
			config_file: optional file of "key = value" overrides (sizes, seed, exports, milvus)`,
		args[0])
}

func main() {
	config, err := parseArgs(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := NewRunLogger(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_, err = Run(context.Background(), config, logger)
	if err != nil {
		logger.Error("generation failed", err)
	}
	logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRunLogger(config Config) (*logging.Logger, error) {
	logFile := ""
	if config.logFile != "" {
		logFile = config.outputPath(config.logFile)
	}
	return logging.NewLogger(os.Stdout, logFile)
}
