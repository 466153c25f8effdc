package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"csb/vector-generator/dataset"
)

/**
* LoadConfig reads generator overrides in the following format:
* # comment
* minSize = 1
* maxSize = 10000
* seed = 42
 */
func LoadConfig(filename string, config *Config) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open config file %s: %w", filename, err)
	}
	defer file.Close()

	if err := parseConfig(file, config); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return config.Validate()
}

func parseConfig(r io.Reader, config *Config) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format on line: %s", line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		var err error
		switch key {
		case "v1File":
			config.v1File = value
		case "v2File":
			config.v2File = value
		case "outputDir":
			config.outputDir = value
		case "snapshot":
			config.snapshot = value
		case "logFile":
			config.logFile = value
		case "dbName":
			config.milvus.dbName = value
		case "minSize":
			config.sizes.Min, err = strconv.Atoi(value)
		case "maxSize":
			config.sizes.Max, err = strconv.Atoi(value)
		case "v1Size":
			config.v1Size, err = strconv.Atoi(value)
		case "v2Size":
			config.v2Size, err = strconv.Atoi(value)
		case "insertBatchSize":
			config.milvus.insertBatchSize, err = strconv.Atoi(value)
		case "M":
			config.milvus.indexParameters.M, err = strconv.Atoi(value)
		case "efConstruction":
			config.milvus.indexParameters.efConstruction, err = strconv.Atoi(value)
		case "seed":
			config.seed, err = strconv.ParseInt(value, 10, 64)
			config.seeded = err == nil
		case "parquet":
			config.parquet, err = strconv.ParseBool(value)
		case "milvus":
			config.milvus.enabled, err = strconv.ParseBool(value)
		case "compression":
			config.compression, err = dataset.ParseCompression(value)
		default:
			return fmt.Errorf("unknown parameter in line: %s", line)
		}
		if err != nil {
			return fmt.Errorf("invalid %s value in line: %s", key, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}
