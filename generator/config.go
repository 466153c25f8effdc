package main

import (
	"fmt"
	"os"
	"path/filepath"

	"csb/vector-generator/dataset"
)

type ConstructionIndexParameters struct {
	distanceMetric string
	M              int
	efConstruction int
}

type MilvusParameters struct {
	enabled         bool
	milvusAddr      string
	dbName          string
	idFieldName     string
	vecFieldName    string
	insertBatchSize int
	indexParameters ConstructionIndexParameters
}

type Config struct {
	v1File      string
	v2File      string
	sizes       dataset.SizeRange
	v1Size      int // fixed cardinality of set 1, 0 draws it from sizes
	v2Size      int
	seed        int64
	seeded      bool
	outputDir   string
	parquet     bool
	snapshot    string
	compression dataset.Compression
	logFile     string
	milvus      MilvusParameters
}

const milvusPort = "19530"

// getMilvusAddr returns the Milvus address from environment variable MILVUS_IP or localhost as fallback.
func getMilvusAddr() string {
	ip := os.Getenv("MILVUS_IP")
	if ip == "" {
		ip = "localhost"
	}
	return ip + ":" + milvusPort
}

func DefaultConfig() Config {
	return Config{
		v1File:    "vectors_1.txt",
		v2File:    "vectors_2.txt",
		sizes:     dataset.DefaultSizeRange,
		outputDir: ".",
		milvus: MilvusParameters{
			milvusAddr:      getMilvusAddr(),
			dbName:          "vectors",
			idFieldName:     "id",
			vecFieldName:    "vector",
			insertBatchSize: 1000,
			indexParameters: ConstructionIndexParameters{
				distanceMetric: "COSINE", // the sets are compared by cosine similarity
				M:              16,
				efConstruction: 200,
			},
		},
	}
}

// outputPath prefixes the output directory to create a full file path.
func (c Config) outputPath(filename string) string {
	return filepath.Join(c.outputDir, filename)
}

func (c Config) Validate() error {
	if err := c.sizes.Validate(); err != nil {
		return err
	}
	if c.v1Size < 0 || c.v2Size < 0 {
		return fmt.Errorf("fixed sizes must not be negative")
	}
	if c.v1File == "" || c.v2File == "" {
		return fmt.Errorf("missing output file name")
	}
	if c.milvus.enabled && c.milvus.insertBatchSize < 1 {
		return fmt.Errorf("insertBatchSize must be positive")
	}
	return nil
}
