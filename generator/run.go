package main

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"csb/vector-generator/dataset"
	"csb/vector-generator/logging"
)

// Result describes what a generator run produced.
type Result struct {
	V1Size int
	V2Size int
	Files  []string
}

func newGenerator(config Config) *rand.Rand {
	seed := config.seed
	if !config.seeded {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func drawSize(generator *rand.Rand, fixed int, sizes dataset.SizeRange) int {
	if fixed > 0 {
		return fixed
	}
	return sizes.Draw(generator)
}

// Run draws both cardinalities, generates the two sets and writes each to
// its own file. Optional exports and the Milvus load follow the text files.
func Run(ctx context.Context, config Config, logger *logging.Logger) (Result, error) {
	var result Result
	if err := config.Validate(); err != nil {
		return result, err
	}

	generator := newGenerator(config)
	result.V1Size = drawSize(generator, config.v1Size, config.sizes)
	result.V2Size = drawSize(generator, config.v2Size, config.sizes)

	logger.Logf("Sizes: V1: %d V2: %d", result.V1Size, result.V2Size)

	v1 := dataset.GenerateSet(generator, result.V1Size)
	v2 := dataset.GenerateSet(generator, result.V2Size)

	logger.Logf("Writing V1 vectors")
	v1Path := config.outputPath(config.v1File)
	if err := dataset.WriteSetFile(v1Path, v1); err != nil {
		return result, err
	}
	result.Files = append(result.Files, v1Path)

	logger.Logf("Writing V2 vectors")
	v2Path := config.outputPath(config.v2File)
	if err := dataset.WriteSetFile(v2Path, v2); err != nil {
		return result, err
	}
	result.Files = append(result.Files, v2Path)

	if config.parquet {
		for _, out := range []struct {
			path    string
			vectors dataset.Set
		}{{v1Path, v1}, {v2Path, v2}} {
			path := parquetPath(out.path)
			if err := dataset.WriteParquet(path, out.vectors); err != nil {
				return result, err
			}
			logger.Log("Wrote parquet export", "path", path)
			result.Files = append(result.Files, path)
		}
	}

	if config.snapshot != "" {
		path := config.outputPath(config.snapshot)
		err := dataset.SaveSnapshot(path, dataset.Snapshot{V1: v1, V2: v2}, config.compression)
		if err != nil {
			return result, err
		}
		logger.Log("Wrote snapshot", "path", path, "compression", config.compression)
		result.Files = append(result.Files, path)
	}

	if config.milvus.enabled {
		sets := []namedSet{
			{collection: collectionName(config.v1File), vectors: v1},
			{collection: collectionName(config.v2File), vectors: v2},
		}
		if err := LoadMilvus(ctx, config.milvus, sets, logger); err != nil {
			return result, err
		}
	}

	logger.Logf("Done")
	return result, nil
}

func parquetPath(textPath string) string {
	return strings.TrimSuffix(textPath, ".txt") + ".parquet"
}
