package main

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/milvus-io/milvus/client/v2/entity"
	"github.com/milvus-io/milvus/client/v2/index"
	"github.com/milvus-io/milvus/client/v2/milvusclient"

	"csb/vector-generator/dataset"
	"csb/vector-generator/logging"
)

// namedSet pairs a generated set with the collection it is loaded into.
type namedSet struct {
	collection string
	vectors    dataset.Set
}

// collectionName derives a collection name from an output file, e.g. vectors_1.txt -> vectors_1.
func collectionName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func CreateCollection(
	c *milvusclient.Client,
	ctx context.Context,
	collection string,
	idFieldName string,
	vecFieldName string,
	logger *logging.Logger,
) error {
	logger.Log("Creating schema...", "collection", collection)
	schema := entity.NewSchema().
		WithField(entity.NewField().
			WithName(idFieldName).
			WithIsAutoID(false).
			WithIsPrimaryKey(true).
			WithDataType(entity.FieldTypeInt64),
		).
		WithField(entity.NewField().
			WithName(vecFieldName).
			WithDataType(entity.FieldTypeFloatVector).
			WithDim(int64(dataset.Dim)),
		)
	logger.Log("Creating collection...", "collection", collection)
	return c.CreateCollection(ctx, milvusclient.NewCreateCollectionOption(collection, schema))
}

// buildRows converts vectors[start:end] into row-based insert maps. The row id
// is the vector's line index in its set.
func buildRows(vectors dataset.Set, start, end int, idFieldName, vecFieldName string) []any {
	rows := make([]any, 0, end-start)
	for i, v := range vectors[start:end] {
		rows = append(rows, map[string]any{
			idFieldName:  int64(start + i),
			vecFieldName: v.Float32(),
		})
	}
	return rows
}

func InsertSet(
	c *milvusclient.Client,
	ctx context.Context,
	collection string,
	idFieldName string,
	vecFieldName string,
	vectors dataset.Set,
	batchSize int,
	logger *logging.Logger,
) error {
	logger.Log("Inserting...", "collection", collection, "rows", len(vectors))
	for start := 0; start < len(vectors); start += batchSize {
		end := min(start+batchSize, len(vectors))
		rows := buildRows(vectors, start, end, idFieldName, vecFieldName)
		_, err := c.Insert(ctx, milvusclient.NewRowBasedInsertOption(collection, rows...))
		if err != nil {
			return err
		}
	}
	logger.Log("Insert completed", "collection", collection)
	return nil
}

func flushCollection(
	c *milvusclient.Client,
	ctx context.Context,
	collection string,
	logger *logging.Logger,
) error {
	/* Flush and await the flush */
	task, err := c.Flush(ctx, milvusclient.NewFlushOption(collection))
	if err != nil {
		return err
	}
	if err := task.Await(ctx); err != nil {
		return err
	}
	logger.Log("Flush completed", "collection", collection)
	return nil
}

func createIndex(
	c *milvusclient.Client,
	ctx context.Context,
	collection string,
	vecFieldName string,
	indexParams ConstructionIndexParameters,
	logger *logging.Logger,
) error {
	indexStartTime := time.Now()

	indexTask, err := c.CreateIndex(ctx, milvusclient.NewCreateIndexOption(
		collection,
		vecFieldName,
		index.NewHNSWIndex(
			index.MetricType(indexParams.distanceMetric),
			indexParams.M,
			indexParams.efConstruction,
		),
	))
	if err != nil {
		return err
	}
	if err := indexTask.Await(ctx); err != nil {
		return err
	}
	logger.Log("Index constructed", "collection", collection, "duration", time.Since(indexStartTime))

	// Sanity-Check index Creation
	indices, err := c.ListIndexes(ctx, milvusclient.NewListIndexOption(collection))
	if err != nil {
		return err
	}
	logger.Log("Indices on the collection", "collection", collection, "indices", indices)
	return nil
}

/**
* LoadMilvus creates one collection per set in a fresh database, inserts the
* vectors and builds an HNSW index on each. A failed load drops whatever was
* created so a rerun starts clean.
 */
func LoadMilvus(ctx context.Context, params MilvusParameters, sets []namedSet, logger *logging.Logger) error {
	logger.Log("Connecting to Milvus", "addr", params.milvusAddr)
	c, err := milvusclient.New(ctx, &milvusclient.ClientConfig{
		Address:  params.milvusAddr,
		Username: "root",
		Password: "Milvus",
	})
	if err != nil {
		return err
	}
	defer c.Close(ctx)

	err = c.CreateDatabase(ctx, milvusclient.NewCreateDatabaseOption(params.dbName))
	if err != nil {
		// the database survives earlier runs
		logger.Error("create database", err)
	}
	if err := c.UseDatabase(ctx, milvusclient.NewUseDatabaseOption(params.dbName)); err != nil {
		return err
	}

	collections := make([]string, 0, len(sets))
	for _, set := range sets {
		collections = append(collections, set.collection)
		if err := loadSet(c, ctx, params, set, logger); err != nil {
			if cerr := Cleanup(c, ctx, params.dbName, collections, logger); cerr != nil {
				logger.Error("cleanup after failed load", cerr)
			}
			return err
		}
	}
	return nil
}

func loadSet(c *milvusclient.Client, ctx context.Context, params MilvusParameters, set namedSet, logger *logging.Logger) error {
	err := CreateCollection(c, ctx, set.collection, params.idFieldName, params.vecFieldName, logger)
	if err != nil {
		return err
	}
	err = InsertSet(c, ctx, set.collection, params.idFieldName, params.vecFieldName, set.vectors, params.insertBatchSize, logger)
	if err != nil {
		return err
	}
	if err := flushCollection(c, ctx, set.collection, logger); err != nil {
		return err
	}
	return createIndex(c, ctx, set.collection, params.vecFieldName, params.indexParameters, logger)
}
