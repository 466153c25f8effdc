package main

import (
	"context"

	"github.com/milvus-io/milvus/client/v2/milvusclient"

	"csb/vector-generator/logging"
)

func Cleanup(c *milvusclient.Client, ctx context.Context, dbName string, collections []string, logger *logging.Logger) error {
	logger.Log("Cleaning up Milvus database and collections...")
	for _, collection := range collections {
		err := c.DropCollection(ctx, milvusclient.NewDropCollectionOption(collection))
		if err != nil {
			return err
		}
		logger.Log("Collection dropped successfully", "collection", collection)
	}

	err := c.DropDatabase(ctx, milvusclient.NewDropDatabaseOption(dbName))
	if err != nil {
		return err
	}
	logger.Log("Database dropped successfully", "db", dbName)
	return nil
}
