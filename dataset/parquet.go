package dataset

import (
	"fmt"

	"github.com/parquet-go/parquet-go"
)

// ParquetRow is the on-disk row of a set exported to parquet.
type ParquetRow struct {
	Id     int64     `parquet:"id"`
	Vector []float64 `parquet:"vector"`
}

func WriteParquet(filename string, vectors Set) error {
	rows := make([]ParquetRow, len(vectors))
	for i, vector := range vectors {
		rows[i] = ParquetRow{Id: int64(i), Vector: vector[:]}
	}
	return parquet.WriteFile(filename, rows)
}

// ReadParquet restores a set in the row order it was written in.
func ReadParquet(filename string) (Set, error) {
	rows, err := parquet.ReadFile[ParquetRow](filename)
	if err != nil {
		return nil, err
	}
	vectors := make(Set, len(rows))
	for i, row := range rows {
		if len(row.Vector) != Dim {
			return nil, fmt.Errorf("%w: row %d has %d components", ErrMalformedLine, row.Id, len(row.Vector))
		}
		copy(vectors[i][:], row.Vector)
	}
	return vectors, nil
}
