package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"

	"csb/vector-generator/dataset"
)

// SimilarityRow is one cell of the result matrix in the parquet export.
type SimilarityRow struct {
	V1Index    int64   `parquet:"v1_index"`
	V2Index    int64   `parquet:"v2_index"`
	Similarity float64 `parquet:"similarity"`
}

// writeMatrix writes one value per line in row-major order with the given
// number of significant digits, handing lineBuffer lines to w at a time.
func writeMatrix(w io.Writer, m Matrix, decimals int, lineBuffer int) error {
	var sb strings.Builder
	lineCounter := 0
	for _, row := range m {
		for _, x := range row {
			sb.WriteString(strconv.FormatFloat(x, 'g', decimals, 64))
			sb.WriteByte('\n')
			lineCounter++
			if lineCounter == lineBuffer {
				lineCounter = 0
				if _, err := io.WriteString(w, sb.String()); err != nil {
					return err
				}
				sb.Reset()
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func WriteMatrixFile(filename string, m Matrix, decimals int, lineBuffer int) error {
	return dataset.SaveToFile(filename, func(w io.Writer) error {
		return writeMatrix(w, m, decimals, lineBuffer)
	})
}

func WriteMatrixParquet(filename string, m Matrix) error {
	var rows []SimilarityRow
	for i, row := range m {
		for j, x := range row {
			rows = append(rows, SimilarityRow{V1Index: int64(i), V2Index: int64(j), Similarity: x})
		}
	}
	return parquet.WriteFile(filename, rows)
}
