package main

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"csb/vector-generator/dataset"
)

// Matrix holds sim[i][j] for every vector i of V1 and j of V2.
type Matrix [][]float64

func dotProduct(a, b dataset.Vector) (dot float64) {
	for i := range a {
		dot += a[i] * b[i]
	}
	return
}

func norms(vectors dataset.Set) []float64 {
	ret := make([]float64, len(vectors))
	for i, v := range vectors {
		ret[i] = math.Sqrt(dotProduct(v, v))
	}
	return ret
}

// similarityRow fills row with the cosine similarity of a against every vector
// of v2. A zero norm yields NaN.
func similarityRow(row []float64, a dataset.Vector, aNorm float64, v2 dataset.Set, v2Norms []float64) {
	for j, b := range v2 {
		row[j] = dotProduct(a, b) / (aNorm * v2Norms[j])
	}
}

func newMatrix(rows, cols int) Matrix {
	cells := make([]float64, rows*cols)
	m := make(Matrix, rows)
	for i := range m {
		m[i] = cells[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m
}

// Serial computes the similarity matrix on the calling goroutine.
func Serial(v1, v2 dataset.Set) Matrix {
	v1Norms, v2Norms := norms(v1), norms(v2)
	results := newMatrix(len(v1), len(v2))
	for i, a := range v1 {
		similarityRow(results[i], a, v1Norms[i], v2, v2Norms)
	}
	return results
}

// Parallel splits the rows of the matrix into one chunk per worker.
func Parallel(ctx context.Context, v1, v2 dataset.Set, numWorkers int) (Matrix, error) {
	numWorkers = max(1, numWorkers)
	v1Norms, v2Norms := norms(v1), norms(v2)
	results := newMatrix(len(v1), len(v2))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	dataLen := len(v1)
	chunkSize := (dataLen + numWorkers - 1) / numWorkers
	for start := 0; start < dataLen; start += chunkSize {
		end := min(start+chunkSize, dataLen)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				similarityRow(results[i], v1[i], v1Norms[i], v2, v2Norms)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Mismatch is the first cell where two matrices differ by more than the tolerance.
type Mismatch struct {
	I, J int
	A, B float64
}

// Equal compares a and b cell by cell in row-major order. Cells where either
// side is NaN are not reported.
func Equal(a, b Matrix, tolerance float64) (Mismatch, bool) {
	for i := range a {
		for j := range a[i] {
			if math.Abs(a[i][j]-b[i][j]) > tolerance {
				return Mismatch{I: i, J: j, A: a[i][j], B: b[i][j]}, false
			}
		}
	}
	return Mismatch{}, true
}

// Tolerance derives the comparison tolerance from the number of printed decimals.
func Tolerance(decimals int) float64 {
	return 1 / math.Pow(10, float64(decimals)+1)
}
