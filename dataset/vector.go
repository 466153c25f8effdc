package dataset

import (
	"errors"
	"fmt"
	"math/rand"
)

// Dim is the number of components of every generated vector.
const Dim = 5

// Vector is a fixed-length sequence of Dim components.
type Vector [Dim]float64

// Set is an ordered collection of vectors. A vector has no identity
// beyond its position in the set.
type Set []Vector

var ErrInvalidSizeRange = errors.New("invalid size range")

// SizeRange is the inclusive range a set cardinality is drawn from.
type SizeRange struct {
	Min int
	Max int
}

// DefaultSizeRange is [1, 10000].
var DefaultSizeRange = SizeRange{Min: 1, Max: 10000}

func (r SizeRange) Validate() error {
	if r.Min < 1 || r.Max < r.Min {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidSizeRange, r.Min, r.Max)
	}
	return nil
}

// Draw returns a uniformly distributed cardinality in [Min, Max].
func (r SizeRange) Draw(generator *rand.Rand) int {
	return generator.Intn(r.Max-r.Min+1) + r.Min
}

// GenerateVector draws every component uniformly from [0, 1).
func GenerateVector(generator *rand.Rand) (vector Vector) {
	for i := range vector {
		vector[i] = generator.Float64()
	}
	return
}

func GenerateSet(generator *rand.Rand, size int) Set {
	vectors := make(Set, size)
	for i := range size {
		vectors[i] = GenerateVector(generator)
	}
	return vectors
}

// Float32 converts the vector for clients that only accept float32 vectors.
func (v Vector) Float32() []float32 {
	ret := make([]float32, Dim)
	for i, x := range v {
		ret[i] = float32(x)
	}
	return ret
}
