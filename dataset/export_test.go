package dataset

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParquet_RoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "vectors_1.parquet")
	vectors := GenerateSet(rand.New(rand.NewSource(11)), 128)

	require.NoError(t, WriteParquet(filename, vectors))
	got, err := ReadParquet(filename)

	require.NoError(t, err)
	assert.Equal(t, vectors, got)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	gen := rand.New(rand.NewSource(12))
	snap := Snapshot{V1: GenerateSet(gen, 64), V2: GenerateSet(gen, 17)}

	for _, compression := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(compression.String(), func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "vectors.snapshot")

			require.NoError(t, SaveSnapshot(filename, snap, compression))
			got, err := LoadSnapshot(filename)

			require.NoError(t, err)
			assert.Equal(t, snap, got)

			content, err := os.ReadFile(filename)
			require.NoError(t, err)
			assert.Equal(t, byte(compression), content[0])
		})
	}
}

func TestSnapshot_UnknownTag(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "vectors.snapshot")
	require.NoError(t, os.WriteFile(filename, []byte{42, 0, 0}, 0644))

	_, err := LoadSnapshot(filename)

	assert.ErrorIs(t, err, ErrUnknownCompression)
}

func TestSnapshot_SaveUnknownCompression(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "vectors.snapshot")

	err := SaveSnapshot(filename, Snapshot{}, Compression(9))

	assert.ErrorIs(t, err, ErrUnknownCompression)
	assert.NoFileExists(t, filename)
}

func TestParseCompression(t *testing.T) {
	tests := map[string]Compression{
		"":     CompressionNone,
		"none": CompressionNone,
		"lz4":  CompressionLZ4,
		"zstd": CompressionZSTD,
	}
	for name, want := range tests {
		got, err := ParseCompression(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseCompression("gzip")
	assert.ErrorIs(t, err, ErrUnknownCompression)
}
