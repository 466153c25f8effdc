package dataset

import (
	"bufio"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the codec a snapshot body is written with.
type Compression uint8

const (
	CompressionNone Compression = 0
	CompressionLZ4  Compression = 1
	CompressionZSTD Compression = 2
)

var ErrUnknownCompression = errors.New("unknown compression")

func ParseCompression(name string) (Compression, error) {
	switch name {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	}
	return CompressionNone, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
}

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	}
	return fmt.Sprintf("compression(%d)", uint8(c))
}

// Snapshot holds both sets of a run so they can be reloaded without
// re-parsing the text files.
type Snapshot struct {
	V1 Set
	V2 Set
}

// SaveSnapshot writes a one-byte compression tag followed by the
// gob-encoded snapshot.
func SaveSnapshot(filename string, snap Snapshot, compression Compression) error {
	return SaveToFile(filename, func(w io.Writer) error {
		if _, err := w.Write([]byte{byte(compression)}); err != nil {
			return err
		}

		switch compression {
		case CompressionNone:
			return gob.NewEncoder(w).Encode(snap)
		case CompressionLZ4:
			zw := lz4.NewWriter(w)
			if err := gob.NewEncoder(zw).Encode(snap); err != nil {
				return err
			}
			return zw.Close()
		case CompressionZSTD:
			zw, err := zstd.NewWriter(w)
			if err != nil {
				return err
			}
			if err := gob.NewEncoder(zw).Encode(snap); err != nil {
				_ = zw.Close()
				return err
			}
			return zw.Close()
		}
		return fmt.Errorf("%w: %d", ErrUnknownCompression, compression)
	})
}

func LoadSnapshot(filename string) (Snapshot, error) {
	var snap Snapshot

	file, err := os.Open(filename)
	if err != nil {
		return snap, err
	}
	defer file.Close()

	br := bufio.NewReader(file)
	tag, err := br.ReadByte()
	if err != nil {
		return snap, fmt.Errorf("%s: reading compression tag: %w", filename, err)
	}

	var r io.Reader
	switch Compression(tag) {
	case CompressionNone:
		r = br
	case CompressionLZ4:
		r = lz4.NewReader(br)
	case CompressionZSTD:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return snap, err
		}
		defer zr.Close()
		r = zr
	default:
		return snap, fmt.Errorf("%s: %w: %d", filename, ErrUnknownCompression, tag)
	}

	err = gob.NewDecoder(r).Decode(&snap)
	return snap, err
}
