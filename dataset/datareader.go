package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const delimiter = ","

var ErrMalformedLine = errors.New("malformed vector line")

// DataSource provides the vectors of a single set.
type DataSource interface {
	GetDataSet() (Set, error)
}

// DataReader reads a set from a delimited text file written by WriteSetFile.
type DataReader struct {
	SourceFile string
}

// ParseVector parses one line of Dim comma-separated decimal numbers.
func ParseVector(line string) (vector Vector, err error) {
	parts := strings.Split(line, delimiter)
	if len(parts) != Dim {
		return vector, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedLine, Dim, len(parts))
	}
	for idx, num := range parts {
		vector[idx], err = strconv.ParseFloat(num, 64)
		if err != nil {
			return vector, fmt.Errorf("%w: field %d: %w", ErrMalformedLine, idx+1, err)
		}
	}
	return vector, nil
}

// ReadSet parses one vector per line. Empty lines are skipped.
func ReadSet(r io.Reader) (Set, error) {
	scanner := bufio.NewScanner(r)

	var vectors Set
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		// skip empty lines
		if strings.TrimSpace(line) == "" {
			continue
		}
		vector, err := ParseVector(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		vectors = append(vectors, vector)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vectors, nil
}

func (r DataReader) GetDataSet() (Set, error) {
	file, err := os.Open(r.SourceFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	vectors, err := ReadSet(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.SourceFile, err)
	}
	return vectors, nil
}
