package dataset

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FormatVector renders the components in their shortest round-trip
// decimal form, separated by commas.
func FormatVector(vector Vector) string {
	var sb strings.Builder
	for i, x := range vector {
		if i > 0 {
			sb.WriteString(delimiter)
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return sb.String()
}

// WriteSet writes one newline-terminated line per vector.
func WriteSet(w io.Writer, vectors Set) error {
	for _, vector := range vectors {
		if _, err := io.WriteString(w, FormatVector(vector)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func WriteSetFile(filename string, vectors Set) error {
	return SaveToFile(filename, func(w io.Writer) error {
		return WriteSet(w, vectors)
	})
}

// SaveToFile writes through a temp file in the target directory and renames
// it over filename once everything is flushed. On failure filename is left
// untouched and the temp file is removed.
func SaveToFile(filename string, writeFunc func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	_ = tmp.Chmod(0644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := writeFunc(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	tmpName = ""
	return nil
}
