package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// record is one CSV row keyed by header name.
type record map[string]string

// readTable loads a whole collection file. A missing file is an empty collection.
// Rows are matched to the header by name, so files written with fewer columns still load.
func readTable(path string) ([]record, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header of %s: %w", filepath.Base(path), err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows []record
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", filepath.Base(path), err)
		}
		row := make(record, len(header))
		for i, name := range header {
			if i < len(fields) {
				row[name] = fields[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// writeTable replaces a collection file with header plus rows. The data goes to a
// temporary file in the same directory first and is renamed over the target.
func writeTable(path string, header []string, rows []record) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error creating temporary file for %s: %w", filepath.Base(path), err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	writer := csv.NewWriter(tmp)
	writer.UseCRLF = true

	if err := writer.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing header of %s: %w", filepath.Base(path), err)
	}
	line := make([]string, len(header))
	for _, row := range rows {
		for i, name := range header {
			line[i] = row[name]
		}
		if err := writer.Write(line); err != nil {
			tmp.Close()
			return fmt.Errorf("error writing %s: %w", filepath.Base(path), err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("error flushing %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("error replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ensureHeader creates the file with only its header row when it does not exist.
func ensureHeader(path string, header []string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error accessing %s: %w", filepath.Base(path), err)
	}
	return writeTable(path, header, nil)
}
