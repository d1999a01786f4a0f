package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/facette/natsort"
)

// CSV rows are ordered by their first column in natural order, so
// "bisection#2" sorts before "bisection#10".
type CSV [][]string

func (data CSV) Less(i, j int) bool {
	return natsort.Compare(data[i][0], data[j][0])
}

func (data CSV) Len() int {
	return len(data)
}
func (data CSV) Swap(i, j int) {
	data[i], data[j] = data[j], data[i]
}

func WriteCSV(w io.Writer, data CSV, columns []string) error {
	cw := csv.NewWriter(w)
	if len(columns) > 0 {
		if err := cw.Write(columns); err != nil {
			return fmt.Errorf("error writing csv header: %w", err)
		}
	}
	sort.Sort(data)
	if err := cw.WriteAll(data); err != nil {
		return fmt.Errorf("error writing csv: %w", err)
	}
	return nil
}

func WriteAsCSV(data CSV, path, subpath, filename string, columns []string) (string, error) {
	file, err := OpenFile(true, path, subpath, GetFilename(filename))
	if err != nil {
		return "", fmt.Errorf("unable to create %s: %w", filename, err)
	}
	defer file.Close()
	if err := WriteCSV(file, data, columns); err != nil {
		return "", err
	}
	return file.Name(), nil
}
