package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/chaimleib/intervaltree"
)

// loadTree reads begin,end,data rows (int, int, string) from a CSV file
// into an intervaltree.Tree. encoding/csv is used directly: no third-party
// CSV reader appears anywhere in the retrieval pack.
func loadTree(path string) (*intervaltree.Tree[int, string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	t := intervaltree.New[int, string]()
	for i, row := range rows {
		begin, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad begin %q: %w", i, row[0], err)
		}
		end, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad end %q: %w", i, row[1], err)
		}
		if err := t.AddInterval(begin, end, row[2]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return t, nil
}
