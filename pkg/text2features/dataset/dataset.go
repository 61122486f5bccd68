// Package dataset builds boolean feature datasets from per-document keywords:
// one column per keyword of the universe, one row per document.
package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cognicore/text2features/pkg/text2features/internalerr"
)

// Row is a document and its keywords, as written by the batch handler.
type Row struct {
	Name     string
	Keywords []string
}

// Dataset is a boolean document/feature matrix.
type Dataset struct {
	Features []string // column names
	Names    []string // document per row
	Values   [][]bool // Values[i][j]: document i has feature j

	index map[string]int
}

// FromRows builds a dataset over the sorted union of all keywords.
func FromRows(rows []Row) *Dataset {
	set := make(map[string]struct{})
	for _, r := range rows {
		for _, kw := range r.Keywords {
			set[kw] = struct{}{}
		}
	}
	features := make([]string, 0, len(set))
	for kw := range set {
		features = append(features, kw)
	}
	sort.Strings(features)
	return WithFeatures(rows, features)
}

// WithFeatures builds a dataset over a fixed feature list. Keywords outside
// features are ignored.
func WithFeatures(rows []Row, features []string) *Dataset {
	index := make(map[string]int, len(features))
	for j, f := range features {
		index[f] = j
	}

	ds := &Dataset{
		Features: append([]string(nil), features...),
		Names:    make([]string, len(rows)),
		Values:   make([][]bool, len(rows)),
		index:    index,
	}
	for i, r := range rows {
		ds.Names[i] = r.Name
		ds.Values[i] = make([]bool, len(features))
		for _, kw := range r.Keywords {
			if j, ok := index[kw]; ok {
				ds.Values[i][j] = true
			}
		}
	}
	return ds
}

// Has reports whether document row i has feature f.
func (d *Dataset) Has(i int, f string) bool {
	j, ok := d.index[f]
	return ok && d.Values[i][j]
}

// ReadKeywordsCSV parses batch output rows `name, kw1, kw2, ...`.
// A zero delimiter means ','.
func ReadKeywordsCSV(r io.Reader, delimiter rune) ([]Row, error) {
	cr := csv.NewReader(r)
	if delimiter != 0 {
		cr.Comma = delimiter
	}
	cr.FieldsPerRecord = -1

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidInput, err)
		}
		if len(rec) == 0 || rec[0] == "" {
			continue
		}
		kws := make([]string, 0, len(rec)-1)
		for _, kw := range rec[1:] {
			if kw = strings.TrimSpace(kw); kw != "" {
				kws = append(kws, kw)
			}
		}
		rows = append(rows, Row{Name: rec[0], Keywords: kws})
	}
	return rows, nil
}

// ReadUniverse parses a newline-separated keyword list. Blank lines are
// skipped.
func ReadUniverse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if kw := strings.TrimSpace(sc.Text()); kw != "" {
			out = append(out, kw)
		}
	}
	return out, sc.Err()
}

// WriteCSV writes the dataset with a `filename` header column followed by
// one column per feature; cells are 0 or 1.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(d.Features)+1)
	header = append(header, "filename")
	header = append(header, d.Features...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(d.Features)+1)
	for i, name := range d.Names {
		row[0] = name
		for j, v := range d.Values[i] {
			if v {
				row[j+1] = "1"
			} else {
				row[j+1] = "0"
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
