package csv_store

import (
	"bytes"
	"ecommerce_dataset/constants"
	"ecommerce_dataset/model"
	"errors"
	"github.com/gocarina/gocsv"
	"github.com/romana/rlog"
	"io"
	"os"
	"path/filepath"
)

func init() {
	// Every tagged column must be present in the header
	gocsv.FailIfUnmatchedStructTags = true
}

// FileName returns the CSV file that stores table.
func FileName(table string) string {
	return table + ".csv"
}

// Encode writes rows, a slice of tagged structs, with a header line.
func Encode(w io.Writer, rows interface{}) error {
	return gocsv.Marshal(rows, w)
}

// Decode reads a header line and rows into out, a pointer to a slice.
func Decode(r io.Reader, out interface{}) error {
	return gocsv.Unmarshal(r, out)
}

func tableRows(s *model.Snapshot) []interface{} {
	return []interface{}{&s.Customers, &s.Products, &s.Orders, &s.OrderItems, &s.Reviews}
}

// WriteSnapshot encodes every table before touching dir so a failed encode
// leaves no partial dataset behind.
func WriteSnapshot(dir string, s *model.Snapshot) error {
	rows := tableRows(s)
	encoded := make([][]byte, len(constants.ALL_TABLES))
	for i, table := range constants.ALL_TABLES {
		var buf bytes.Buffer
		if err := Encode(&buf, rows[i]); err != nil {
			return &model.IOError{Op: "encode " + table, Err: err}
		}
		encoded[i] = buf.Bytes()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &model.IOError{Op: "create directory", Path: dir, Err: err}
	}
	for i, table := range constants.ALL_TABLES {
		path := filepath.Join(dir, FileName(table))
		if err := os.WriteFile(path, encoded[i], 0o644); err != nil {
			return &model.IOError{Op: "write", Path: path, Err: err}
		}
		rlog.Debugf("Wrote %s (%d bytes)", path, len(encoded[i]))
	}
	return nil
}

// ReadSnapshot loads the five tables written by WriteSnapshot.
func ReadSnapshot(dir string) (*model.Snapshot, error) {
	s := &model.Snapshot{}
	rows := tableRows(s)
	for i, table := range constants.ALL_TABLES {
		path := filepath.Join(dir, FileName(table))
		if err := readFile(path, rows[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func readFile(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return &model.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	if err := Decode(f, out); err != nil {
		// An empty table is still a valid file with a header only
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil
		}
		return &model.IOError{Op: "decode", Path: path, Err: err}
	}
	return nil
}
