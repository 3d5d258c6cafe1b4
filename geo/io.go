package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// DecodeRecords reads a JSON record array. Unknown fields are ignored.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var recs []Record
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("geo: decode records: %w", err)
	}

	return recs, nil
}

// Load decodes r and builds a Model.
func Load(r io.Reader) (*Model, error) {
	recs, err := DecodeRecords(r)
	if err != nil {
		return nil, err
	}

	return NewModel(recs)
}

// LoadFile opens path and builds a Model.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geo: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// WriteRecords encodes recs as an indented JSON array.
func WriteRecords(w io.Writer, recs []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(recs)
}
