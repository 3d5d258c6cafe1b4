package geo

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrEmptyInput          = errors.New("geo: no records")
	ErrEmptyID             = errors.New("geo: empty GEOID")
	ErrDuplicateID         = errors.New("geo: duplicate GEOID")
	ErrBadPopulation       = errors.New("geo: population must be finite and non-negative")
	ErrAdjacencyIndex      = errors.New("geo: adjacency index out of range")
	ErrWeightsMismatch     = errors.New("geo: adj and weights differ in length")
	ErrUnknownUnit         = errors.New("geo: unknown unit")
	ErrInconsistentWeights = errors.New("geo: weight is NaN, infinite or negative")
)

// Record is one input row.
type Record struct {
	GEOID   string    `json:"GEOID"`
	Adj     []int     `json:"adj"`
	Pop     float64   `json:"pop"`
	Weights []float64 `json:"weights"`
}

// RecordError locates a failure at record Index.
type RecordError struct {
	Index int
	GEOID string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("geo: record %d (%q): %v", e.Index, e.GEOID, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Unit is an immutable geographic unit.
type Unit struct {
	ID         string
	Population float64
}
