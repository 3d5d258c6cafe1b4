// Package report writes a partition.Plan as the two CSV tables of a run:
//
//	district_outputs/<name>.csv   district,precinct   (1-based district)
//	runtimes/<name>.csv           district,runtime    (0-based cut, seconds) + "Sum:,<total>"
//
// Both files are staged as temporaries next to their targets and renamed only
// after both were written, so a failed run leaves no finalized output.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/katalvlaran/districtcut/partition"
)

// Output directories under Layout.Dir.
const (
	DistrictsDir = "district_outputs"
	RuntimesDir  = "runtimes"
)

// ErrNilPlan is returned when there is nothing to write.
var ErrNilPlan = errors.New("report: plan is nil")

// Layout names the output files of one run.
type Layout struct {
	Dir  string
	Name string
}

// DistrictsPath is <Dir>/district_outputs/<Name>.csv.
func (l Layout) DistrictsPath() string {
	return filepath.Join(l.Dir, DistrictsDir, l.Name+".csv")
}

// RuntimesPath is <Dir>/runtimes/<Name>.csv.
func (l Layout) RuntimesPath() string {
	return filepath.Join(l.Dir, RuntimesDir, l.Name+".csv")
}

// WriteDistricts writes the district,precinct table.
func WriteDistricts(w io.Writer, plan *partition.Plan) error {
	if plan == nil {
		return ErrNilPlan
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"district", "precinct"}); err != nil {
		return err
	}
	for _, d := range plan.Districts {
		num := strconv.Itoa(d.Number)
		for _, id := range d.Units {
			if err := cw.Write([]string{num, id}); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteRuntimes writes the district,runtime table and its Sum row.
func WriteRuntimes(w io.Writer, plan *partition.Plan) error {
	if plan == nil {
		return ErrNilPlan
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"district", "runtime"}); err != nil {
		return err
	}
	for i, d := range plan.Runtimes {
		if err := cw.Write([]string{strconv.Itoa(i), seconds(d)}); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"Sum:", seconds(plan.TotalRuntime())}); err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}

// Write stages and commits both tables for plan under layout.
func Write(layout Layout, plan *partition.Plan) error {
	if plan == nil {
		return ErrNilPlan
	}
	if layout.Name == "" {
		return fmt.Errorf("report: empty output name")
	}

	districts, err := stage(layout.DistrictsPath(), func(w io.Writer) error { return WriteDistricts(w, plan) })
	if err != nil {
		return err
	}
	runtimes, err := stage(layout.RuntimesPath(), func(w io.Writer) error { return WriteRuntimes(w, plan) })
	if err != nil {
		districts.discard()
		return err
	}

	if err := districts.commit(); err != nil {
		runtimes.discard()
		return err
	}

	return runtimes.commit()
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// staged is a fully written temporary file awaiting rename.
type staged struct {
	tmp, final string
}

func stage(final string, fill func(io.Writer) error) (*staged, error) {
	dir := filepath.Dir(final)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(final)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	s := &staged{tmp: f.Name(), final: final}

	if err := fill(f); err != nil {
		f.Close()
		s.discard()
		return nil, fmt.Errorf("report: write %s: %w", final, err)
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		s.discard()
		return nil, fmt.Errorf("report: chmod %s: %w", final, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		s.discard()
		return nil, fmt.Errorf("report: sync %s: %w", final, err)
	}
	if err := f.Close(); err != nil {
		s.discard()
		return nil, fmt.Errorf("report: close %s: %w", final, err)
	}

	return s, nil
}

func (s *staged) commit() error {
	if err := os.Rename(s.tmp, s.final); err != nil {
		s.discard()
		return fmt.Errorf("report: %w", err)
	}

	return nil
}

func (s *staged) discard() { _ = os.Remove(s.tmp) }
