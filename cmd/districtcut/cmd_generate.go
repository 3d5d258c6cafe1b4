package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/districtcut/builder"
	"github.com/katalvlaran/districtcut/geo"
)

type generateFlags struct {
	output    string
	seed      int64
	popMin    int
	popMax    int
	weightMin float64
	weightMax float64
	state     int
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic map as JSON records",
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.output, "output", "o", "-", "Output file, - for stdout")
	pf.Int64Var(&f.seed, "seed", 1, "RNG seed")
	pf.IntVar(&f.popMin, "pop-min", 800, "Minimum unit population")
	pf.IntVar(&f.popMax, "pop-max", 1200, "Maximum unit population")
	pf.Float64Var(&f.weightMin, "weight-min", 0.5, "Minimum adjacency weight")
	pf.Float64Var(&f.weightMax, "weight-max", 2, "Maximum adjacency weight")
	pf.IntVar(&f.state, "state", 0, "Use FIPS-style GEOIDs for this state code (0 = plain indices)")

	var rows, cols int
	grid := &cobra.Command{
		Use:   "grid",
		Short: "Rows×cols lattice of precincts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generate(cmd, f, builder.Grid(rows, cols))
		},
	}
	grid.Flags().IntVar(&rows, "rows", 4, "Grid rows")
	grid.Flags().IntVar(&cols, "cols", 4, "Grid columns")

	var n int
	path := &cobra.Command{
		Use:   "path",
		Short: "Corridor of precincts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generate(cmd, f, builder.Path(n))
		},
	}
	path.Flags().IntVar(&n, "n", 8, "Number of units")

	cmd.AddCommand(grid, path)

	return cmd
}

func generate(cmd *cobra.Command, f generateFlags, con builder.Constructor) (err error) {
	if f.popMin < 0 || f.popMax < f.popMin || f.weightMin < 0 || f.weightMax < f.weightMin {
		return fmt.Errorf("generate: need 0 ≤ min ≤ max for populations and weights")
	}
	if f.state < 0 || f.state > 99 {
		return fmt.Errorf("generate: state code %d outside [0, 99]", f.state)
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithUniformPopulation(f.popMin, f.popMax),
		builder.WithUniformWeight(f.weightMin, f.weightMax),
	}
	if f.state > 0 {
		opts = append(opts, builder.WithFIPSIDs(f.state))
	}

	recs, err := builder.Build(opts, con)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if f.output != "-" {
		file, err := os.Create(f.output)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		w = file
	}

	return geo.WriteRecords(w, recs)
}
