// Command districtcut splits a map of geographic units into population-balanced
// districts by repeated balanced min-cuts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("districtcut version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("districtcut version %s-dev", version)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "districtcut",
		Short:        "Balanced min-cut districting",
		Version:      versionString(),
		SilenceUsage: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.AddCommand(newRunCmd())
	root.AddCommand(newGenerateCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
