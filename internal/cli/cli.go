// Package cli implements the roadnet command-line interface.
//
// Commands:
//   - build: build road networks and print a summary
//   - export: write networks as CSV, GeoJSON, DOT or SVG
//   - serve: expose built networks over HTTP as GeoJSON
//
// Every command reads a topology from a TOML description (*.toml) or an
// OpenStreetMap extract (*.osm, *.xml, *.pbf). A TOML config passed with
// --config tunes OSM import and templates.
package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X github.com/LdDl/roadnet/internal/cli.version=..."
var version = "dev"

// Execute runs the roadnet CLI
func Execute(ctx context.Context) error {
	return rootCommand().ExecuteContext(ctx)
}

func rootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "roadnet",
		Short:        "roadnet turns road topology into connected road networks",
		Long:         `roadnet builds straight segments, curves, crossings and end caps out of a road topology and groups them into connected networks per road template.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(buildCommand())
	root.AddCommand(exportCommand())
	root.AddCommand(serveCommand())
	return root
}
