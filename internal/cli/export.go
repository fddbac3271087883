package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/LdDl/roadnet"
)

const (
	formatCSV     = "csv"
	formatGeoJSON = "geojson"
	formatDOT     = "dot"
	formatSVG     = "svg"
)

func exportCommand() *cobra.Command {
	var configPath, format, output string
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export road networks as CSV, GeoJSON, DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			format = strings.ToLower(format)
			if output == "" {
				output = "networks." + format
			}
			in, networks, _, err := buildInput(cmd.Context(), args[0], cfg)
			if err != nil {
				return err
			}
			st := startStage(loggerFromContext(cmd.Context()), "Networks exported")
			if err := exportNetworks(cmd.Context(), networks, in.mercator, format, output); err != nil {
				return err
			}
			st.done("format", format, "networks", len(networks), "file", output)
			printSuccess(cmd.OutOrStdout(), "Exported %d networks", len(networks))
			printFile(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&format, "format", "f", formatCSV, "output format: csv, geojson, dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default networks.<format>)")
	return cmd
}

func exportNetworks(ctx context.Context, networks []*roadnet.Network, mercator bool, format, output string) error {
	var data []byte
	switch format {
	case formatCSV:
		return roadnet.ExportNetworksCSV(networks, output)
	case formatGeoJSON:
		var err error
		data, err = roadnet.NetworksToGeoJSON(networks, mercator)
		if err != nil {
			return err
		}
	case formatDOT:
		data = []byte(roadnet.NetworksToDOT(networks))
	case formatSVG:
		var err error
		data, err = roadnet.RenderDOTToSVG(ctx, roadnet.NetworksToDOT(networks))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format '%s' (expected csv, geojson, dot or svg)", format)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(err, "Can't write output")
	}
	return nil
}
