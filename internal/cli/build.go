package cli

import (
	"github.com/spf13/cobra"
)

func buildCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Build road networks and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			_, networks, stats, err := buildInput(cmd.Context(), args[0], cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Built %d networks", len(networks))
			printStats(out, stats)
			printNetworks(out, networks)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	return cmd
}
