package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/depres/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [configurations...]",
		Short: "Resolve configurations and print the selected modules",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			offline, _ := cmd.Flags().GetBool("offline")
			refresh, _ := cmd.Flags().GetBool("refresh")
			metricsFile, _ := cmd.Flags().GetString("metrics-file")

			results, err := c.app.Resolve(cmd.Context(), app.ResolveOptions{
				ConfigPath:     configPath,
				Configurations: args,
				Offline:        offline,
				Refresh:        refresh,
				MetricsFile:    metricsFile,
			})
			if err != nil {
				return err
			}
			for _, r := range results {
				if err := app.WriteGraph(cmd.OutOrStdout(), r); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringP("config", "c", "", "Path to the project file (default depres.yaml)")
	cmd.Flags().Bool("offline", false, "Treat every cached version listing as fresh")
	cmd.Flags().Bool("refresh", false, "Ignore cached version listings for this run")
	cmd.Flags().String("metrics-file", "", "Write a Prometheus textfile with resolution metrics")
	return cmd
}
