package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the module versions cache",
	}
	cmd.AddCommand(c.newCacheShowCmd())
	cmd.AddCommand(c.newCacheClearCmd())
	return cmd
}

func (c *CLI) newCacheShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show group:name",
		Short: "Print a cached version listing and its age",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _ := cmd.Flags().GetString("repo")
			listing, ok, err := c.app.ShowCache(cmd.Context(), repo, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				_, _ = fmt.Fprintf(out, "%s: not cached in %s\n", args[0], repo)
				return nil
			}
			_, _ = fmt.Fprintf(out, "%s (%s, age %s): %s\n",
				args[0], repo, listing.Age, strings.Join(listing.Versions, ", "))
			return nil
		},
	}
	cmd.Flags().StringP("repo", "r", "", "Repository id the listing was cached for")
	_ = cmd.MarkFlagRequired("repo")
	return cmd
}

func (c *CLI) newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the module versions cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ClearCache(cmd.Context())
		},
	}
}
