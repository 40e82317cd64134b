package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/heathj/nodeset/nodeset"
)

func classifyCmd() *cobra.Command {
	var scoped bool
	cmd := &cobra.Command{
		Use:   "classify SELECTOR...",
		Short: "Show which query each selector is routed to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape := color.New(color.FgGreen).SprintFunc()
			for _, sel := range args {
				s := nodeset.Classify(sel, scoped)
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", sel, shape(s), nodeset.Pattern(s, sel)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&scoped, "scoped", false, "classify as if a scope element were given")
	return cmd
}
