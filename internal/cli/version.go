package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebook/pkg/recipebook"
)

const modulePath = "github.com/mesh-intelligence/recipebook"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the recipebook version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "recipebook v%s\nmodule: %s\n", recipebook.Version, modulePath)
			return nil
		},
	}
}
