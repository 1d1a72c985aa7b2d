package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize recipebook storage",
		Long:  "Create the configuration and data directories, then attach the storage backend once.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// config.yaml already exists: setup wrote it.
			s, err := a.open()
			if err != nil {
				return err
			}
			if err := s.Close(); err != nil {
				return sysError(fmt.Errorf("finalize storage: %w", err))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Recipebook initialized successfully")
			fmt.Fprintf(out, "config:  %s\n", filepath.Join(a.configDir, configFileExt))
			fmt.Fprintf(out, "data:    %s (%s)\n", a.config.DataDir, a.config.Backend)
			return nil
		},
	}
}
