package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "specify",
		Short:   "Workspace and feature-path resolution for spec-driven development",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).With().Timestamp().Logger()
		},
	}

	cmd.PersistentFlags().String("dir", ".", "Directory to resolve the workspace from")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	cmd.AddCommand(
		newContextCmd(),
		newCheckCmd(),
		newWorktreeCmd(),
	)

	return cmd
}

// workdir resolves the --dir flag to an absolute path.
func workdir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving --dir: %w", err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return "", fmt.Errorf("--dir %s is not a directory", abs)
	}
	return abs, nil
}
