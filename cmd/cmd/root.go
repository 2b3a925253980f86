package cmd

import (
	"fmt"

	"github.com/ostafen/sniff/internal/env"
	"github.com/spf13/cobra"
)

func Execute() error {
	rootCmd := &cobra.Command{
		Use:     env.AppName,
		Short:   env.AppName + " - content-based file format detection",
		Version: fmt.Sprintf("%s (commit %s, built %s)", env.Version, env.CommitHash, env.BuildTime),
	}

	rootCmd.AddCommand(DefineDetectCommand())
	rootCmd.AddCommand(DefineFormatsCommand())

	return rootCmd.Execute()
}
