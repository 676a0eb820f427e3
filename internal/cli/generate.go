package cli

import (
	"github.com/solvberg/pygmalion/internal/config"
	"github.com/spf13/cobra"
)

func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate client libraries from an OpenAPI specification",
	}

	config.BindCommonFlags(cmd)
	cmd.AddCommand(NewPythonCmd())

	return cmd
}
