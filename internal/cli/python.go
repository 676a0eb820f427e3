package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/solvberg/pygmalion/internal/codegen"
	"github.com/solvberg/pygmalion/internal/config"
	"github.com/solvberg/pygmalion/internal/loader"
	"github.com/spf13/cobra"
)

func NewPythonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "python",
		Short: "Generate a Python client package from an OpenAPI spec",
		RunE:  runPythonGenerate,
	}

	flags := cmd.Flags()
	flags.StringP("package", "p", "", "Python package name (default: derived from the document title)")
	flags.String("package-version", "", "Package version (default: the document's info.version)")
	flags.String("base-url", "", "Default base URL baked into the client")

	return cmd
}

func runPythonGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	result, err := loader.Load(cfg.Spec)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	for _, w := range result.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	spec, err := loader.Transform(result)
	if err != nil {
		return fmt.Errorf("transforming spec: %w", err)
	}

	cmd.PrintErrf("Loaded OpenAPI %s: %s v%s\n", result.Version, spec.Info.Title, spec.Info.Version)
	cmd.PrintErrf("  Schemas: %d\n", len(spec.Schemas))
	cmd.PrintErrf("  Operations: %d\n", len(spec.Operations))

	gen, err := codegen.New(cfg)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}

	output, err := gen.Generate(spec)
	if err != nil {
		return fmt.Errorf("generating package: %w", err)
	}

	for _, w := range output.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	paths := make([]string, 0, len(output.Files))
	for path := range output.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	if cfg.DryRun {
		for _, path := range paths {
			cmd.Printf("# %s\n%s\n", path, output.Files[path])
		}
		return nil
	}

	for _, path := range paths {
		dest := filepath.Join(cfg.OutputDir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(dest, []byte(output.Files[path]), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		cmd.PrintErrf("Written: %s\n", dest)
	}

	return nil
}
