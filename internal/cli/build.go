package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabaker/thorium/internal/toolbox"
)

var (
	buildConfigPath   string
	buildOverridePath bool
	buildRoot         string
	buildOutput       string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Aggregate component declarations into a toolbox manifest",
	Long: `Scan a repository tree for component declarations (manifest.toml or
manifest.yaml, one per component directory) and merge them into a single
toolbox manifest. Per-declaration problems are reported as warnings on
stderr and do not fail the build; only an unreadable or malformed toolbox
config does.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildConfigPath, "config", "c", "", "Path to the top-level toolbox config (required)")
	buildCmd.Flags().BoolVarP(&buildOverridePath, "override_path", "o", false, "Tag images by component name instead of image_name")
	buildCmd.Flags().StringVar(&buildRoot, "root", ".", "Repository root to scan for declarations")
	buildCmd.Flags().StringVar(&buildOutput, "output", toolbox.DefaultOutputPath, "Output path for the aggregate manifest")
	buildCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := toolbox.LoadConfig(buildConfigPath)
	if err != nil {
		return err
	}

	result, err := toolbox.BuildManifest(cfg, buildRoot, buildOverridePath)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}

	if err := toolbox.Write(result.Manifest, buildOutput); err != nil {
		return err
	}

	m := result.Manifest
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d images, %d pipelines\n",
		buildOutput, len(m.Images), len(m.Pipelines))
	return nil
}
