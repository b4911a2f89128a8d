package cli

import "github.com/spf13/cobra"

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   "toolbox",
	Short: "Build and inspect Thorium toolbox manifests",
	Long: `toolbox aggregates the per-component declarations of an analysis-tool
repository into a single toolbox manifest and derives the CI build matrix
from it. Diagnostics go to stderr; the manifest only ever goes to its
output file.`,
	SilenceUsage: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
