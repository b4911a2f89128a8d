package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabaker/thorium/internal/matrix"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix <toolbox.json|toolbox.toml>",
	Short: "Generate the CI build matrix from a toolbox manifest",
	Long: `Read a previously written toolbox manifest and print the build matrix as
a JSON array on stdout: one {build_path, image_name, image_tags} entry per
buildable image version. Versions missing a build context or registry image
name are reported on stderr and omitted from the matrix.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatrix,
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}

func runMatrix(cmd *cobra.Command, args []string) error {
	m, err := matrix.Load(args[0])
	if err != nil {
		return err
	}

	entries, problems := matrix.Generate(m)
	for _, p := range problems {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", p)
	}

	out, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling build matrix: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
