package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gabaker/thorium/internal/manifest"
	"github.com/gabaker/thorium/internal/toolbox"
)

var (
	listRoot       string
	listTypeFilter string
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List component declarations discovered in a repository",
	Long:  `Scan a repository tree and list every discovered declaration without building or writing a toolbox manifest.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listRoot, "root", ".", "Repository root to scan for declarations")
	listCmd.Flags().StringVar(&listTypeFilter, "type", "", "Filter by type (image, pipeline)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a discovered declaration for display.
type listEntry struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Path    string `json:"path"`
}

func runList(cmd *cobra.Command, args []string) error {
	paths, err := toolbox.Discover(listRoot)
	if err != nil {
		return err
	}

	var entries []listEntry
	for _, path := range paths {
		base, err := manifest.Parse(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			continue
		}
		if listTypeFilter != "" && base.Type != listTypeFilter {
			continue
		}

		version := base.Version
		if version == "" {
			version = toolbox.DefaultVersion
		}

		entries = append(entries, listEntry{
			Type:    base.Type,
			Name:    base.Name,
			Version: version,
			Path:    path,
		})
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No declarations found.")
		return nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return toolbox.CompareVersions(a.Version, b.Version) < 0
	})

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TYPE\tNAME\tVERSION\tPATH")
	for _, e := range entries {
		name := e.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Type, name, e.Version, e.Path)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
