package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/scenepath/internal/formatter"
	"github.com/oakwood-commons/scenepath/pkg/scene"
)

var (
	treeMaxDepth int
	treeNoValues bool
)

var treeCmd = &cobra.Command{
	Use:     "tree [file]",
	Short:   "Render a document or scene hierarchy as an ASCII tree",
	Example: "\n  scenepath tree scene.yaml\n  scenepath tree config.yaml --depth 2 --no-values\n",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := loadRootNode(args)
		if err != nil {
			return err
		}

		opts := formatter.TreeOptions{
			NoValues: treeNoValues,
			MaxDepth: treeMaxDepth,
			NoColor:  noColor,
		}
		var out string
		if in, ok := root.(*scene.Instance); ok {
			out = formatter.FormatSceneTree(in, opts)
		} else {
			out = formatter.FormatAsTree(root, opts)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() { //nolint:gochecknoinits
	treeCmd.Flags().IntVar(&treeMaxDepth, "depth", 0, "limit tree depth (0 = unlimited)")
	treeCmd.Flags().BoolVar(&treeNoValues, "no-values", false, "show structure only (hide values)")
}
