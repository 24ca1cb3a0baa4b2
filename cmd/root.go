// Package cmd implements the scenepath CLI: navigate scene and data
// documents by dotted path, find instances by class, and render trees.
package cmd

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/scenepath/internal/formatter"
	"github.com/oakwood-commons/scenepath/internal/ui"
	"github.com/oakwood-commons/scenepath/pkg/logger"
	"github.com/oakwood-commons/scenepath/pkg/navigator"
	"github.com/oakwood-commons/scenepath/pkg/scene"
	"github.com/oakwood-commons/scenepath/pkg/settings"
)

var (
	pathExpr    string
	output      string
	sceneMode   bool
	interactive bool
	noColor     bool
	waitTimeout time.Duration
	logLevel    int8
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [file]",
	Short: "Navigate scene hierarchies and nested documents by dotted path",
	Long: `scenepath resolves dotted paths like "Workspace.Car.Wheel" against scene
hierarchies and nested YAML/JSON/TOML documents, and locates instances by
class. Input comes from a file argument or stdin.`,
	Example: "\n  scenepath scene.yaml -p Workspace.Car.Wheel\n  scenepath config.yaml -p server.port -o raw\n  scenepath scene.yaml -i\n  cat data.json | scenepath -p items.0.name\n",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Get(logLevel)
		ctx := logger.WithLogger(cmd.Context(), log)

		root, err := loadRootNode(args)
		if err != nil {
			return err
		}

		if interactive {
			return runExplorer(root)
		}

		navCtx := ctx
		if waitTimeout > 0 {
			var cancel context.CancelFunc
			navCtx, cancel = context.WithTimeout(ctx, waitTimeout)
			defer cancel()
		}

		log.V(1).Info("navigating", "path", pathExpr, "output", output)
		node, err := navigator.Resolve(navCtx, root, pathExpr)
		if err != nil {
			return err
		}

		rendered, err := renderNode(node, output)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// renderNode formats a navigation result. Scene instances render as scene
// trees (or re-encode to their document form for the data formats);
// documents render via the data formatters.
func renderNode(node any, format string) (string, error) {
	if in, ok := node.(*scene.Instance); ok {
		if format == "tree" {
			return formatter.FormatSceneTree(in, formatter.TreeOptions{NoColor: noColor}), nil
		}
		return formatter.Encode(scene.Encode(in), format)
	}
	if format == "tree" {
		return formatter.FormatAsTree(node, formatter.TreeOptions{NoColor: noColor}), nil
	}
	return formatter.Encode(node, format)
}

func runExplorer(root any) error {
	model := ui.NewModel(root, noColor)
	_, err := tea.NewProgram(model).Run()
	return err
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print scenepath version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
		return nil
	},
}

func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s)", settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime)
}

func init() { //nolint:gochecknoinits
	rootCmd.Flags().StringVarP(&pathExpr, "path", "p", "", "dotted path to navigate, e.g. 'Workspace.Car.Wheel' (empty = root)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "tree", "output format: tree|yaml|json|toml|raw")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the document in an interactive explorer")
	rootCmd.Flags().DurationVar(&waitTimeout, "timeout", 5*time.Second, "deadline for hierarchy child waits (0 = wait forever)")
	rootCmd.PersistentFlags().BoolVar(&sceneMode, "scene", false, "force decoding the document as a scene hierarchy")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().Int8Var(&logLevel, "log-level", 0, "minimum log level (zap levels; negative = more verbose)")
	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(treeCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
