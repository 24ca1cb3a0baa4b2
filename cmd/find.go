package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/scenepath/pkg/logger"
	"github.com/oakwood-commons/scenepath/pkg/navigator"
	"github.com/oakwood-commons/scenepath/pkg/scene"
)

var findCmd = &cobra.Command{
	Use:   "find <file> <class>",
	Short: "Find the first descendant of a class in a scene hierarchy",
	Long: `find decodes the document as a scene hierarchy and scans the root's
descendants depth-first for the first instance whose class matches the given
class or inherits from it. The root itself is never matched. Prints the full
dotted path of the match; exits non-zero when no descendant matches.`,
	Example: "\n  scenepath find scene.yaml Part\n  scenepath find scene.yaml BasePart -o raw\n",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Get(logLevel)

		doc, err := loadDocument(args[:1])
		if err != nil {
			return err
		}
		root, err := scene.Decode(doc)
		if err != nil {
			return fmt.Errorf("%s is not a scene document: %w", args[0], err)
		}

		class := args[1]
		log.V(1).Info("scanning descendants", "class", class, "root", root.Name())
		found, ok := navigator.FindFirstDescendantOfClass(root, class)
		if !ok {
			return fmt.Errorf("no descendant of class %q under %q", class, root.Name())
		}
		fmt.Fprintln(cmd.OutOrStdout(), found.FullPath().String())
		return nil
	},
}
