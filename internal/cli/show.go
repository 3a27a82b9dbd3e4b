package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/kinship-dev/kinship/pkg/family/transform"
	"github.com/kinship-dev/kinship/pkg/hierarchy"
)

// newShowCmd creates the show command, which imports a family-tree file and
// prints its derived hierarchy.
func newShowCmd() *cobra.Command {
	var (
		format   string
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:   "show <input>",
		Short: "Print the family tree derived from a CSV or GEDCOM file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			from, err := resolveFormat(format, args[0], false)
			if err != nil {
				return err
			}
			sess, report, err := importFile(c.Context(), args[0], from, maxDepth)
			if err != nil {
				return err
			}

			root := sess.Hierarchy()
			if root == nil {
				fmt.Println("(empty tree)")
				return nil
			}
			fmt.Println(renderTree(root))
			fmt.Printf("%s individuals, %s generations\n",
				styleCount.Render(fmt.Sprint(report.Individuals)),
				styleCount.Render(fmt.Sprint(hierarchy.Depth(root))))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "input format: csv|gedcom (detected from extension if empty)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", transform.DefaultMaxDepth, "cycle-detection traversal bound")
	return cmd
}

// renderTree draws the hierarchy with box-drawing branches. The virtual
// multi-root container is styled differently from real individuals so it
// cannot be mistaken for one.
func renderTree(n *hierarchy.Node) string {
	return toTree(n).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(styleBranch).
		String()
}

func toTree(n *hierarchy.Node) *tree.Tree {
	label := styleIndividual.Render(n.Name)
	if n.Virtual {
		label = styleVirtualRoot.Render("(" + n.Name + ")")
	}
	t := tree.Root(label)
	for _, c := range n.Children {
		t.Child(toTree(c))
	}
	return t
}
