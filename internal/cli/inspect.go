package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/partbench/partbench/pkg/craft"
	"github.com/partbench/partbench/pkg/integrity"
	"github.com/partbench/partbench/pkg/staging"
)

// newInspectCmd creates the inspect command.
func newInspectCmd() *cobra.Command {
	var partUID uint32

	cmd := &cobra.Command{
		Use:   "inspect [craft.json]",
		Short: "Report deletability and breakability for craft parts",
		Long: `Report deletability and breakability for craft parts.

For every part, inspect prints whether the integrity engine would allow
deleting it and whether its symmetry group (if any) can be broken, along
with the rationale for negative symmetry verdicts.

Use --part to restrict the report to a single part UID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			doc, tree, err := loadCraftFile(args[0])
			if err != nil {
				return err
			}
			eng := integrity.New(tree, nil)

			fmt.Println(styleTitle.Render(doc.Name))
			shown := 0
			for _, uid := range staging.Order(tree) {
				p, ok := tree.Part(uid)
				if !ok {
					continue
				}
				if partUID != 0 && p.UID != craft.UID(partUID) {
					continue
				}
				printPartReport(tree, eng, p)
				shown++
			}
			if partUID != 0 && shown == 0 {
				return fmt.Errorf("part %d not found in %s", partUID, args[0])
			}

			prog.done(fmt.Sprintf("Inspected %d parts", shown))
			return nil
		},
	}

	cmd.Flags().Uint32Var(&partUID, "part", 0, "restrict to a single part UID")
	return cmd
}

func printPartReport(tree *craft.Tree, eng *integrity.Engine, p *craft.Part) {
	deletable, err := eng.IsDeletable(p.UID)
	if err != nil {
		return
	}

	indent := strings.Repeat("  ", depthOf(tree, p))
	line := fmt.Sprintf("%s%s %s", indent, styleValue.Render(p.Name), styleDim.Render(fmt.Sprintf("(%d)", p.UID)))
	line += "  delete " + yesNo(deletable)

	if p.HasSymmetry() {
		verdict, err := eng.HasBreakableSymmetry(p.UID)
		if err != nil {
			return
		}
		line += "  break " + yesNo(verdict.OK)
		if !verdict.OK {
			line += " " + styleDim.Render(verdict.Reason)
		}
	}
	fmt.Println(line)
}

func depthOf(tree *craft.Tree, p *craft.Part) int {
	depth := 0
	for cur := p; cur.Parent != craft.None; {
		parent, ok := tree.Part(cur.Parent)
		if !ok {
			break
		}
		cur = parent
		depth++
	}
	return depth
}
