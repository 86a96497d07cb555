package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/partbench/partbench/pkg/craft"
	"github.com/partbench/partbench/pkg/integrity"
	"github.com/partbench/partbench/pkg/staging"
)

// newDeleteCmd creates the delete command.
func newDeleteCmd() *cobra.Command {
	var (
		partUID uint32
		force   bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "delete [craft.json]",
		Short: "Remove a part from a craft file",
		Long: `Remove a part from a craft file.

The part must pass the integrity engine's eligibility check: it must not be
the root, must have no children, and any symmetry group it belongs to must
be breakable. Symmetric parts have their group broken before removal, so no
counterpart is left with a stale reference.

With --force the eligibility check is skipped and the raw engine contract
applies (the deletion still fails on the root or on parts with children).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutate(cmd, args[0], output, func(eng *integrity.Engine) error {
				uid := craft.UID(partUID)
				if !force {
					deletable, err := eng.IsDeletable(uid)
					if err != nil {
						return err
					}
					if !deletable {
						return fmt.Errorf("part %d is not deletable (try 'inspect --part %d')", uid, uid)
					}
				}
				if ok, err := eng.HasSymmetry(uid); err == nil && ok {
					if err := eng.BreakSymmetry(uid); err != nil {
						return err
					}
				}
				if err := eng.Delete(uid); err != nil {
					return err
				}
				printSuccess("deleted part %d", uid)
				return nil
			})
		},
	}

	cmd.Flags().Uint32Var(&partUID, "part", 0, "UID of the part to delete (required)")
	cmd.Flags().BoolVar(&force, "force", false, "skip the eligibility check")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write result to a different file")
	_ = cmd.MarkFlagRequired("part")
	return cmd
}

// newBreakCmd creates the break command.
func newBreakCmd() *cobra.Command {
	var (
		partUID uint32
		force   bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "break [craft.json]",
		Short: "Dissolve a part's symmetry group",
		Long: `Dissolve a part's symmetry group.

Breaking clears the symmetry links and markers of every group member and
cascades recursively through their children, so nested symmetric
assemblies are unlinked too. The part must pass the engine's breakability
analysis unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutate(cmd, args[0], output, func(eng *integrity.Engine) error {
				uid := craft.UID(partUID)
				if !force {
					verdict, err := eng.HasBreakableSymmetry(uid)
					if err != nil {
						return err
					}
					if !verdict.OK {
						return fmt.Errorf("%s", verdict.Reason)
					}
				}
				if err := eng.BreakSymmetry(uid); err != nil {
					return err
				}
				printSuccess("broke symmetry of part %d", uid)
				return nil
			})
		},
	}

	cmd.Flags().Uint32Var(&partUID, "part", 0, "UID of the part to break (required)")
	cmd.Flags().BoolVar(&force, "force", false, "skip the breakability check")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write result to a different file")
	_ = cmd.MarkFlagRequired("part")
	return cmd
}

// runMutate loads the craft, runs op through an engine wired to the CLI
// host, and writes the result back (to path, or to output if given).
func runMutate(cmd *cobra.Command, path, output string, op func(*integrity.Engine) error) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	doc, tree, err := loadCraftFile(path)
	if err != nil {
		return err
	}
	seq := staging.NewSequencer(tree)
	eng := integrity.New(tree, newEditorHost(seq, logger))

	if err := op(eng); err != nil {
		return err
	}

	if output == "" {
		output = path
	}
	if err := saveCraftFile(output, doc, tree); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Saved %s (%d parts, %d staging entries)", output, tree.Count(), len(seq.Order())))
	return nil
}
