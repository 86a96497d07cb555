package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/partbench/partbench/pkg/render"
)

// newVisualizeCmd creates the visualize command.
func newVisualizeCmd() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "visualize [craft.json]",
		Short: "Render the part tree as SVG, PNG, or DOT",
		Long: `Render the part tree as SVG, PNG, or DOT.

Parent/child attachments are drawn as solid directed edges; symmetry links
as dashed undirected edges, with symmetry-root parts highlighted. The DOT
format skips Graphviz rendering and emits the graph description directly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			cfg, err := loadConfig(cmd.Flag("config").Value.String())
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Render.Format
			}
			if !detailed {
				detailed = cfg.Render.Detailed
			}

			_, tree, err := loadCraftFile(args[0])
			if err != nil {
				return err
			}
			dot := render.ToDOT(tree, render.Options{Detailed: detailed})
			data, err := render.Render(dot, format)
			if err != nil {
				return err
			}

			if output == "" {
				output = strings.TrimSuffix(args[0], ".json") + "." + strings.ToLower(format)
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			printSuccess("wrote %s", output)
			prog.done(fmt.Sprintf("Rendered %d parts", tree.Count()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: craft name with format extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include UIDs and symmetry markers in labels")
	return cmd
}
