package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	assetio "github.com/matzehuels/assetgraph/pkg/io"
	"github.com/matzehuels/assetgraph/pkg/render"
)

const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatJSON = "json"
)

// graphCommand creates the graph command, which exports the resolved
// dependency graph as Graphviz DOT, rendered SVG, or JSON.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "graph <manifest>",
		Short: "Export the resource dependency graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			switch format {
			case formatDOT, formatSVG, formatJSON:
			default:
				return fmt.Errorf("unsupported format %q (want %s, %s or %s)",
					format, formatDOT, formatSVG, formatJSON)
			}

			_, order, err := c.loadResolved(cmd.Context(), args[0])
			if err != nil {
				printError("Resolution failed: %v", err)
				return err
			}

			if format == formatJSON {
				if output == "" {
					return assetio.WriteJSON(order, os.Stdout)
				}
				if err := assetio.ExportJSON(order, output); err != nil {
					printError("Export failed: %v", err)
					return err
				}
				printSuccess("Exported %s graph (%d resources)", format, len(order))
				printFile(output)
				return nil
			}

			logger := loggerFromContext(cmd.Context())
			dot := render.ToDOT(order)
			logger.Debug("generated DOT", "resources", len(order), "bytes", len(dot))
			data := []byte(dot)

			if format == formatSVG {
				spin := newSpinnerWithContext(cmd.Context(), "Rendering SVG...")
				spin.Start()
				data, err = render.RenderSVG(cmd.Context(), dot)
				spin.Stop()
				if err != nil {
					if spin.Cancelled() {
						return cmd.Context().Err()
					}
					printError("SVG render failed: %v", err)
					return err
				}
			}

			if output == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				printError("Write failed: %v", err)
				return err
			}
			printSuccess("Exported %s graph (%d resources)", format, len(order))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot (default), svg, json")

	return cmd
}
