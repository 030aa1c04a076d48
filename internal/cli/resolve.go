package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resolveCommand creates the resolve command, which loads a manifest and
// prints the dependency-ordered resource list without rendering anything.
func (c *CLI) resolveCommand() *cobra.Command {
	var showLocation bool

	cmd := &cobra.Command{
		Use:   "resolve <manifest>",
		Short: "Compute the inclusion order for a manifest",
		Long: `Resolve loads a TOML asset manifest, applies include and skip flags,
and computes the order in which resources must be emitted so that every
dependency precedes its dependents. The order is stable: resources without
a dependency relationship keep their declaration order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)

			_, order, err := c.loadResolved(cmd.Context(), args[0])
			if err != nil {
				printError("Resolution failed: %v", err)
				return err
			}

			deps := 0
			for _, cand := range order {
				deps += len(cand.Resource.Depends)
			}
			prog.done(fmt.Sprintf("Resolved %d resources", len(order)))

			printSuccess("Inclusion order")
			printStats(len(order), deps)
			for i, cand := range order {
				line := fmt.Sprintf("%2d. %s %s", i+1,
					styleKind.Render(cand.Kind().String()), cand.UID())
				if showLocation {
					if cand.Resource.URL != "" {
						line += " " + StyleDim.Render(cand.Resource.URL)
					} else if p := cand.Path; p != "" {
						line += " " + StyleDim.Render(p+"/"+cand.Resource.File)
					}
				}
				fmt.Println("  " + line)
			}
			printNextStep("Render tags", appName+" render "+args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&showLocation, "locations", false, "show resolved paths and URLs")

	return cmd
}
