package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/assetgraph/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file path; empty means stdout
	baseURL     string // overrides the manifest base-url
	development bool   // serve plain source files instead of compressed ones
	graceful    bool   // substitute placeholder comments for failing resources
	noCache     bool   // disable the persistent digest cache
}

// renderCommand creates the render command, which resolves a manifest and
// emits one script or link tag per resource in dependency order.
//
// By default rendering is strict: the first resource that cannot be rendered
// (missing file, unreadable digest) fails the whole command. With --graceful
// each failing resource becomes an HTML comment placeholder instead and the
// cause is logged, so a broken asset never takes the page down with it.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <manifest>",
		Short: "Render HTML tags for a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "base URL for generated links (overrides the manifest)")
	cmd.Flags().BoolVar(&opts.development, "development", false, "serve uncompressed source files")
	cmd.Flags().BoolVar(&opts.graceful, "graceful", false, "replace failing resources with comment placeholders")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the persistent digest cache")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	prog := newProgress(c.Logger)

	runner := c.newRunner(opts.noCache)
	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		ManifestPath: path,
		BaseURL:      opts.baseURL,
		Development:  opts.development,
		Graceful:     opts.graceful,
	})
	if err != nil {
		printError("Render failed: %v", err)
		return err
	}
	out := strings.Join(result.Tags, "\n") + "\n"

	if opts.output == "" {
		fmt.Print(out)
		prog.done(fmt.Sprintf("Rendered %d tags", len(result.Tags)))
		return nil
	}

	if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
		printError("Write failed: %v", err)
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d tags", len(result.Tags)))
	printSuccess("Wrote tags")
	printFile(opts.output)

	if opts.graceful && strings.Contains(out, "<!-- Failure to render") {
		printWarning("Some resources failed to render, see log output")
	}
	return nil
}
