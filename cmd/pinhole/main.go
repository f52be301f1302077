// Command pinhole parses an HTML document, runs it through the
// rendering pipeline, and prints the resulting display list.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pinhole-web/pinhole/config"
	"github.com/pinhole-web/pinhole/display"
	"github.com/pinhole-web/pinhole/httpmodel"
	"github.com/pinhole-web/pinhole/page"
)

var (
	configPath string
	debugTree  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pinhole [file]",
		Short: "Render an HTML document to a display list",
		Long: "pinhole parses an HTML document, evaluates its stylesheet and\n" +
			"script, builds a layout tree, and prints the resulting display list.\n" +
			"Pass a file path, or \"-\" (or nothing) to read from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: runRoot,
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML file overriding the layout constants")
	cmd.Flags().BoolVar(&debugTree, "debug-tree", false, "print the layout tree instead of the display list")
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	body, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	constants := config.Default()
	if configPath != "" {
		constants, err = config.LoadYAML(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	p := page.New(constants)
	if err := p.ReceiveResponse(&httpmodel.Response{Body: body}); err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}

	out := cmd.OutOrStdout()
	if debugTree {
		return printTree(out, p)
	}
	return printDisplayList(out, p)
}

func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

func printDisplayList(out io.Writer, p *page.Page) error {
	for _, item := range p.DisplayItems() {
		var err error
		switch item.Kind {
		case display.RectItem:
			_, err = fmt.Fprintf(out, "rect  %4d,%-4d %dx%d bg=#%06x\n",
				item.Point.X, item.Point.Y, item.Size.Width, item.Size.Height, item.BackgroundColorHex())
		case display.TextItem:
			_, err = fmt.Fprintf(out, "text  %4d,%-4d fg=#%06x %q\n",
				item.Point.X, item.Point.Y, item.TextColorHex(), item.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func printTree(out io.Writer, p *page.Page) error {
	_, err := fmt.Fprint(out, p.LayoutTreeDump())
	return err
}
