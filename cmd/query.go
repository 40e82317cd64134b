package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/heathj/nodeset/dom"
	"github.com/heathj/nodeset/nodeset"
	"github.com/heathj/nodeset/parser"
	"github.com/heathj/nodeset/pipeline"
)

func queryCmd(g *globalOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "query FILE PIPELINE",
		Short: "Run a pipeline over an HTML file (- for stdin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "html", "text", "count":
			default:
				return errors.Errorf("--format: unknown format %q", format)
			}
			doc, err := readDocument(cmd.InOrStdin(), args[0], g)
			if err != nil {
				return err
			}
			steps, err := pipeline.Parse(args[1])
			if err != nil {
				return err
			}
			g.logger.WithField("steps", len(steps)).Debug("running pipeline")
			set, err := pipeline.Run(doc, steps)
			if err != nil {
				return err
			}
			return printSet(cmd.OutOrStdout(), set, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "html", "output format: html, text or count")
	return cmd
}

func readDocument(stdin io.Reader, path string, g *globalOptions) (*dom.Document, error) {
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}
	return dom.Parse(in, dom.WithLogger(g.logger))
}

func printSet(w io.Writer, set nodeset.Set, format string) error {
	if format == "count" {
		_, err := fmt.Fprintln(w, set.Len())
		return err
	}
	index := color.New(color.FgCyan).SprintfFunc()
	for i, n := range set.Nodes() {
		var body string
		if format == "text" {
			body = strings.TrimSpace(dom.TextContent(n))
		} else {
			body = parser.SerializeNode(n)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", index("[%d]", i), body); err != nil {
			return err
		}
	}
	return nil
}
