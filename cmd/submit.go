package cmd

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"github.com/heathj/nodeset/nodeset"
	"github.com/heathj/nodeset/pipeline"
)

func submitCmd(g *globalOptions) *cobra.Command {
	var (
		target string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "submit FILE PIPELINE",
		Short: "Serialize the first form a pipeline selects and post it",
		Long: `submit serializes the first node of the pipeline result as a form and
posts it to the form's action, or to --url. The "ajax" plugin settings of the
configuration (param, timeout) apply.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd.InOrStdin(), args[0], g)
			if err != nil {
				return err
			}
			forms, err := pipeline.Eval(doc, args[1])
			if err != nil {
				return err
			}
			if forms.Len() == 0 {
				return errors.New("submit: pipeline selected nothing")
			}
			form := nodeset.FromNode(doc, forms.First())
			if target == "" {
				target = form.Attr("action")
			}
			if target == "" {
				return errors.New("submit: form has no action, use --url")
			}

			sub := nodeset.NewSubmitter(http.DefaultClient, g.cfg.Plugins)
			sub.Log = g.logger.WithField("component", "ajax")
			data := form.Serialize()
			out := cmd.OutOrStdout()
			if dryRun {
				if sub.Param != "" {
					data += "&" + sub.Param
				}
				_, err := fmt.Fprintf(out, "POST %s\n%s\n", target, data)
				return err
			}

			var result error
			sub.Post(cmd.Context(), target, data, nodeset.AjaxHandlers{
				Before: func() {
					g.logger.WithField("url", target).Info("submitting form")
				},
				Success: func(payload any) {
					result = printPayload(out, payload)
				},
				Error: func(status int) {
					if status == 0 {
						result = errors.Errorf("submit: no response from %s", target)
						return
					}
					result = errors.Errorf("submit: %s answered %d", target, status)
				},
			})
			return result
		},
	}
	cmd.Flags().StringVar(&target, "url", "", "post here instead of the form action")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the request instead of sending it")
	return cmd
}

func printPayload(w io.Writer, payload any) error {
	if s, ok := payload.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding response")
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
