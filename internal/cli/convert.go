package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"inkwell/internal/convert"
	"inkwell/internal/detect"
)

func newConvertCmd(app *App) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert Markdown from stdin (to rich markup, or to normalized Markdown)",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			switch to {
			case "markup":
				out, err := convert.MarkdownToMarkup(string(in))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			case "md", "markdown":
				d, err := convert.MarkdownToDoc(string(in))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), convert.DocToMarkdown(d))
			default:
				return fmt.Errorf("unknown target %q (markup|md)", to)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "markup", "Target representation (markup|md)")
	return cmd
}

func newDetectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Classify stdin as Markdown-like or plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if ok, pattern := detect.Classify(string(in)); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "markdown (pattern: %s)\n", pattern)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "plain")
			}
			return nil
		},
	}
}
