package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"inkwell/internal/convert"
	"inkwell/internal/doc"
	"inkwell/internal/publish"
)

func newPublishCmd(app *App) *cobra.Command {
	var title, cover string
	cmd := &cobra.Command{
		Use:   "publish <file.md>",
		Short: "Publish a Markdown file without the interactive editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			d, err := convert.MarkdownToDoc(string(raw))
			if err != nil {
				// Same fallback as the paste path: malformed input is
				// published as raw text, not rejected.
				d = doc.FromBlocks([]doc.Block{{Kind: doc.KindParagraph, Spans: doc.Text(string(raw))}})
			}
			if strings.TrimSpace(title) == "" {
				title = strings.TrimSuffix(args[0], ".md")
			}

			wf := publish.NewWorkflow(func() publish.Draft {
				return publish.Draft{Title: title, Doc: d, Markup: d.Markup(), CoverURL: cover}
			})
			if err := wf.RequestPublish(); err != nil {
				return err
			}

			p, closer, err := app.publisher(cmd.Context())
			if err != nil {
				return err
			}
			if closer != nil {
				defer func() { _ = closer() }()
			}
			if err := wf.Submit(cmd.Context(), p); err != nil {
				return fmt.Errorf("publish failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "published:", title)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Story title (default: file name)")
	cmd.Flags().StringVar(&cover, "cover", "", "Cover image URL")
	return cmd
}
