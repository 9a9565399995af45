package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"inkwell/internal/docs"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in help topics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Topics:")
				for _, t := range docs.Topics() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", t)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "\nUse `inkwell docs <topic>` to read one.")
				return nil
			}
			topic := strings.TrimSpace(args[0])
			content, ok := docs.Get(topic)
			if !ok {
				return fmt.Errorf("unknown topic %q (try `inkwell docs`)", topic)
			}
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}
			out, err := r.Render(content)
			if err != nil {
				out = content
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the topic Markdown without rendering")
	return cmd
}
