package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"inkwell/internal/format"
	"inkwell/internal/store"
)

func newStoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stories",
		Short: "Browse the local story store",
	}
	cmd.AddCommand(newStoriesListCmd(app))
	cmd.AddCommand(newStoriesShowCmd(app))
	return cmd
}

// storyList is the `stories list` payload, in both its table and JSON
// forms.
type storyList []storyListItem

type storyListItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l storyList) TableHeader() []string { return []string{"ID", "CREATED", "TITLE", "SUMMARY"} }

func (l storyList) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, s := range l {
		summary := strings.ReplaceAll(s.Summary, "\n", " ")
		if r := []rune(summary); len(r) > 60 {
			summary = string(r[:60]) + "…"
		}
		rows = append(rows, []string{s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.Title, summary})
	}
	return rows
}

func newStoriesListCmd(app *App) *cobra.Command {
	var outFormat string
	var pretty bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List published stories",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(cmd.Context(), app.StoreDir)
			if err != nil {
				return err
			}
			defer st.Close()
			stories, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(stories) == 0 && outFormat != "json" {
				fmt.Fprintln(cmd.OutOrStdout(), "no stories")
				return nil
			}
			list := make(storyList, 0, len(stories))
			for _, s := range stories {
				list = append(list, storyListItem{
					ID:        s.ID,
					Title:     s.Title,
					Summary:   s.Summary,
					CreatedAt: s.CreatedAt,
				})
			}
			return format.Write(cmd.OutOrStdout(), list, outFormat, pretty)
		},
	}
	cmd.Flags().StringVar(&outFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")
	return cmd
}

func newStoriesShowCmd(app *App) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "show <story-id>",
		Short: "Render a stored story as rich content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(cmd.Context(), app.StoreDir)
			if err != nil {
				return err
			}
			defer st.Close()
			story, err := st.Get(cmd.Context(), strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), story.Content)
				return nil
			}
			// Stored content is Markdown; re-render it as rich output for
			// reading.
			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), story.Content)
				return nil
			}
			out, err := r.Render("# " + story.Title + "\n\n" + story.Content)
			if err != nil {
				out = story.Content
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the stored Markdown without rendering")
	return cmd
}
