package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"inkwell/internal/publish"
	"inkwell/internal/store"
	"inkwell/internal/tui"
)

type App struct {
	StoreDir string
	APIBase  string

	Title    string
	CoverURL string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "inkwell",
		Short:        "Story editor (TUI) + Markdown tooling",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive editor
  inkwell

  # Start with a title, publishing to a remote story service
  inkwell --title "My story" --api https://stories.example.com

  # Scriptable tools
  cat draft.md | inkwell detect
  cat draft.md | inkwell convert --to markup
  inkwell stories list
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive editor.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runEditor(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.StoreDir, "store", envOr("INKWELL_STORE", defaultStoreDir()), "Path to the local story store")
	cmd.PersistentFlags().StringVar(&app.APIBase, "api", envOr("INKWELL_API", ""), "Publish API base URL (default: publish into the local store)")
	cmd.Flags().StringVar(&app.Title, "title", "", "Initial story title")
	cmd.Flags().StringVar(&app.CoverURL, "cover", "", "Cover image URL")

	cmd.AddCommand(newConvertCmd(app))
	cmd.AddCommand(newDetectCmd(app))
	cmd.AddCommand(newStoriesCmd(app))
	cmd.AddCommand(newPublishCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	return cmd
}

// publisher resolves the Publish API collaborator: a remote client when
// --api is set, the local sqlite store otherwise. The returned closer is
// non-nil for the store case.
func (app *App) publisher(ctx context.Context) (publish.Publisher, func() error, error) {
	if strings.TrimSpace(app.APIBase) != "" {
		return publish.NewClient(app.APIBase, nil), nil, nil
	}
	st, err := store.Open(ctx, app.StoreDir)
	if err != nil {
		return nil, nil, err
	}
	return st, st.Close, nil
}

func runEditor(app *App) error {
	p, closer, err := app.publisher(context.Background())
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer() }()
	}
	return tui.Run(tui.Options{
		Title:        app.Title,
		CoverURL:     app.CoverURL,
		Publisher:    p,
		AutosavePath: filepath.Join(app.StoreDir, "draft.md"),
	})
}

func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".inkwell"
	}
	return filepath.Join(home, ".inkwell")
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
