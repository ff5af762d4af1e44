package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/cracked/internal/app"
	"github.com/abhisek/cracked/internal/progress"
	"github.com/abhisek/cracked/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads progress, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo := st.ProgressRepo()
	state, info := repo.Load(ctx)
	if info.Recovered {
		fmt.Fprintln(os.Stderr, "Stored progress was damaged and has been reset:", info.Reason)
	}

	tracker := progress.NewTracker(state, repo.Gateway())

	return app.Run(app.Options{
		Tracker: tracker,
		Events:  st.EventRepo(),
	})
}
