package cmd

import (
	"fmt"

	"github.com/abhisek/cracked/internal/curriculum"
	"github.com/abhisek/cracked/internal/progress"
	"github.com/abhisek/cracked/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		state, _ := st.ProgressRepo().Load(ctx)

		fmt.Printf("Missions completed: %d/%d\n", len(state.CompletedMissions), curriculum.TotalMissions())
		for level := 1; level <= curriculum.MaxLevel; level++ {
			done := 0
			ids := curriculum.LevelIDs(level)
			for _, id := range ids {
				if state.CompletedMissions[id] {
					done++
				}
			}
			fmt.Printf("  Level %d (%s): %d/%d\n", level, curriculum.LevelName(level), done, len(ids))
		}

		if state.SelectedPath.IsSelected() {
			fmt.Printf("\nPath: %s\n", state.SelectedPath.DisplayName())
		} else {
			fmt.Println("\nPath: not chosen")
		}
		for _, p := range curriculum.AllPaths() {
			counts := state.CountsFor(p)
			if counts.Total == 0 && len(state.PathBadges[p]) == 0 {
				continue
			}
			fmt.Printf("  %s: %d/%d missions, %d badges\n",
				p.DisplayName(), counts.Total, progress.PathMissionTotal, len(state.PathBadges[p]))
		}
		if len(state.CertificatePaths) > 0 {
			fmt.Print("Certificates:")
			for _, p := range state.CertificatePaths {
				fmt.Printf(" %s", p.DisplayName())
			}
			fmt.Println()
		}

		counts, err := st.EventRepo().CountByKind(ctx)
		if err != nil {
			return fmt.Errorf("count events: %w", err)
		}
		if counts[store.EventEvaluation] > 0 || counts[store.EventCompletion] > 0 {
			fmt.Printf("\nEvaluations run: %d\n", counts[store.EventEvaluation])
			fmt.Printf("Missions submitted: %d\n", counts[store.EventCompletion])
		}

		return nil
	},
}
