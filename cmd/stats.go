package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/questline/internal/lessongen"
	"github.com/abhisek/questline/internal/scoring"
	"github.com/abhisek/questline/internal/service"
	"github.com/abhisek/questline/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent quests and XP",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		svc := service.New(st.SessionRepo(), st.EventRepo(), lessongen.NewFallback(), zap.NewNop())
		sessions, err := svc.History(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No quests yet. Run `questline play` to start one.")
			return nil
		}

		totalXP := 0
		completed := 0
		fmt.Printf("%-10s  %-12s  %-8s  %-9s  %s\n", "SESSION", "TONE", "XP", "ACCURACY", "STATUS")
		for _, sess := range sessions {
			status := fmt.Sprintf("stage %d/%d", sess.CurrentStageIndex+1, sess.TotalStages())
			if sess.Complete {
				status = "complete"
				completed++
			}
			id := sess.ID
			if len(id) > 8 {
				id = id[:8]
			}
			accuracy := scoring.Summarize(sess.Stats, time.Now()).Accuracy
			if sess.FinalSummary != nil {
				accuracy = sess.FinalSummary.Accuracy
			}
			fmt.Printf("%-10s  %-12s  %-8d  %-9s  %s\n",
				id, sess.Tone, sess.Stats.XPEarned,
				fmt.Sprintf("%d%%", accuracy), status)
			totalXP += sess.Stats.XPEarned
		}
		fmt.Printf("\n%d quests shown, %d complete, %d XP total\n", len(sessions), completed, totalXP)
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 20, "Maximum number of sessions to show")
}
