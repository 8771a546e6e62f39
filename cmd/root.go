package cmd

import (
	"fmt"

	"github.com/careerstu/careerstu/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerstu",
	Short: "AI career guidance assistant",
	Long:  "Career STU — terminal assistant that helps working adults explore careers, set goals, and follow skill pathways.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CAREERSTU_DB env var)")
	rootCmd.PersistentFlags().String("learner", "", "Learner ID (defaults to the only learner in the database)")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(riasecCmd)
	rootCmd.AddCommand(gapCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(learnerCmd)
	rootCmd.AddCommand(pathwayCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CAREERSTU_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// resolveLearner returns the learner selected by --learner, or the sole
// learner in the database when the flag is unset.
func resolveLearner(cmd *cobra.Command, s *store.Store) (*store.Learner, error) {
	ctx := cmd.Context()
	repo := s.LearnerRepo()

	if id, _ := cmd.Flags().GetString("learner"); id != "" {
		return repo.GetLearner(ctx, id)
	}

	learners, err := repo.ListLearners(ctx)
	if err != nil {
		return nil, err
	}
	switch len(learners) {
	case 0:
		return nil, fmt.Errorf("no learners yet; run: careerstu learner create")
	case 1:
		return &learners[0], nil
	default:
		return nil, fmt.Errorf("%d learners in the database; pick one with --learner", len(learners))
	}
}
