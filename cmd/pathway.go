package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/careerstu/careerstu/internal/corpus"
	"github.com/careerstu/careerstu/internal/llm"
	"github.com/careerstu/careerstu/internal/planner"
	"github.com/careerstu/careerstu/internal/skillgap"
	"github.com/spf13/cobra"
)

var pathwayCmd = &cobra.Command{
	Use:   "pathway",
	Short: "Show the learner's active skill pathway",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		l, err := resolveLearner(cmd, s)
		if err != nil {
			return err
		}

		repo := s.LearnerRepo()
		ctx := cmd.Context()

		p, err := repo.ActivePathway(ctx, l.LearnerID)
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Println("No active pathway. Commit to a goal in chat to build one.")
			return nil
		}

		fmt.Printf("Pathway %s — %d/%d skills done, ~%d hours total\n",
			p.PathwayID, p.CompletedSkills, p.TotalSkills, p.EstimatedHours)

		skills, err := repo.PathwaySkills(ctx, p.PathwayID)
		if err != nil {
			return err
		}
		cur, err := repo.CurrentSkill(ctx, p.PathwayID)
		if err != nil {
			return err
		}

		fmt.Println(strings.Repeat("─", 56))
		for _, sk := range skills {
			marker := " "
			switch sk.Status {
			case "completed":
				marker = "✓"
			case "in_progress":
				marker = "▶"
			}
			pointer := ""
			if cur != nil && sk.PathwaySkillID == cur.PathwaySkillID {
				pointer = "  ← current"
			}
			fmt.Printf("  %s %2d. %-24s  ~%dh%s\n",
				marker, sk.SequenceOrder, sk.SkillName, sk.EstimatedHours, pointer)
		}
		return nil
	},
}

var pathwayPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a learning sequence for a job's skill gap",
	RunE: func(cmd *cobra.Command, args []string) error {
		jobLink, _ := cmd.Flags().GetString("job")
		commit, _ := cmd.Flags().GetBool("commit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		ctx := cmd.Context()

		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			if errors.Is(err, llm.ErrNotConfigured) {
				return fmt.Errorf("no LLM provider configured; set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, or OPENROUTER_API_KEY")
			}
			return fmt.Errorf("LLM provider: %w", err)
		}

		l, err := resolveLearner(cmd, s)
		if err != nil {
			return err
		}

		skills, err := s.LearnerRepo().Skills(ctx, l.LearnerID)
		if err != nil {
			return err
		}
		known := make([]string, len(skills))
		for i, sk := range skills {
			known[i] = sk.SkillName
		}

		job, err := corpus.NewEntGateway(s.Client()).JobByLink(ctx, jobLink)
		if err != nil {
			return err
		}

		gap := skillgap.Gap(known, job.Skills)
		if len(gap.Needs) == 0 {
			fmt.Printf("No gap: you already have all %d required skills for %s.\n",
				gap.TotalRequired, job.Title)
			return nil
		}

		plan, err := planner.New(provider, planner.DefaultConfig()).Plan(ctx, planner.PlanInput{
			TargetJobTitle:   job.Title,
			MissingSkills:    gap.Needs,
			KnownSkills:      known,
			WeeklyStudyHours: l.WeeklyStudyHours,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Plan toward %s (%.1f%% match today)\n", job.Title, gap.MatchPercent)
		fmt.Println(strings.Repeat("─", 64))
		for i, sk := range plan.Skills {
			fmt.Printf("  %2d. %-24s  ~%dh  %s\n", i+1, sk.Name, sk.EstimatedHours, sk.Reason)
		}
		fmt.Printf("\n%s\n", plan.Rationale)

		if !commit {
			fmt.Println("\nRe-run with --commit to set the goal and create this pathway.")
			return nil
		}

		repo := s.LearnerRepo()
		g, err := repo.SetGoal(ctx, l.LearnerID, job.Title, "committed")
		if err != nil {
			return err
		}
		p, err := repo.CreatePathway(ctx, l.LearnerID, g.GoalID, plan.SkillNames())
		if err != nil {
			return err
		}
		fmt.Printf("\nCreated pathway %s with %d skills.\n", p.PathwayID, p.TotalSkills)
		return nil
	},
}

func init() {
	pathwayPlanCmd.Flags().String("job", "", "Job link to plan toward (required)")
	pathwayPlanCmd.Flags().Bool("commit", false, "Set the goal and create the pathway")
	_ = pathwayPlanCmd.MarkFlagRequired("job")

	pathwayCmd.AddCommand(pathwayPlanCmd)
}
