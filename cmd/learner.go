package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var learnerCmd = &cobra.Command{
	Use:   "learner",
	Short: "Manage learner profiles",
}

var learnerCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		l, err := s.LearnerRepo().CreateLearner(cmd.Context(), email, name)
		if err != nil {
			return err
		}

		fmt.Printf("Created learner %s\n", l.LearnerID)
		fmt.Println("Start a conversation with: careerstu chat")
		return nil
	},
}

var learnerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List learners",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		learners, err := s.LearnerRepo().ListLearners(cmd.Context())
		if err != nil {
			return err
		}
		if len(learners) == 0 {
			fmt.Println("No learners yet. Run: careerstu learner create")
			return nil
		}

		fmt.Printf("%-36s  %-20s  %-8s  %-14s  %s\n",
			"ID", "Name", "Status", "Mode", "RIASEC")
		fmt.Println(strings.Repeat("─", 90))
		for _, l := range learners {
			fmt.Printf("%-36s  %-20s  %-8s  %-14s  %s\n",
				l.LearnerID, truncate(l.Name, 20), l.Status, l.CurrentMode, l.RiasecCode)
		}
		return nil
	},
}

var learnerShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a learner's profile, skills, and goals",
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

		fmt.Printf("ID:          %s\n", l.LearnerID)
		fmt.Printf("Name:        %s\n", l.Name)
		fmt.Printf("Email:       %s\n", l.Email)
		fmt.Printf("Status:      %s\n", l.Status)
		fmt.Printf("Mode:        %s\n", l.CurrentMode)
		if l.CurrentJobTitle != "" {
			fmt.Printf("Role:        %s", l.CurrentJobTitle)
			if l.CurrentIndustry != "" {
				fmt.Printf(" (%s)", l.CurrentIndustry)
			}
			fmt.Println()
		}
		if l.YearsExperience > 0 {
			fmt.Printf("Experience:  %d years\n", l.YearsExperience)
		}
		if l.WeeklyStudyHours > 0 {
			fmt.Printf("Study time:  %d h/week\n", l.WeeklyStudyHours)
		}
		if l.RiasecCode != "" {
			fmt.Printf("RIASEC:      %s\n", l.RiasecCode)
		}
		fmt.Printf("Profile:     complete=%v\n", l.ProfileComplete)

		repo := s.LearnerRepo()
		ctx := cmd.Context()

		skills, err := repo.Skills(ctx, l.LearnerID)
		if err != nil {
			return err
		}
		if len(skills) > 0 {
			fmt.Printf("\nSkills (%d):\n", len(skills))
			for _, sk := range skills {
				fmt.Printf("  %-24s  %s\n", sk.SkillName, sk.ProficiencyLevel)
			}
		}

		goals, err := repo.Goals(ctx, l.LearnerID)
		if err != nil {
			return err
		}
		if len(goals) > 0 {
			fmt.Println("\nGoals (newest first):")
			for _, g := range goals {
				fmt.Printf("  %-28s  %s\n", g.TargetJobTitle, g.Status)
			}
		}
		return nil
	},
}

func init() {
	learnerCreateCmd.Flags().String("email", "", "Learner email (required)")
	learnerCreateCmd.Flags().String("name", "", "Learner name (required)")
	_ = learnerCreateCmd.MarkFlagRequired("email")
	_ = learnerCreateCmd.MarkFlagRequired("name")

	learnerCmd.AddCommand(learnerCreateCmd)
	learnerCmd.AddCommand(learnerListCmd)
	learnerCmd.AddCommand(learnerShowCmd)
}
